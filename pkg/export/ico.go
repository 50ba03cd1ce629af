package export

import (
	"fmt"
	"image"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/iconmaker/pkg/iconset"
	"github.com/provide-io/iconmaker/pkg/utils/atomicfile"
	"github.com/provide-io/iconmaker/pkg/utils/permissions"
	"github.com/tc-hib/winres"
)

// ICOSizes are the members written to an .ico file. 256 is the largest edge
// the format supports.
var ICOSizes = []int{16, 24, 32, 48, 64, 128, 256}

// WriteICO renders src at every ICOSizes edge and writes them to dest as a
// single .ico file.
func WriteICO(src image.Image, dest string, r iconset.Resampler, logger hclog.Logger) error {
	logger = orNull(logger)
	r, err := orDefault(r)
	if err != nil {
		return err
	}

	images, err := renderSizes(src, ICOSizes, r, logger)
	if err != nil {
		return err
	}

	icon, err := winres.NewIconFromImages(images)
	if err != nil {
		return fmt.Errorf("failed to build icon: %w", err)
	}

	err = atomicfile.Write(dest, permissions.DefaultFilePerms, logger, func(w io.Writer) error {
		if err := icon.SaveICO(w); err != nil {
			return fmt.Errorf("failed to encode ico: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("🪟 ICO written", "path", dest, "sizes", len(ICOSizes))
	return nil
}
