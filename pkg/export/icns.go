package export

import (
	"fmt"
	"image"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/jackmordaunt/icns/v3"
	"github.com/provide-io/iconmaker/pkg/iconset"
	"github.com/provide-io/iconmaker/pkg/utils/atomicfile"
	"github.com/provide-io/iconmaker/pkg/utils/permissions"
)

// ICNSEdge is the edge length the source is rendered at before encoding;
// the encoder derives the smaller members from it.
const ICNSEdge = 1024

// WriteICNS renders src at ICNSEdge and writes it to dest as an .icns file.
func WriteICNS(src image.Image, dest string, r iconset.Resampler, logger hclog.Logger) error {
	logger = orNull(logger)
	r, err := orDefault(r)
	if err != nil {
		return err
	}

	rendered, err := renderSizes(src, []int{ICNSEdge}, r, logger)
	if err != nil {
		return err
	}

	err = atomicfile.Write(dest, permissions.DefaultFilePerms, logger, func(w io.Writer) error {
		if err := icns.Encode(w, rendered[0]); err != nil {
			return fmt.Errorf("failed to encode icns: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("🍎 ICNS written", "path", dest)
	return nil
}
