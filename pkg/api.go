package pkg

import (
	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/iconmaker/pkg/iconset"
)

var defaultGenerator = iconset.NewGenerator()

// Generate builds an icon set for platform (0=iOS, 1=macOS, 2=watchOS) from
// the image at sourceImagePath into a fresh directory under
// outputBaseDirectory. It returns false only when the source cannot be
// decoded or the platform is unknown.
func Generate(sourceImagePath, outputBaseDirectory string, platform int) bool {
	p, err := iconset.PlatformFromIndex(platform)
	if err != nil {
		return false
	}
	return defaultGenerator.Generate(sourceImagePath, outputBaseDirectory, p)
}

// GenerateWithLogger is Generate with a caller-supplied logger and a
// per-entry report. It shares Generate's run lock.
func GenerateWithLogger(sourceImagePath, outputBaseDirectory string, platform int, logger hclog.Logger) (*iconset.Result, error) {
	p, err := iconset.PlatformFromIndex(platform)
	if err != nil {
		return nil, err
	}
	return defaultGenerator.Derive(iconset.WithLogger(logger)).Run(sourceImagePath, outputBaseDirectory, p)
}
