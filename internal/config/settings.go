// Package config resolves CLI settings from the environment and loads YAML
// batch files.
package config

import (
	"os"
	"path/filepath"

	"github.com/provide-io/iconmaker/pkg/iconset"
	"github.com/provide-io/iconmaker/pkg/logging"
	"github.com/provide-io/iconmaker/pkg/utils/permissions"
)

// Settings are the environment-provided defaults for the CLI.
type Settings struct {
	LogLevel  string
	OutputDir string
	Filter    string
	// FileMode is the octal mode for written files; empty means the default.
	FileMode  string
}

// LoadSettings reads ICONMAKER_* variables.
func LoadSettings() Settings {
	filter := os.Getenv("ICONMAKER_FILTER")
	if filter == "" {
		filter = iconset.DefaultFilter
	}
	return Settings{
		LogLevel:  logging.GetLogLevel(),
		OutputDir: os.Getenv("ICONMAKER_OUTPUT_DIR"),
		Filter:    filter,
		FileMode:  os.Getenv("ICONMAKER_FILE_MODE"),
	}
}

// OutputBase picks the output base directory: the explicit flag value,
// then ICONMAKER_OUTPUT_DIR, then the source file's directory.
func (s Settings) OutputBase(flagValue, sourcePath string) string {
	if flagValue != "" {
		return flagValue
	}
	if s.OutputDir != "" {
		return s.OutputDir
	}
	return filepath.Dir(sourcePath)
}

// FileModeFor picks the mode for written files: the explicit flag value, then
// ICONMAKER_FILE_MODE, then the default.
func (s Settings) FileModeFor(flagValue string) (os.FileMode, error) {
	value := flagValue
	if value == "" {
		value = s.FileMode
	}
	return permissions.ParseOctalString(value)
}
