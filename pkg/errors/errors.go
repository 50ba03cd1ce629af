package errors

import "errors"

var (
	// Source errors 🖼️
	ErrSourceUnreadable     = errors.New("❌ source image unreadable")
	ErrSourceDecode         = errors.New("❌ source image could not be decoded")
	ErrSourceURL            = errors.New("❌ source path must be a filesystem path, not a file:// URL")
	ErrUnsupportedExtension = errors.New("❌ unsupported source image extension")

	// Table errors 📐
	ErrUnknownPlatform    = errors.New("❌ unknown platform")
	ErrAssetCountMismatch = errors.New("❌ asset count does not match resolution table")

	// Rendering errors 🎨
	ErrInvalidCanvas  = errors.New("❌ invalid target canvas size")
	ErrCanvasTooLarge = errors.New("❌ target canvas too large")
	ErrUnknownFilter  = errors.New("❌ unknown resample filter")

	// Output errors 📂
	ErrOutputNotWritable    = errors.New("❌ output directory not writable")
	ErrUnknownArchiveFormat = errors.New("❌ unknown archive format")

	// Scheduling errors ⏳
	ErrGeneratorBusy = errors.New("❌ generator is already running")
)
