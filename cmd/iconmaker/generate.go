package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/iconmaker/internal/validate"
	"github.com/provide-io/iconmaker/pkg/iconset"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		outputDir string
		platform  string
		filter    string
		mode      string
	)

	cmd := &cobra.Command{
		Use:   "generate <source-image>",
		Short: "Generate an .appiconset from a png, jpg or gif",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := iconset.ParsePlatform(platform)
			if err != nil {
				return err
			}
			logger := newLogger()
			result, err := runJob(logger, args[0], outputDir, p, filter, mode)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Base directory for the icon set (default: ICONMAKER_OUTPUT_DIR or the source's directory)")
	cmd.Flags().StringVarP(&platform, "platform", "p", "ios", "Target platform: ios, macos or watchos")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Resample filter: bilinear, catmullrom, lanczos or box")
	cmd.Flags().StringVar(&mode, "mode", "", "Octal file mode for written files (default: ICONMAKER_FILE_MODE or 0644)")
	return cmd
}

// runJob checks the source and output base, then runs one generation. All
// jobs in the process share the run lock of generator.
func runJob(logger hclog.Logger, source, outputDir string, p iconset.Platform, filter, mode string) (*iconset.Result, error) {
	if err := validate.Source(source); err != nil {
		return nil, err
	}
	base := settings.OutputBase(outputDir, source)
	if err := validate.OutputBase(base, logger); err != nil {
		return nil, err
	}

	resampler, err := newResampler(filter)
	if err != nil {
		return nil, err
	}
	perm, err := settings.FileModeFor(mode)
	if err != nil {
		return nil, err
	}

	g := generator.Derive(
		iconset.WithLogger(logger),
		iconset.WithResampler(resampler),
		iconset.WithFileMode(perm))
	result, err := g.Run(source, base, p)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	return result, nil
}

func printResult(w io.Writer, result *iconset.Result) {
	ok := color.New(color.FgGreen, color.Bold)
	warn := color.New(color.FgYellow)

	failed := result.FailedCount()
	ok.Fprintf(w, "✅ %s icon set: %s\n", result.Platform, result.OutputDir)
	fmt.Fprintf(w, "   %d/%d assets in %s\n", len(result.Assets)-failed, len(result.Assets), result.Duration.Round(time.Millisecond))
	for i, a := range result.Assets {
		if a.Failed() {
			warn.Fprintf(w, "   ⚠️  slot %d (%s): %v\n", i, a.Entry.Filename(), a.Err)
		}
	}
}
