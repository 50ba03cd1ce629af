package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/provide-io/iconmaker/internal/watch"
	"github.com/provide-io/iconmaker/pkg/iconset"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		outputDir string
		platform  string
		filter    string
		mode      string
	)

	cmd := &cobra.Command{
		Use:   "watch <source-image>",
		Short: "Regenerate the icon set every time the source image is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := iconset.ParsePlatform(platform)
			if err != nil {
				return err
			}
			logger := newLogger()
			source := args[0]

			generate := func(path string) {
				result, err := runJob(logger, path, outputDir, p, filter, mode)
				if err != nil {
					color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
					return
				}
				printResult(cmd.OutOrStdout(), result)
			}

			// Fail fast on bad inputs before entering the watch loop.
			result, err := runJob(logger, source, outputDir, p, filter, mode)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)

			w, err := watch.New(source, watch.DefaultDebounce, generate, logger.Named("watch"))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return w.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Base directory for the icon sets")
	cmd.Flags().StringVarP(&platform, "platform", "p", "ios", "Target platform: ios, macos or watchos")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Resample filter: bilinear, catmullrom, lanczos or box")
	cmd.Flags().StringVar(&mode, "mode", "", "Octal file mode for written files (default: ICONMAKER_FILE_MODE or 0644)")
	return cmd
}
