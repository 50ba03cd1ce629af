package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/provide-io/iconmaker/internal/config"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "batch <jobs.yaml>",
		Short: "Generate every icon set listed in a YAML batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			b, err := config.LoadBatch(args[0])
			if err != nil {
				return err
			}
			jobs, err := b.Resolve()
			if err != nil {
				return err
			}

			failed := 0
			for i, job := range jobs {
				result, err := runJob(logger.With("job", i), job.Source, job.Output, job.Platform, job.Filter, mode)
				if err != nil {
					failed++
					color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "❌ job %d (%s): %v\n", i, job.Source, err)
					continue
				}
				printResult(cmd.OutOrStdout(), result)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d jobs failed", failed, len(jobs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Octal file mode for written files (default: ICONMAKER_FILE_MODE or 0644)")
	return cmd
}
