package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/provide-io/iconmaker/pkg"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <appiconset-dir>",
		Short: "Check an icon set against its platform's resolution table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := pkg.VerifyIconSet(args[0], newLogger())
			if err != nil {
				return err
			}
			if v.OK() {
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✅ %s: %d %s images verified\n", v.Dir, v.Images, v.Platform)
				return nil
			}
			for _, p := range v.Problems {
				color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "⚠️  %s\n", p)
			}
			return fmt.Errorf("%s: %d problems", v.Dir, len(v.Problems))
		},
	}
}
