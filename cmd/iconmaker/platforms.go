package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/provide-io/iconmaker/pkg/iconset"
	"github.com/spf13/cobra"
)

func newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms [platform]",
		Short: "Show the resolution table of each platform",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platforms := iconset.Platforms
			if len(args) == 1 {
				p, err := iconset.ParsePlatform(args[0])
				if err != nil {
					return err
				}
				platforms = []iconset.Platform{p}
			}
			for _, p := range platforms {
				printTable(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func printTable(w io.Writer, p iconset.Platform) {
	entries := iconset.EntriesFor(p)
	color.New(color.FgCyan, color.Bold).Fprintf(w, "%s (%d entries)\n", p, len(entries))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  #\tNOMINAL\tSCALE\tPIXELS\tFILENAME\tSIZE\t")
	for i, e := range entries {
		mark := ""
		if e.Override != nil {
			mark = "*"
		}
		fmt.Fprintf(tw, "  %d\t%g%s\t%s\t%d\t%s\t%s\t\n", i, e.Nominal, mark, e.ScaleLabel(), e.PixelSize(), e.Filename(), e.SizeLabel())
	}
	tw.Flush()
	fmt.Fprintln(w)
}
