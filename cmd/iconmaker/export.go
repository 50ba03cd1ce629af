package main

import (
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/provide-io/iconmaker/internal/validate"
	"github.com/provide-io/iconmaker/pkg/export"
	"github.com/provide-io/iconmaker/pkg/iconset"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a source image or an icon set to .icns, .ico or an archive",
	}
	cmd.PersistentFlags().StringVarP(&filter, "filter", "f", "", "Resample filter: bilinear, catmullrom, lanczos or box")

	imageExport := func(use, short string, write func(*iconset.SourceImage, string, iconset.Resampler) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <source-image> <dest>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := validate.Source(args[0]); err != nil {
					return err
				}
				src, err := iconset.LoadSource(args[0])
				if err != nil {
					return err
				}
				r, err := newResampler(filter)
				if err != nil {
					return err
				}
				if err := write(src, args[1], r); err != nil {
					return err
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✅ %s\n", args[1])
				return nil
			},
		}
	}

	cmd.AddCommand(
		imageExport("icns", "Write a macOS .icns file", func(src *iconset.SourceImage, dest string, r iconset.Resampler) error {
			return export.WriteICNS(src.Image, dest, r, newLogger())
		}),
		imageExport("ico", "Write a Windows .ico file", func(src *iconset.SourceImage, dest string, r iconset.Resampler) error {
			return export.WriteICO(src.Image, dest, r, newLogger())
		}),
		newArchiveCmd(),
	)
	return cmd
}

func newArchiveCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "archive <appiconset-dir> [dest]",
		Short: "Pack a generated icon set into a tar, tar.gz or tar.bz2 archive",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			dest := ""
			if len(args) == 2 {
				dest = args[1]
			} else {
				name, err := export.ArchiveName(dir, format)
				if err != nil {
					return err
				}
				dest = filepath.Join(filepath.Dir(filepath.Clean(dir)), name)
			}

			if err := export.WriteArchive(dir, dest, format, time.Now().UTC(), newLogger()); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✅ %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", export.DefaultArchiveFormat, "Archive format: tar, tar.gz or tar.bz2")
	return cmd
}
