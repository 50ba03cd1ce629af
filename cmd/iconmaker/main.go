package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/iconmaker/internal/config"
	"github.com/provide-io/iconmaker/pkg/iconset"
	"github.com/provide-io/iconmaker/pkg/logging"
	"github.com/spf13/cobra"
)

const version = "0.4.0"

var (
	logLevel    string
	versionFlag bool
	rootCmd     *cobra.Command
	settings    config.Settings
	generator   = iconset.NewGenerator()
)

func getBuildTimestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion() {
	fmt.Printf("iconmaker %s\n", version)
	fmt.Printf("Built: %s\n", getBuildTimestamp())
}

func init() {
	settings = config.LoadSettings()

	rootCmd = &cobra.Command{
		Use:           "iconmaker",
		Short:         "Generate Xcode app-icon sets from a single image",
		Long:          `Generate the resized PNG assets and Contents.json of an Xcode .appiconset for iOS, macOS or watchOS.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionFlag {
				printVersion()
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, json:<level>)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	rootCmd.AddCommand(
		newGenerateCmd(),
		newBatchCmd(),
		newWatchCmd(),
		newExportCmd(),
		newPlatformsCmd(),
		newVerifyCmd(),
	)
}

// newLogger builds the CLI logger; --log-level wins over ICONMAKER_LOG_LEVEL.
func newLogger() hclog.Logger {
	level := logLevel
	if level == "" {
		level = settings.LogLevel
	}
	return logging.New(logging.Options{Name: "iconmaker", Level: level})
}

func newResampler(filter string) (iconset.Resampler, error) {
	if filter == "" {
		filter = settings.Filter
	}
	return iconset.NewResampler(filter)
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion()
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
