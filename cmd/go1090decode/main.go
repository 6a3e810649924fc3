package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go1090/internal/app"
)

func main() {
	config := app.DefaultConfig()
	var altitudeQ0Gillham bool
	var formatFlag string

	rootCmd := &cobra.Command{
		Use:   "go1090decode <input.bin> <format>",
		Short: "Decode ADS-B DF17 position messages from a raw IQ or Beast capture",
		Long: `go1090decode turns a recorded 2 Msps IQ capture (or a Beast-protocol
frame dump with --beast) into resolved aircraft position fixes.

Example usage:
  go1090decode capture.bin csv
  go1090decode --beast --output fixes.kml dump.beast kml`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ShowVersion {
				app.ShowVersion()
				return nil
			}

			config.InputPath = args[0]
			format := args[1]
			if formatFlag != "" {
				format = formatFlag
			}

			switch app.OutputFormat(format) {
			case app.FormatCSV, app.FormatJSON, app.FormatKML:
				config.Format = app.OutputFormat(format)
			default:
				return fmt.Errorf("unknown format %q: must be csv, json, or kml", format)
			}

			config.AltitudeQ0Gillham = altitudeQ0Gillham

			application := app.NewApplication(config)
			return application.Run()
		},
	}

	rootCmd.Flags().Float64Var(&config.PreambleThresholdRatio, "alpha", config.PreambleThresholdRatio, "Preamble pulse/noise-floor detection threshold ratio")
	rootCmd.Flags().BoolVar(&config.EnforceCRC, "crc", config.EnforceCRC, "Reject frames that fail the Mode S CRC check")
	rootCmd.Flags().BoolVar(&altitudeQ0Gillham, "altitude-q0", false, "Decode Gillham (Q=0) altitude fields instead of skipping them")
	rootCmd.Flags().Int64Var(&config.CPRStalenessSamples, "staleness-samples", config.CPRStalenessSamples, "Maximum sample-index gap between an even/odd CPR pair")
	rootCmd.Flags().BoolVar(&config.Beast, "beast", false, "Treat the input file as a Beast-protocol frame capture")
	rootCmd.Flags().StringVarP(&config.OutputPath, "output", "o", "", "Output file (default: stdout)")
	rootCmd.Flags().StringVar(&formatFlag, "format", "", "Output format override (csv, json, kml); defaults to the positional argument")
	rootCmd.Flags().StringVarP(&config.LogDir, "log-file", "l", config.LogDir, "Directory for diagnostic logs")
	rootCmd.Flags().BoolVarP(&config.Verbose, "verbose", "v", false, "Verbose diagnostic logging")
	rootCmd.Flags().BoolVar(&config.ShowVersion, "version", false, "Show version information")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
