package app

import (
	"fmt"

	"go1090/internal/adsb"
)

// OutputFormat selects an output writer.
type OutputFormat string

// Supported output formats.
const (
	FormatCSV  OutputFormat = "csv"
	FormatJSON OutputFormat = "json"
	FormatKML  OutputFormat = "kml"
)

// Config holds application configuration for one batch decode run.
type Config struct {
	InputPath  string
	Format     OutputFormat
	OutputPath string // empty means stdout

	Beast bool // treat InputPath as a Beast-protocol capture rather than raw IQ

	PreambleThresholdRatio float64
	EnforceCRC             bool
	AltitudeQ0Gillham      bool
	CPRStalenessSamples    int64

	LogDir       string
	LogRotateUTC bool
	Verbose      bool
	ShowVersion  bool
}

// DefaultConfig returns a Config seeded with the decoder's defaults.
func DefaultConfig() Config {
	return Config{
		Format:                 FormatCSV,
		PreambleThresholdRatio: adsb.DefaultPreambleThresholdRatio,
		EnforceCRC:             true,
		CPRStalenessSamples:    adsb.DefaultCPRStalenessSamples,
		LogDir:                 "./logs",
		LogRotateUTC:           true,
	}
}

// Validate rejects configuration that would make the decode pipeline
// silently meaningless rather than producing a diagnosable error later.
func (c Config) Validate() error {
	if c.PreambleThresholdRatio <= 0 {
		return fmt.Errorf("preamble_threshold_ratio must be > 0, got %v", c.PreambleThresholdRatio)
	}
	if c.CPRStalenessSamples <= 0 {
		return fmt.Errorf("cpr_staleness_samples must be > 0, got %d", c.CPRStalenessSamples)
	}
	return nil
}

// decoderConfig translates the CLI-facing Config into adsb.Config.
func (c Config) decoderConfig() adsb.Config {
	q0 := adsb.AltitudeQ0Skip
	if c.AltitudeQ0Gillham {
		q0 = adsb.AltitudeQ0Gillham
	}

	return adsb.Config{
		PreambleThresholdRatio: c.PreambleThresholdRatio,
		EnforceCRC:             c.EnforceCRC,
		AltitudeQ0Policy:       q0,
		CPRStalenessSamples:    c.CPRStalenessSamples,
		Verbose:                c.Verbose,
	}
}
