package app

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"go1090/internal/adsb"
	"go1090/internal/beast"
	"go1090/internal/logging"
	"go1090/internal/output"
)

// Application drives one batch decode: read an input file, run the
// decode pipeline, and write the resolved fixes in the requested format.
type Application struct {
	config     Config
	logger     *logrus.Logger
	logRotator *logging.LogRotator
}

// NewApplication creates a new application instance.
func NewApplication(config Config) *Application {
	logger := logrus.New()
	if config.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Application{
		config: config,
		logger: logger,
	}
}

// Run executes the decode and writes output. It returns a non-nil error
// only for fatal I/O or configuration failures; a decode that simply
// produces zero fixes is a successful run.
func (a *Application) Run() error {
	if err := a.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logRotator, err := logging.NewLogRotator(a.config.LogDir, a.config.LogRotateUTC, a.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize log rotator: %w", err)
	}
	a.logRotator = logRotator
	defer a.logRotator.Close()

	if writer, err := a.logRotator.GetWriter(); err == nil {
		a.logger.SetOutput(writer)
	}

	a.logger.WithFields(logrus.Fields{
		"version": Version,
		"input":   a.config.InputPath,
		"format":  a.config.Format,
		"beast":   a.config.Beast,
	}).Info("Starting ADS-B position decode")

	buf, err := os.ReadFile(a.config.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	result, err := a.decode(buf)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	a.logger.WithFields(logrus.Fields{
		"preamble_candidates": result.Stats.PreambleCandidates,
		"crc_failures":        result.Stats.CRCFailures,
		"non_df17_frames":     result.Stats.NonDF17Frames,
		"tie_bit_frames":      result.Stats.TieBitFrames,
		"airborne_positions":  result.Stats.AirbornePositions,
		"position_fixes":      result.Stats.PositionFixes,
	}).Info("Decode complete")

	return a.writeOutput(result.Fixes)
}

func (a *Application) decode(buf []byte) (adsb.Result, error) {
	cfg := a.config.decoderConfig()

	if !a.config.Beast {
		return adsb.Decode(buf, cfg, a.logger), nil
	}

	decoder := beast.NewDecoder(a.logger)
	frames, timestamps, err := beast.DecodeFrames(buf, decoder)
	if err != nil {
		return adsb.Result{}, fmt.Errorf("beast frame decode failed: %w", err)
	}

	return adsb.DecodeRecords(frames, timestamps, cfg, a.logger), nil
}

func (a *Application) writeOutput(fixes []adsb.PositionFix) error {
	w := io.Writer(os.Stdout)
	if a.config.OutputPath != "" {
		f, err := os.Create(a.config.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch a.config.Format {
	case FormatCSV:
		return output.WriteCSV(w, fixes)
	case FormatJSON:
		return output.WriteJSON(w, fixes)
	case FormatKML:
		return output.WriteKML(w, fixes)
	default:
		return fmt.Errorf("unknown output format: %s", a.config.Format)
	}
}
