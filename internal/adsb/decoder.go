package adsb

import (
	"github.com/sirupsen/logrus"
)

// Config controls a single decode pass.
type Config struct {
	PreambleThresholdRatio float64
	EnforceCRC             bool
	AltitudeQ0Policy       AltitudeQ0Policy
	CPRStalenessSamples    int64
	Verbose                bool
}

// DefaultConfig returns the decoder's default tuning.
func DefaultConfig() Config {
	return Config{
		PreambleThresholdRatio: DefaultPreambleThresholdRatio,
		EnforceCRC:             true,
		AltitudeQ0Policy:       AltitudeQ0Skip,
		CPRStalenessSamples:    DefaultCPRStalenessSamples,
	}
}

// Stats accumulates per-run diagnostic counters.
type Stats struct {
	PreambleCandidates uint64
	CRCFailures        uint64
	NonDF17Frames      uint64
	TieBitFrames       uint64
	AirbornePositions  uint64
	PositionFixes      uint64
}

// Result is the outcome of one Decode call.
type Result struct {
	Fixes []PositionFix
	Stats Stats
}

// Decode runs the full magnitude -> preamble -> PPM -> CRC -> DF17 -> CPR
// pipeline over a raw interleaved-IQ buffer and returns every resolved
// position fix, in the order CPR pairing produced them.
func Decode(iq []byte, cfg Config, logger *logrus.Logger) Result {
	mags := Magnitude(iq)
	candidates := DetectPreamblesParallel(mags, cfg.PreambleThresholdRatio, ParallelPreambleChunkSamples, ParallelPreambleWorkers)

	resolver := NewCPRResolver(cfg.CPRStalenessSamples, logger, cfg.Verbose)

	var result Result
	result.Stats.PreambleCandidates = uint64(len(candidates))

	for _, cand := range candidates {
		frame, ok := Demodulate(mags, cand.Index)
		if !ok {
			result.Stats.TieBitFrames++
			continue
		}

		if cfg.EnforceCRC && !CRCOK(frame) {
			result.Stats.CRCFailures++
			continue
		}

		rec, ok := ParseDF17(frame, int64(cand.Index), cfg.AltitudeQ0Policy)
		if !ok {
			result.Stats.NonDF17Frames++
			continue
		}
		result.Stats.AirbornePositions++

		fix, ok := resolver.Update(rec)
		if !ok {
			continue
		}
		result.Stats.PositionFixes++
		result.Fixes = append(result.Fixes, fix)
	}

	return result
}

// DecodeRecords runs CRC/DF17 parsing plus CPR resolution over frames that
// were already demodulated upstream (e.g. Beast-framed input), bypassing
// the magnitude/preamble/PPM stages entirely.
func DecodeRecords(frames []Frame, timestamps []int64, cfg Config, logger *logrus.Logger) Result {
	resolver := NewCPRResolver(cfg.CPRStalenessSamples, logger, cfg.Verbose)

	var result Result
	for i, frame := range frames {
		if cfg.EnforceCRC && !CRCOK(frame) {
			result.Stats.CRCFailures++
			continue
		}

		rec, ok := ParseDF17(frame, timestamps[i], cfg.AltitudeQ0Policy)
		if !ok {
			result.Stats.NonDF17Frames++
			continue
		}
		result.Stats.AirbornePositions++

		fix, ok := resolver.Update(rec)
		if !ok {
			continue
		}
		result.Stats.PositionFixes++
		result.Fixes = append(result.Fixes, fix)
	}

	return result
}
