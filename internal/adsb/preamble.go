package adsb

// Candidate is a preamble match: the sample index of the start of the
// 16-sample preamble window, and the local noise floor used to derive
// the detection threshold.
type Candidate struct {
	Index      int
	NoiseFloor float64
}

// DetectPreambles scans mags for the Mode S preamble pattern (pulses at
// offsets {0,2,7,9}, quiet elsewhere) using ratio threshold alpha.
// Candidates are returned in ascending sample-index order. A confirmed
// candidate causes the scan to skip ahead by CandidateSamples so the same
// physical message is never reported twice.
func DetectPreambles(mags []float64, alpha float64) []Candidate {
	var candidates []Candidate

	for k := 0; k+CandidateSamples <= len(mags); k++ {
		cand, ok := matchPreamble(mags, k, alpha)
		if !ok {
			continue
		}
		candidates = append(candidates, cand)
		k += CandidateSamples - 1 // loop increment adds the remaining 1
	}

	return candidates
}

// matchPreamble tests whether window k holds a valid preamble: every
// pulse offset must exceed the ratio threshold, and every non-pulse
// offset must fall strictly below the weakest pulse (ties rejected).
func matchPreamble(mags []float64, k int, alpha float64) (Candidate, bool) {
	window := mags[k : k+PreambleSamples]

	isPulse := [PreambleSamples]bool{}
	for _, off := range preamblePulseOffsets {
		isPulse[off] = true
	}

	var noiseSum float64
	var noiseCount int
	for i, v := range window {
		if isPulse[i] {
			continue
		}
		noiseSum += v
		noiseCount++
	}
	noiseFloor := noiseSum / float64(noiseCount)

	threshold := alpha * noiseFloor

	var weakestPulse = -1.0
	for i, off := range preamblePulseOffsets {
		v := window[off]
		if v <= threshold {
			return Candidate{}, false
		}
		if i == 0 || v < weakestPulse {
			weakestPulse = v
		}
	}

	for i, v := range window {
		if isPulse[i] {
			continue
		}
		if v >= weakestPulse {
			return Candidate{}, false
		}
	}

	return Candidate{Index: k, NoiseFloor: noiseFloor}, true
}
