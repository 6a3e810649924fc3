package adsb

// CPR decoding constants
const (
	CPRLatBits = 17
	CPRLonBits = 17
	CPRMax     = 131072.0 // 2^17, shared scale for both lat and lon CPR fields
)

// Frame geometry
const (
	FrameBits  = 112
	FrameBytes = 14
)

// PPM geometry at 2 Msps: 16 samples of preamble, 2 samples per data bit.
const (
	PreambleSamples  = 16
	SamplesPerBit    = 2
	PayloadSamples   = FrameBits * SamplesPerBit
	CandidateSamples = PreambleSamples + PayloadSamples
)

// Preamble pulse positions within the 16-sample window; every other
// position is a quiet slot.
var preamblePulseOffsets = [4]int{0, 2, 7, 9}

// DefaultPreambleThresholdRatio is the empirical pulse/noise-floor ratio
// above which a candidate preamble is accepted.
const DefaultPreambleThresholdRatio = 5.0

// DefaultCPRStalenessSamples is ~10s of wall time at 2 Msps.
const DefaultCPRStalenessSamples = 20_000_000

// Airborne-position type codes accepted by the DF17 parser.
const (
	MinAirbornePositionTC = 9
	MaxAirbornePositionTC = 18
)
