package adsb

// Record is a parsed DF17 airborne-position record. Timestamp is the
// candidate's sample index, used as a monotonic clock in place of wall
// time.
type Record struct {
	ICAO       uint32
	TypeCode   uint8
	AltitudeFt *int // nil when unavailable (Q=0 under the "skip" policy)
	CPRFormat  uint8 // 0 = even, 1 = odd
	CPRLatRaw  uint32
	CPRLonRaw  uint32
	Timestamp  int64
}

// PositionFix is a resolved global position.
type PositionFix struct {
	ICAO  uint32
	Lat   float64
	Lon   float64
	AltFt *int
}

// GetDF returns the frame's 5-bit Downlink Format field (bits 1-5).
func (f Frame) GetDF() uint8 {
	return uint8(f.Bits(1, 5))
}

// GetICAO returns the frame's 24-bit ICAO address (bits 9-32).
func (f Frame) GetICAO() uint32 {
	return uint32(f.Bits(9, 32))
}

// GetTypeCode returns the frame's 5-bit ADS-B type code (bits 33-37).
func (f Frame) GetTypeCode() uint8 {
	return uint8(f.Bits(33, 37))
}
