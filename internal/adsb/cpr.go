package adsb

import (
	"math"
	"sync"

	"github.com/sirupsen/logrus"

	"go1090/internal/geoutil"
)

// cprSlot is one pending even or odd CPR record for an aircraft.
type cprSlot struct {
	latCPR    uint32
	lonCPR    uint32
	altFt     *int
	timestamp int64
}

// aircraftCPRState is the per-ICAO pending table entry. The pairing
// state (empty / even-only / odd-only / paired) falls directly out of
// which of even/odd is non-nil, so no explicit state field is needed.
type aircraftCPRState struct {
	even *cprSlot
	odd  *cprSlot
}

// CPRResolver performs per-ICAO even/odd CPR pairing and global position
// decoding. Owned exclusively by one decode invocation — nothing here is
// process-wide state.
type CPRResolver struct {
	aircraft  map[uint32]*aircraftCPRState
	staleness int64
	logger    *logrus.Logger
	verbose   bool
	mu        sync.Mutex
}

// NewCPRResolver creates a resolver with the given staleness bound in
// samples.
func NewCPRResolver(stalenessSamples int64, logger *logrus.Logger, verbose bool) *CPRResolver {
	return &CPRResolver{
		aircraft:  make(map[uint32]*aircraftCPRState),
		staleness: stalenessSamples,
		logger:    logger,
		verbose:   verbose,
	}
}

// Update feeds one parsed DF17 airborne-position record into the
// resolver and returns a PositionFix when the record completes a valid
// even/odd pair. ok is false when no fix results — either because the
// aircraft's other parity slot is still empty, or because the pairing
// attempt failed the staleness or NL-consistency gate. Pending slots are
// retained regardless: a failed decode attempt never changes state.
func (r *CPRResolver) Update(rec Record) (PositionFix, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, exists := r.aircraft[rec.ICAO]
	if !exists {
		state = &aircraftCPRState{}
		r.aircraft[rec.ICAO] = state
	}

	slot := &cprSlot{
		latCPR:    rec.CPRLatRaw,
		lonCPR:    rec.CPRLonRaw,
		altFt:     rec.AltitudeFt,
		timestamp: rec.Timestamp,
	}

	if rec.CPRFormat == 0 {
		state.even = slot
	} else {
		state.odd = slot
	}

	if state.even == nil || state.odd == nil {
		return PositionFix{}, false
	}

	if absInt64(state.even.timestamp-state.odd.timestamp) > r.staleness {
		if r.verbose {
			r.logger.WithField("icao", rec.ICAO).Debug("CPR pair exceeds staleness bound")
		}
		return PositionFix{}, false
	}

	lat, lon, ok := decodeGlobalCPR(*state.even, *state.odd)
	if !ok {
		if r.verbose {
			r.logger.WithField("icao", rec.ICAO).Debug("CPR pair failed NL consistency or range gate")
		}
		return PositionFix{}, false
	}

	if !geoutil.Valid(lat, lon) {
		if r.verbose {
			r.logger.WithField("icao", rec.ICAO).Debug("CPR pair resolved to an out-of-range position")
		}
		return PositionFix{}, false
	}

	mostRecent := state.even
	if state.odd.timestamp > state.even.timestamp {
		mostRecent = state.odd
	}

	return PositionFix{
		ICAO:  rec.ICAO,
		Lat:   lat,
		Lon:   lon,
		AltFt: mostRecent.altFt,
	}, true
}

// mod implements the always-non-negative remainder convention:
// mod(x, n) = x - n*floor(x/n).
func mod(x, n float64) float64 {
	return x - n*math.Floor(x/n)
}

func modInt(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// decodeGlobalCPR implements the global CPR position-recovery algorithm.
func decodeGlobalCPR(even, odd cprSlot) (float64, float64, bool) {
	const dLatEven = 360.0 / 60.0
	const dLatOdd = 360.0 / 59.0

	yE := float64(even.latCPR) / CPRMax
	yO := float64(odd.latCPR) / CPRMax

	j := int(math.Floor(59*yE - 60*yO + 0.5))

	latE := dLatEven * (float64(modInt(j, 60)) + yE)
	latO := dLatOdd * (float64(modInt(j, 59)) + yO)

	if latE >= 270 {
		latE -= 360
	}
	if latO >= 270 {
		latO -= 360
	}

	if latE <= -90 || latE > 90 || latO <= -90 || latO > 90 {
		return 0, 0, false
	}

	if NLTable(latE) != NLTable(latO) {
		return 0, 0, false
	}

	useOdd := odd.timestamp > even.timestamp

	lat := latE
	if useOdd {
		lat = latO
	}
	nl := NLTable(lat)

	lonE := float64(even.lonCPR) / CPRMax
	lonO := float64(odd.lonCPR) / CPRMax
	m := int(math.Floor(lonE*float64(nl-1)-lonO*float64(nl) + 0.5))

	var n int
	var lon float64
	if useOdd {
		n = maxInt(nl-1, 1)
		lon = (360.0 / float64(n)) * (float64(modInt(m, n)) + lonO)
	} else {
		n = maxInt(nl, 1)
		lon = (360.0 / float64(n)) * (float64(modInt(m, n)) + lonE)
	}

	lon = mod(lon+180, 360) - 180
	if lon <= -180 {
		lon += 360
	}

	return lat, lon, true
}

// NLTable returns the number of longitude zones NL(lat), using the
// standard dump1090-derived lookup table.
func NLTable(lat float64) int {
	absLat := math.Abs(lat)

	switch {
	case absLat < 10.47047130:
		return 59
	case absLat < 14.82817437:
		return 58
	case absLat < 18.18626357:
		return 57
	case absLat < 21.02939493:
		return 56
	case absLat < 23.54504487:
		return 55
	case absLat < 25.82924707:
		return 54
	case absLat < 27.93898710:
		return 53
	case absLat < 29.91135686:
		return 52
	case absLat < 31.77209708:
		return 51
	case absLat < 33.53993436:
		return 50
	case absLat < 35.22899598:
		return 49
	case absLat < 36.85025108:
		return 48
	case absLat < 38.41241892:
		return 47
	case absLat < 39.92256684:
		return 46
	case absLat < 41.38651832:
		return 45
	case absLat < 42.80914012:
		return 44
	case absLat < 44.19454951:
		return 43
	case absLat < 45.54626723:
		return 42
	case absLat < 46.86733252:
		return 41
	case absLat < 48.16039128:
		return 40
	case absLat < 49.42776439:
		return 39
	case absLat < 50.67150166:
		return 38
	case absLat < 51.89342469:
		return 37
	case absLat < 53.09516153:
		return 36
	case absLat < 54.27817472:
		return 35
	case absLat < 55.44378444:
		return 34
	case absLat < 56.59318756:
		return 33
	case absLat < 57.72747354:
		return 32
	case absLat < 58.84763776:
		return 31
	case absLat < 59.95459277:
		return 30
	case absLat < 61.04917774:
		return 29
	case absLat < 62.13216659:
		return 28
	case absLat < 63.20427479:
		return 27
	case absLat < 64.26616523:
		return 26
	case absLat < 65.31845310:
		return 25
	case absLat < 66.36171008:
		return 24
	case absLat < 67.39646774:
		return 23
	case absLat < 68.42322022:
		return 22
	case absLat < 69.44242631:
		return 21
	case absLat < 70.45451075:
		return 20
	case absLat < 71.45986473:
		return 19
	case absLat < 72.45884545:
		return 18
	case absLat < 73.45177442:
		return 17
	case absLat < 74.43893416:
		return 16
	case absLat < 75.42056257:
		return 15
	case absLat < 76.39684391:
		return 14
	case absLat < 77.36789461:
		return 13
	case absLat < 78.33374083:
		return 12
	case absLat < 79.29428225:
		return 11
	case absLat < 80.24923213:
		return 10
	case absLat < 81.19801349:
		return 9
	case absLat < 82.13956981:
		return 8
	case absLat < 83.07199445:
		return 7
	case absLat < 83.99173563:
		return 6
	case absLat < 84.89166191:
		return 5
	case absLat < 85.75541621:
		return 4
	case absLat < 86.53536998:
		return 3
	case absLat <= 87.00000000:
		return 2
	default:
		return 1
	}
}
