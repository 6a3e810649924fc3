package adsb

import "math"

// Magnitude converts an interleaved-IQ byte buffer into a non-negative
// magnitude sequence of len(iq)/2 values. A trailing odd byte is ignored.
func Magnitude(iq []byte) []float64 {
	n := len(iq) / 2
	mags := make([]float64, n)

	for i := 0; i < n; i++ {
		di := float64(iq[2*i]) - 127.5
		dq := float64(iq[2*i+1]) - 127.5
		mags[i] = math.Sqrt(di*di + dq*dq)
	}

	return mags
}
