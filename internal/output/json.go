package output

import (
	"encoding/json"
	"fmt"
	"io"

	"go1090/internal/adsb"
)

// jsonFix mirrors adsb.PositionFix but renders ICAO as the lowercase
// 0x-prefixed hex string used by every output writer.
type jsonFix struct {
	ICAO string  `json:"icao"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Alt  *int    `json:"alt"`
}

// WriteJSON writes fixes as a JSON array of objects with fields
// icao/lat/lon/alt, alt serialized as JSON null when the fix carries no
// altitude.
func WriteJSON(w io.Writer, fixes []adsb.PositionFix) error {
	out := make([]jsonFix, len(fixes))
	for i, f := range fixes {
		out[i] = jsonFix{
			ICAO: fmt.Sprintf("0x%06x", f.ICAO),
			Lat:  f.Lat,
			Lon:  f.Lon,
			Alt:  f.AltFt,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
