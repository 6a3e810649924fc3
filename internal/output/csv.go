// Package output formats resolved position fixes for external
// consumption: CSV, JSON, and KML. None of these formats has a
// third-party library anywhere in the retrieval pack, so each writer
// is grounded on the standard library's matching encoding package.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"go1090/internal/adsb"
)

// WriteCSV writes fixes as "lat,lon,alt,icao" rows, ICAO formatted as a
// lowercase 0x-prefixed hex string. alt is empty when the fix carries no
// altitude.
func WriteCSV(w io.Writer, fixes []adsb.PositionFix) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"lat", "lon", "alt", "icao"}); err != nil {
		return err
	}

	for _, f := range fixes {
		alt := ""
		if f.AltFt != nil {
			alt = fmt.Sprintf("%d", *f.AltFt)
		}

		row := []string{
			strconv.FormatFloat(f.Lat, 'f', -1, 64),
			strconv.FormatFloat(f.Lon, 'f', -1, 64),
			alt,
			fmt.Sprintf("0x%06x", f.ICAO),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
