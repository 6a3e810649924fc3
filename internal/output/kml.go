package output

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"go1090/internal/adsb"
)

const feetToMeters = 0.3048

// KML structures follow the KML 2.2 specification, the same shape
// kmlexport uses for its Document/Placemark/Point marshalling.
type kmlRoot struct {
	XMLName   xml.Name `xml:"kml"`
	Namespace string   `xml:"xmlns,attr"`
	Document  kmlDoc   `xml:"Document"`
}

type kmlDoc struct {
	Name       string         `xml:"name"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name       string         `xml:"name"`
	Point      *kmlPoint      `xml:"Point,omitempty"`
	LineString *kmlLineString `xml:"LineString,omitempty"`
}

type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

type kmlLineString struct {
	Coordinates string `xml:"coordinates"`
}

// WriteKML writes fixes as one <Placemark><Point> per fix plus one
// <Placemark><LineString> track per aircraft with at least two fixes,
// coordinates ordered lon,lat,alt as
// the KML spec requires, altitude converted to meters.
func WriteKML(w io.Writer, fixes []adsb.PositionFix) error {
	doc := kmlDoc{Name: "ADS-B position fixes"}

	tracks := make(map[uint32][]string)
	var order []uint32

	for _, f := range fixes {
		coord := coordinate(f)

		doc.Placemarks = append(doc.Placemarks, kmlPlacemark{
			Name:  fmt.Sprintf("0x%06x", f.ICAO),
			Point: &kmlPoint{Coordinates: coord},
		})

		if _, seen := tracks[f.ICAO]; !seen {
			order = append(order, f.ICAO)
		}
		tracks[f.ICAO] = append(tracks[f.ICAO], coord)
	}

	for _, icao := range order {
		points := tracks[icao]
		if len(points) < 2 {
			continue
		}
		doc.Placemarks = append(doc.Placemarks, kmlPlacemark{
			Name:       fmt.Sprintf("0x%06x track", icao),
			LineString: &kmlLineString{Coordinates: strings.Join(points, " ")},
		})
	}

	root := kmlRoot{Namespace: "http://www.opengis.net/kml/2.2", Document: doc}

	data, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func coordinate(f adsb.PositionFix) string {
	altMeters := 0.0
	if f.AltFt != nil {
		altMeters = float64(*f.AltFt) * feetToMeters
	}
	return fmt.Sprintf("%.6f,%.6f,%.1f", f.Lon, f.Lat, altMeters)
}
