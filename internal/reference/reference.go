// Package reference provides static Norwegian location data: the county and
// municipality hierarchy, approximate postal-code coordinates and the default
// postal-code seed list.
package reference

// County is a Norwegian fylke.
type County struct {
	Name           string         `json:"name"`
	Number         string         `json:"number"`
	Municipalities []Municipality `json:"municipalities"`
}

// Municipality is a Norwegian kommune.
type Municipality struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PostalCodeEntry is one row of the default postal-code list.
type PostalCodeEntry struct {
	PostalCode   string
	PostPlace    string
	Municipality string
	County       string
}

// DefaultCoordinate is the centre of Oslo, used when nothing better is known.
var DefaultCoordinate = Coordinate{Lat: 59.9139, Lng: 10.7522}

var municipalityCounty = func() map[string]string {
	m := make(map[string]string)
	for _, c := range counties {
		for _, mun := range c.Municipalities {
			if _, ok := m[mun.Name]; !ok {
				m[mun.Name] = c.Name
			}
		}
	}
	return m
}()

// Counties returns all county names in reference order.
func Counties() []string {
	names := make([]string, 0, len(counties))
	for _, c := range counties {
		names = append(names, c.Name)
	}
	return names
}

// Municipalities returns the municipalities of county, or nil for an unknown county.
func Municipalities(county string) []Municipality {
	for _, c := range counties {
		if c.Name == county {
			out := make([]Municipality, len(c.Municipalities))
			copy(out, c.Municipalities)
			return out
		}
	}
	return nil
}

// CountyOf returns the county containing municipality.
func CountyOf(municipality string) (string, bool) {
	county, ok := municipalityCounty[municipality]
	return county, ok
}

// IsKnown reports whether municipality belongs to county.
func IsKnown(county, municipality string) bool {
	for _, m := range Municipalities(county) {
		if m.Name == municipality {
			return true
		}
	}
	return false
}

// PostalCoordinate returns the approximate centre of a postal code.
func PostalCoordinate(code string) (Coordinate, bool) {
	c, ok := postalCoordinates[code]
	return c, ok
}
