// Package mensa parses the weekly menu pages published by
// Studierendenwerk Aachen into typed, date-keyed menu records.
package mensa

import "fmt"

// Canteen identifies one of the Studierendenwerk Aachen canteens.
// The value is the slug used in the weekly menu page URL.
type Canteen string

const (
	MensaAcademica     Canteen = "academica"
	MensaAhornstrasse  Canteen = "ahornstrasse"
	BistroTemplergaben Canteen = "templergraben"
	MensaBayernallee   Canteen = "bayernallee"
	MensaEupenerStr    Canteen = "eupenerstrasse"
	MensaGoethestrasse Canteen = "goethestrasse"
	MensaSuedpark      Canteen = "suedpark"
	MensaVita          Canteen = "vita"
	MensaJuelich       Canteen = "juelich"
)

// Canteens lists all known canteens in a stable order.
func Canteens() []Canteen {
	return []Canteen{
		MensaAcademica,
		MensaAhornstrasse,
		BistroTemplergaben,
		MensaBayernallee,
		MensaEupenerStr,
		MensaGoethestrasse,
		MensaSuedpark,
		MensaVita,
		MensaJuelich,
	}
}

// CanteenFromSlug resolves a URL slug to a Canteen.
func CanteenFromSlug(slug string) (Canteen, error) {
	for _, c := range Canteens() {
		if string(c) == slug {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown canteen: %q", slug)
}

// Slug returns the identifier used in the provider's menu page URLs.
func (c Canteen) Slug() string {
	return string(c)
}
