package mensa

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Prices are printed with a comma decimal separator and a euro
	// suffix, e.g. "1,80 €". The pattern admits no sign, so parsed
	// prices are never negative.
	rePrice = regexp.MustCompile(`([\d]+(?:,\d+)?)\s*€`)

	// Nutrition facts appear as "label = value unit" fragments inside
	// one text blob.
	reEnergy  = regexp.MustCompile(`Brennwert\s*=\s*([\d,]+)\s*kJ`)
	reFat     = regexp.MustCompile(`Fett\s*=\s*([\d,]+)\s*g`)
	reCarbs   = regexp.MustCompile(`Kohlenhydrate\s*=\s*([\d,]+)\s*g`)
	reProtein = regexp.MustCompile(`Eiwei\S*\s*=\s*([\d,]+)\s*g`)
)

// cleanText trims a raw fragment and collapses internal whitespace
// runs (including non-breaking spaces) to single spaces.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// placeholder markers the provider prints for an unpublished price.
func isAbsentMarker(s string) bool {
	switch s {
	case "", "-", "–", "—":
		return true
	}
	return false
}

// ParsePrice parses a currency-formatted field into an exact decimal
// amount. Empty or placeholder text yields (nil, nil): an unpublished
// price is a valid state, not an error. Text that is present but not
// currency-shaped yields *MalformedPriceError.
func ParsePrice(raw string) (*decimal.Decimal, error) {
	s := cleanText(raw)
	if isAbsentMarker(s) {
		return nil, nil
	}
	m := rePrice.FindStringSubmatch(s)
	if m == nil {
		return nil, &MalformedPriceError{Raw: s}
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", "."))
	if err != nil {
		return nil, &MalformedPriceError{Raw: s}
	}
	// Euro amounts carry at most two fractional digits; anything finer
	// is not a price.
	if d.Exponent() < -2 {
		return nil, &MalformedPriceError{Raw: s}
	}
	return &d, nil
}

// parseLocaleDecimal parses a numeral with a comma decimal separator.
func parseLocaleDecimal(raw string) (*decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return nil, false
	}
	return &d, true
}

// parseNutrition extracts the nutrition quadruple from the text of a
// nutrition-info block. Each field is matched independently; a field
// whose label is missing stays nil without a warning, while a matched
// but unparsable numeral is reported per field so the rest of the
// quadruple survives.
func parseNutrition(text string) (NutritionalValues, []Warning) {
	var nv NutritionalValues
	var warnings []Warning

	fields := []struct {
		re   *regexp.Regexp
		dst  **decimal.Decimal
		name string
	}{
		{reEnergy, &nv.Energy, "energy"},
		{reFat, &nv.Fat, "fat"},
		{reCarbs, &nv.Carbs, "carbs"},
		{reProtein, &nv.Protein, "protein"},
	}
	for _, f := range fields {
		m := f.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		d, ok := parseLocaleDecimal(m[1])
		if !ok {
			warnings = append(warnings, Warning{
				Kind:   WarnMalformedNutrition,
				Raw:    m[1],
				Detail: f.name,
			})
			continue
		}
		*f.dst = d
	}
	return nv, warnings
}
