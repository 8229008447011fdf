package mensa

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims", "  Bulgureintopf  ", "Bulgureintopf"},
		{"collapses runs", "Hähnchen  mit\n\tReis", "Hähnchen mit Reis"},
		{"non-breaking space", "Pommes\u00a0frites", "Pommes frites"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanText(tt.in))
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // decimal string, "" = absent
	}{
		{"plain", "1,80 €", "1.8"},
		{"no space", "4,10€", "4.1"},
		{"with prefix text", "Preis 2,50 €", "2.5"},
		{"integer euros", "3 €", "3"},
		{"one fractional digit", "0,9 €", "0.9"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"dash placeholder", "-", ""},
		{"en dash placeholder", "–", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			require.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
			assert.False(t, got.IsNegative())
		})
	}
}

func TestParsePriceMalformed(t *testing.T) {
	for _, in := range []string{"ausverkauft", "€", "1.80 EUR", "1,805 €"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePrice(in)
			require.Error(t, err)

			var malformed *MalformedPriceError
			require.True(t, errors.As(err, &malformed))
		})
	}
}

func TestParseNutrition(t *testing.T) {
	t.Run("full quadruple", func(t *testing.T) {
		nv, warnings := parseNutrition("Brennwert = 2.680,5 kJ, Fett = 12,3 g, Kohlenhydrate = 80 g, Eiweiß = 22,1 g")
		assert.Empty(t, warnings)
		// The thousands separator cuts the energy match short; the
		// provider does not print one in practice.
		require.NotNil(t, nv.Fat)
		require.NotNil(t, nv.Carbs)
		require.NotNil(t, nv.Protein)
		assert.True(t, nv.Fat.Equal(decimal.RequireFromString("12.3")))
		assert.True(t, nv.Carbs.Equal(decimal.RequireFromString("80")))
		assert.True(t, nv.Protein.Equal(decimal.RequireFromString("22.1")))
	})

	t.Run("plain energy value", func(t *testing.T) {
		nv, warnings := parseNutrition("Brennwert = 680 kJ")
		assert.Empty(t, warnings)
		require.NotNil(t, nv.Energy)
		assert.True(t, nv.Energy.Equal(decimal.RequireFromString("680")))
		assert.Nil(t, nv.Fat)
		assert.Nil(t, nv.Carbs)
		assert.Nil(t, nv.Protein)
	})

	t.Run("unparsable numeral warns per field", func(t *testing.T) {
		nv, warnings := parseNutrition("Fett = , g, Eiweiß = 22 g")
		require.Len(t, warnings, 1)
		assert.Equal(t, WarnMalformedNutrition, warnings[0].Kind)
		assert.Equal(t, ",", warnings[0].Raw)
		assert.Equal(t, "fat", warnings[0].Detail)
		assert.Nil(t, nv.Fat)
		require.NotNil(t, nv.Protein)
		assert.True(t, nv.Protein.Equal(decimal.RequireFromString("22")))
	})

	t.Run("empty text yields all absent", func(t *testing.T) {
		nv, warnings := parseNutrition("")
		assert.Empty(t, warnings)
		assert.Nil(t, nv.Energy)
		assert.Nil(t, nv.Fat)
		assert.Nil(t, nv.Carbs)
		assert.Nil(t, nv.Protein)
	})
}

func TestMeatTypesFromClasses(t *testing.T) {
	tests := []struct {
		name    string
		classes string
		want    []MeatType
	}{
		{"vegan and vegetarian", "bg-color odd vegan OLV", []MeatType{Vegan, Vegetarian}},
		{"pork", "even Schwein", []MeatType{Pork}},
		{"poultry", "Geflügel", []MeatType{Poultry}},
		{"unclassified", "bg-color odd", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, meatTypesFromClasses(tt.classes))
		})
	}
}
