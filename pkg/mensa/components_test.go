package mensa

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// descSelection parses an expand-nutr fragment and returns its
// selection, the way the walker hands dish descriptions to the
// extractor.
func descSelection(t *testing.T, inner string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><span class="expand-nutr">` + inner + `</span></body></html>`))
	require.NoError(t, err)
	sel := doc.Find(".expand-nutr")
	require.Equal(t, 1, sel.Length())
	return sel
}

func TestExtractComponents(t *testing.T) {
	tests := []struct {
		name     string
		inner    string
		want     []Component
		warnings int
	}{
		{
			name:  "single component without flags",
			inner: `Bulgureintopf`,
			want:  []Component{{Title: "Bulgureintopf"}},
		},
		{
			name:  "main with aux components",
			inner: `Currywurst<sup>1,4</sup> | Pommes frites | Krautsalat<sup>B</sup>`,
			want: []Component{
				{Title: "Currywurst", Flags: []Flag{FlagFarbstoff, FlagGeschmacksverstaerker}},
				{Title: "Pommes frites"},
				{Title: "Krautsalat", Flags: []Flag{FlagSellerie}},
			},
		},
		{
			name:  "flags with whitespace",
			inner: `Milchreis<sup> H , A1 </sup>`,
			want: []Component{
				{Title: "Milchreis", Flags: []Flag{FlagMilch, FlagWeizen}},
			},
		},
		{
			name:  "expand button is skipped",
			inner: `Gemüsesuppe<span class="menue-nutr">+</span>`,
			want:  []Component{{Title: "Gemüsesuppe"}},
		},
		{
			name:  "deposit annotation is skipped",
			inner: `Mineralwasser<sup>Preis ohne Pfand</sup>`,
			want:  []Component{{Title: "Mineralwasser"}},
		},
		{
			name:     "unknown flag is dropped with warning",
			inner:    `Hähnchenbrust<sup>A,Z9,H</sup>`,
			want:     []Component{{Title: "Hähnchenbrust", Flags: []Flag{FlagGluten, FlagMilch}}},
			warnings: 1,
		},
		{
			name:  "empty separator segments are ignored",
			inner: `Schnitzel | | Reis`,
			want: []Component{
				{Title: "Schnitzel"},
				{Title: "Reis"},
			},
		},
		{
			name:  "empty description",
			inner: ``,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := extractComponents(descSelection(t, tt.inner))
			assert.Equal(t, tt.want, got)
			assert.Len(t, warnings, tt.warnings)
			for _, w := range warnings {
				assert.Equal(t, WarnUnknownFlagCode, w.Kind)
			}
		})
	}
}

func TestExtractComponentsUnknownFlagDetail(t *testing.T) {
	_, warnings := extractComponents(descSelection(t, `Eintopf<sup>Z9</sup>`))
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnUnknownFlagCode, warnings[0].Kind)
	assert.Equal(t, "Z9", warnings[0].Raw)
}
