package mensa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFlagRoundTrip(t *testing.T) {
	// Every registered flag must resolve back to itself from its
	// abbreviation.
	for _, f := range Flags() {
		resolved, err := ResolveFlag(f.Abbreviation())
		require.NoError(t, err, "abbreviation %q", f.Abbreviation())
		assert.Equal(t, f, resolved)
		assert.NotEmpty(t, f.Name(), "flag %q has no name", f.Abbreviation())
	}
}

func TestResolveFlagUnknown(t *testing.T) {
	tests := []string{"Z9", "X", "", "a1", "11"}
	for _, abbr := range tests {
		t.Run(abbr, func(t *testing.T) {
			_, err := ResolveFlag(abbr)
			require.Error(t, err)

			var unknownErr *UnknownFlagError
			require.True(t, errors.As(err, &unknownErr))
			assert.Equal(t, abbr, unknownErr.Code)
		})
	}
}

func TestFlagAbbreviationsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Flags() {
		abbr := f.Abbreviation()
		assert.False(t, seen[abbr], "duplicate abbreviation %q", abbr)
		seen[abbr] = true
	}
}

func TestCanteenFromSlug(t *testing.T) {
	c, err := CanteenFromSlug("academica")
	require.NoError(t, err)
	assert.Equal(t, MensaAcademica, c)

	_, err = CanteenFromSlug("hogwarts")
	require.Error(t, err)
}
