package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/sutda/internal/card"
	"github.com/arcanaland/sutda/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeck(t *testing.T, f deck.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.toml")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, deck.Encode(file, f))
	return path
}

func TestValidateStandardDeck(t *testing.T) {
	path := writeDeck(t, deck.New().File())

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewValidator(filepath.Join(t.TempDir(), "deck.toml")).Validate()
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deck.toml")
		require.NoError(t, os.WriteFile(path, []byte("[[cards]\n"), 0644))
		_, err := NewValidator(path).Validate()
		assert.Error(t, err)
	})
}

func TestValidateRuleViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(f *deck.File)
		errors []string
	}{
		{
			name:   "missing card",
			mutate: func(f *deck.File) { f.Cards = f.Cards[1:] },
			errors: []string{
				"deck has 19 cards, want 20",
				"rank 1 appears 1 times, want 2",
				"rank 1 has 0 kwang cards, want 1",
			},
		},
		{
			name:   "rank out of range",
			mutate: func(f *deck.File) { f.Cards[19].Rank = 11 },
			errors: []string{
				"card 20: rank out of range: 11 (want 1-10)",
				"rank 10 appears 1 times, want 2",
			},
		},
		{
			name:   "kwang on ineligible rank",
			mutate: func(f *deck.File) { f.Cards[1].Kwang = true },
			errors: []string{"rank 2 cannot be kwang"},
		},
		{
			name:   "two kwangs",
			mutate: func(f *deck.File) { f.Cards[17].Kwang = true },
			errors: []string{"rank 8 has 2 kwang cards, want 1"},
		},
		{
			name:   "no kwang",
			mutate: func(f *deck.File) { f.Cards[2].Kwang = false },
			errors: []string{"rank 3 has 0 kwang cards, want 1"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := deck.New().File()
			c.mutate(&f)

			results, err := NewValidator(writeDeck(t, f)).Validate()
			require.NoError(t, err)
			assert.Equal(t, c.errors, results.Errors)
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	f := deck.New().File()
	f.Deck.Name = ""
	// swap the kwang to the second copy of rank 1
	f.Cards[0].Kwang, f.Cards[10].Kwang = false, true

	results, err := NewValidator(writeDeck(t, f)).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Equal(t, []string{
		"deck.name is empty",
		"cards are not in standard order (slot 1 is 1, expected 1K)",
	}, results.Warnings)
}

func TestCheckCards(t *testing.T) {
	assert.Empty(t, CheckCards(deck.New().Cards()).Errors)

	cards := deck.New().Cards()
	cards[0] = card.MustNew(2, false)
	assert.Equal(t, []string{
		"rank 1 appears 1 times, want 2",
		"rank 1 has 0 kwang cards, want 1",
		"rank 2 appears 3 times, want 2",
	}, CheckCards(cards).Errors)
}
