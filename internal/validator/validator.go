package validator

import (
	"fmt"

	"github.com/arcanaland/sutda/internal/card"
	"github.com/arcanaland/sutda/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks a deck file. The returned error is set only when the
// file cannot be read; rule violations are collected in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	f, err := deck.DecodeFile(v.DeckPath)
	if err != nil {
		return v.Results, err
	}

	if f.Deck.Name == "" {
		v.Results.Warnings = append(v.Results.Warnings, "deck.name is empty")
	}

	var cards []card.Card
	for i, entry := range f.Cards {
		c, err := entry.Card()
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card %d: %v", i+1, err))
			continue
		}
		cards = append(cards, c)
	}

	if len(f.Cards) != deck.Size {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck has %d cards, want %d", len(f.Cards), deck.Size))
	}

	v.validatePairs(cards)
	if len(v.Results.Errors) == 0 {
		v.validateOrder(cards)
	}

	return v.Results, nil
}

// CheckCards runs the pair checks on an in-memory card sequence
func CheckCards(cards []card.Card) ValidationResults {
	v := &Validator{}
	if len(cards) != deck.Size {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck has %d cards, want %d", len(cards), deck.Size))
	}
	v.validatePairs(cards)
	return v.Results
}

// validatePairs checks that every rank appears twice and that ranks 1, 3
// and 8 have exactly one kwang between them
func (v *Validator) validatePairs(cards []card.Card) {
	counts := make(map[int]int)
	kwangs := make(map[int]int)
	for _, c := range cards {
		counts[c.Rank()]++
		if c.Kwang() {
			kwangs[c.Rank()]++
		}
	}

	for rank := card.MinRank; rank <= card.MaxRank; rank++ {
		if counts[rank] != 2 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("rank %d appears %d times, want 2", rank, counts[rank]))
		}

		if card.IsKwangRank(rank) {
			if kwangs[rank] != 1 {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("rank %d has %d kwang cards, want 1", rank, kwangs[rank]))
			}
		} else if kwangs[rank] > 0 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("rank %d cannot be kwang", rank))
		}
	}
}

// validateOrder warns when a valid deck is not in the standard order
func (v *Validator) validateOrder(cards []card.Card) {
	standard := deck.New().Cards()
	for i, c := range cards {
		if c != standard[i] {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("cards are not in standard order (slot %d is %s, expected %s)", i+1, c, standard[i]))
			return
		}
	}
}
