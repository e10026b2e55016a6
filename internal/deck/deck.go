package deck

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/sutda/internal/card"
)

// Size is the number of cards in a sutda deck
const Size = 20

// DefaultName is the name written to exported deck files
const DefaultName = "sutda"

// Deck represents a sutda deck
type Deck struct {
	Name string

	cards [Size]card.Card
}

// New creates a deck holding two cards of each rank.
// The first copy of ranks 1, 3 and 8 is the kwang.
func New() *Deck {
	d := &Deck{Name: DefaultName}

	perCopy := card.MaxRank - card.MinRank + 1
	for i := 0; i < perCopy; i++ {
		rank := card.MinRank + i
		d.cards[i] = card.MustNew(rank, card.IsKwangRank(rank))
		d.cards[i+perCopy] = card.MustNew(rank, false)
	}

	return d
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Card returns the card in slot i
func (d *Deck) Card(i int) card.Card {
	return d.cards[i]
}

// Cards returns a copy of the deck's cards in slot order
func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards[:])
	return cards
}

// Print writes each card followed by a comma, one per line
func (d *Deck) Print(w io.Writer) error {
	for _, c := range d.cards {
		if _, err := fmt.Fprintf(w, "%s,\n", c); err != nil {
			return err
		}
	}
	return nil
}

// File returns the deck's file representation
func (d *Deck) File() File {
	f := File{
		Deck:  DeckSection{Name: d.Name},
		Cards: make([]CardEntry, 0, len(d.cards)),
	}
	for _, c := range d.cards {
		f.Cards = append(f.Cards, CardEntry{Rank: c.Rank(), Kwang: c.Kwang()})
	}
	return f
}

// Save writes the deck as TOML to path, creating parent directories
func (d *Deck) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating deck directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating deck file: %w", err)
	}
	defer file.Close()

	return Encode(file, d.File())
}

// Encode writes a deck file as TOML
func Encode(w io.Writer, f File) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("error encoding deck: %w", err)
	}
	return nil
}

// DecodeFile decodes a deck file without checking its contents
func DecodeFile(path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck file not found: %s", path)
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
	}

	return &f, nil
}

// LoadDeck loads a deck from a TOML file.
// It checks the card count and ranks; pair rules are left to the validator.
func LoadDeck(path string) (*Deck, error) {
	f, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	if len(f.Cards) != Size {
		return nil, fmt.Errorf("deck has %d cards, want %d", len(f.Cards), Size)
	}

	d := &Deck{Name: f.Deck.Name}
	for i, entry := range f.Cards {
		c, err := entry.Card()
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		d.cards[i] = c
	}

	return d, nil
}

// Deck file structures
type File struct {
	Deck  DeckSection `toml:"deck"`
	Cards []CardEntry `toml:"cards"`
}

type DeckSection struct {
	Name string `toml:"name"`
}

type CardEntry struct {
	Rank  int  `toml:"rank"`
	Kwang bool `toml:"kwang,omitempty"`
}

// Card converts the entry to a card, checking its rank
func (e CardEntry) Card() (card.Card, error) {
	return card.New(e.Rank, e.Kwang)
}
