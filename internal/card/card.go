package card

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	MinRank = 1
	MaxRank = 10

	// KwangMarker is appended to the rank of a kwang card
	KwangMarker = "K"
)

// ErrRankOutOfRange is returned when a rank falls outside [MinRank, MaxRank]
var ErrRankOutOfRange = errors.New("rank out of range")

// Card represents a sutda card
type Card struct {
	rank  int
	kwang bool
}

// New creates a card with the given rank and kwang designation
func New(rank int, kwang bool) (Card, error) {
	if rank < MinRank || rank > MaxRank {
		return Card{}, fmt.Errorf("%w: %d (want %d-%d)", ErrRankOutOfRange, rank, MinRank, MaxRank)
	}
	return Card{rank: rank, kwang: kwang}, nil
}

// MustNew is like New but panics if the rank is out of range
func MustNew(rank int, kwang bool) Card {
	c, err := New(rank, kwang)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the 1K card
func Default() Card {
	return Card{rank: 1, kwang: true}
}

// Rank returns the card's rank
func (c Card) Rank() int {
	return c.rank
}

// Kwang reports whether the card carries the kwang designation
func (c Card) Kwang() bool {
	return c.kwang
}

func (c Card) String() string {
	s := strconv.Itoa(c.rank)
	if c.kwang {
		s += KwangMarker
	}
	return s
}

// IsKwangRank reports whether one card of the given rank is a kwang
func IsKwangRank(rank int) bool {
	switch rank {
	case 1, 3, 8:
		return true
	default:
		return false
	}
}
