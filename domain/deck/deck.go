package deck

import (
	"fmt"

	"github.com/luca-patrignani/casino/domain/cards"
)

// ReshuffleThreshold is the stock size under which the shoe is rebuilt
// before the next draw.
const ReshuffleThreshold = 10

// Shoe is the pooled, shuffled supply of one or more standard decks.
// The top of the shoe is the end of the stock slice.
type Shoe struct {
	decks       int
	stock       cards.Stack
	src         Source
	onReshuffle func()
	rebuilds    int
}

type option func(Shoe) Shoe

// New builds a shoe of the given number of decks and shuffles it.
func New(decks int, opts ...option) (*Shoe, error) {
	if decks < 1 {
		return nil, fmt.Errorf("a shoe needs at least one deck, got %d", decks)
	}
	s := Shoe{decks: decks}
	for _, opt := range opts {
		s = opt(s)
	}
	if s.src == nil {
		s.src = NewCryptoSource()
	}
	if s.stock == nil {
		s.fill()
	}
	return &s, nil
}

// WithSource sets the random source used for every permutation.
func WithSource(src Source) option {
	return func(s Shoe) Shoe {
		s.src = src
		return s
	}
}

// WithReshuffleHook registers a callback invoked after each rebuild.
func WithReshuffleHook(fn func()) option {
	return func(s Shoe) Shoe {
		s.onReshuffle = fn
		return s
	}
}

// WithStock replaces the initial shuffled stock with the given cards.
// The last card is drawn first.
func WithStock(stock ...cards.Card) option {
	return func(s Shoe) Shoe {
		s.stock = append(cards.Stack{}, stock...)
		return s
	}
}

// Draw removes and returns the top card, rebuilding the shoe first when
// fewer than ReshuffleThreshold cards remain. Cards already dealt are never
// returned to the stock.
func (s *Shoe) Draw() cards.Card {
	if len(s.stock) < ReshuffleThreshold {
		s.Rebuild()
	}
	top := len(s.stock) - 1
	c := s.stock[top]
	s.stock = s.stock[:top]
	return c
}

// Rebuild discards the remaining stock and regenerates every deck, re-permuted.
func (s *Shoe) Rebuild() {
	s.fill()
	s.rebuilds++
	if s.onReshuffle != nil {
		s.onReshuffle()
	}
}

// Remaining returns the number of cards left in the stock.
func (s *Shoe) Remaining() int {
	return len(s.stock)
}

// Size returns the number of cards in a freshly built shoe.
func (s *Shoe) Size() int {
	return s.decks * cards.DeckSize
}

// Decks returns the number of decks in the shoe.
func (s *Shoe) Decks() int {
	return s.decks
}

// Rebuilds returns how many times the shoe has been rebuilt since creation.
func (s *Shoe) Rebuilds() int {
	return s.rebuilds
}

func (s *Shoe) fill() {
	stock := make(cards.Stack, 0, s.Size())
	for range s.decks {
		stock = append(stock, cards.NewDeck52()...)
	}
	Shuffle(stock, s.src)
	s.stock = stock
}
