package roulette

import "github.com/luca-patrignani/casino/domain/deck"

// Color of a pocket.
type Color string

const (
	Green Color = "green"
	Red   Color = "red"
	Black Color = "black"
)

// pockets in European wheel order, starting from zero.
var pockets = [...]int{
	0, 32, 15, 19, 4, 21, 2, 25, 17, 34, 6, 27, 13, 36, 11, 30, 8, 23, 10,
	5, 24, 16, 33, 1, 20, 14, 31, 9, 22, 18, 29, 7, 28, 12, 35, 3, 26,
}

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true, 14: true, 16: true, 18: true,
	19: true, 21: true, 23: true, 25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// ColorOf returns the colour of pocket n.
func ColorOf(n int) Color {
	switch {
	case n == 0:
		return Green
	case redNumbers[n]:
		return Red
	default:
		return Black
	}
}

// Pockets returns the 37 numbers in wheel order.
func Pockets() []int {
	out := make([]int, len(pockets))
	copy(out, pockets[:])
	return out
}

// Wheel picks pockets uniformly from a random source.
type Wheel struct {
	src deck.Source
}

func NewWheel(src deck.Source) *Wheel {
	return &Wheel{src: src}
}

// Spin returns the winning number.
func (w *Wheel) Spin() int {
	return pockets[w.src.Intn(len(pockets))]
}

// Teaser returns n throwaway pockets shown while the wheel turns.
func (w *Wheel) Teaser(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = w.Spin()
	}
	return out
}
