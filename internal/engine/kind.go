// Package engine implements the match-3 rules: the tile grid, run detection,
// swap resolution and match-free board initialization.
// This package is UI-agnostic, synchronous and deterministic for a given
// random source.
package engine

import "fmt"

// TileKind is a palette index in [0, variety).
type TileKind uint8

// Named kinds. A palette may use fewer of them (variety) or more, in which
// case the extra kinds have no name.
const (
	Bear TileKind = iota
	Deer
	Duck
	Frog
	Dog
	Mouse
	Pig
	Cat
	Panda
	Rabbit
)

// MinVariety is the smallest palette that guarantees a differing kind
// always exists for replacement.
const MinVariety = 3

// MaxVariety is the largest palette a TileKind can index.
const MaxVariety = 256

// NamedKinds is the number of kinds that have a display name.
const NamedKinds = 10

var kindNames = [NamedKinds]string{
	"Bear", "Deer", "Duck", "Frog", "Dog",
	"Mouse", "Pig", "Cat", "Panda", "Rabbit",
}

// String returns the display name of the kind.
func (k TileKind) String() string {
	if int(k) < NamedKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Rune returns the digit used for the kind in ASCII board dumps.
func (k TileKind) Rune() rune {
	if k < 10 {
		return rune('0' + k)
	}
	return '?'
}
