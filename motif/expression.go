// Package motif implements the secondary-structure expression graph and
// its algebra (clone, append, insert, combine, textual form) together with
// the matcher that walks a motif against a suffix array.
package motif

import (
	"github.com/catalystbio/seedmotif/alphabet"
)

// Kind tags an expression node's role in the graph.
type Kind int

// The three expression node kinds.
const (
	Left Kind = iota
	Right
	Range
)

func (k Kind) String() string {
	switch k {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Range:
		return "Range"
	default:
		return "Unknown"
	}
}

// Mask is the fixed/joker bitmap shared by identity between a Left/Right
// pair: Bits[i] true means position i is pinned to the seed's symbol,
// false means it is left as a joker (N). Never copy a Mask's Bits into two
// separate Mask values and expect them to track each other — sharing must
// stay by pointer identity, per the source's own invariant.
type Mask struct {
	Bits []bool
}

// Expression is one node of a motif's linked graph: a stem arm (Left or
// Right, sharing one Mask) or an unpaired Range. Nested descends into the
// enclosed subexpression (for Left) or, for Right, points back at its Left;
// Adjacent is the direct stem-closing pointer (Left to its Right) or the
// continuation along the same level (Right onward, Range onward).
type Expression struct {
	Kind     Kind
	Start    int
	Length   int
	Range    int // copied by CloneMotif; the matcher does not read or write it
	Mask     *Mask
	Mismatch int
	Nested   *Expression
	Adjacent *Expression
}

// NewStemMotif builds the three-node expression graph for a single stem
// of the given arm length found between outer seed coordinates i and j,
// with m accumulated mismatches: a Left of the given length at i, a Range
// filling the loop, and a Right of the same length at j, Left and Right
// sharing one zeroed (fully-joker) mask.
func NewStemMotif(i, j, length, mismatches int, seed *alphabet.DigitalString) *Motif {
	mask := &Mask{Bits: make([]bool, length)}

	left := &Expression{Kind: Left, Start: i, Length: length, Mask: mask, Mismatch: mismatches}
	rng := &Expression{Kind: Range, Start: i + length, Length: j - i - 2*length + 1}
	right := &Expression{Kind: Right, Start: j, Length: length, Mask: mask, Mismatch: mismatches}

	left.Nested = rng
	left.Adjacent = right
	rng.Adjacent = right
	right.Nested = left

	return &Motif{
		Expression:  left,
		NumFixedPos: 0,
		NumStem:     1,
		Next:        -1,
		Support:     -1,
	}
}

// Motif is a generalised secondary-structure pattern: an expression graph
// plus the bookkeeping the discovery pipeline needs.
type Motif struct {
	Expression  *Expression
	NumFixedPos int
	NumStem     int
	Next        int
	Support     float64
}

// GetSymbol5to3 returns the symbol e expects to read at its local offset
// (0 <= offset < e.Length), decoding through the shared mask for Left and
// Right (a clear bit means the position is a joker, SymN) and always
// returning SymN for Range.
func GetSymbol5to3(e *Expression, offset int, seed *alphabet.DigitalString) alphabet.Symbol {
	switch e.Kind {
	case Left:
		if e.Mask.Bits[offset] {
			return seed.Symbols[e.Start+offset]
		}
		return alphabet.SymN
	case Right:
		reflected := e.Length - offset - 1
		pos := e.Start - e.Length + 1 + offset
		if e.Mask.Bits[reflected] {
			return seed.Symbols[pos]
		}
		return alphabet.SymN
	default: // Range
		return alphabet.SymN
	}
}
