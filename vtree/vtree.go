// Package vtree implements the enhanced suffix array (a "virtual tree",
// hence the name) that the rest of seedmotif builds
// on: DC3 suffix-array construction, the inverse rank permutation, the
// Kasai LCP array, the Burrows-Wheeler column, and an Abouelhoda-Kurtz-
// Ohlebusch child table that lets callers navigate the conceptual suffix
// tree encoded by those arrays in constant time per step without ever
// materialising the tree itself.
//
// A vtree is built over a slice of small non-negative integers (an already
// digitised string, the caller's concern) rather than directly over
// alphabet.Symbol, so the same construction code serves both nucleotide
// digital strings and the plain-text boundary scenarios used to pin down
// DC3's behaviour. FromDigitalString adapts an alphabet.DigitalString.
package vtree

import (
	"fmt"

	"github.com/catalystbio/seedmotif/alphabet"
)

// ChildEntry is one record of the AKO child table.
type ChildEntry struct {
	Up, Down, Next int
}

// Interval2 is an lcp-interval over SufTab[Start..End] (a leaf when
// Start == End).
type Interval2 struct {
	Start, End int
}

// Interval3 is a bottom-up traversal record.
type Interval3 struct {
	LCP, LB, RB int
}

// Interval4 is a traversal record carrying the accumulated child list.
type Interval4 struct {
	LCP, LB, RB int
	Children    []Interval2
}

// Tree is an enhanced suffix array over a digitised text of length n+1
// (including one terminator symbol, value 0, the unique smallest symbol
// in the alphabet so that it sorts before every real suffix — the
// standard DC3 sentinel convention).
type Tree struct {
	Text         []int
	SufTab       []int
	ISufTab      []int
	LCPTab       []int
	BWTab        []int
	ChildTab     []ChildEntry
	ID           int
	AlphabetSize int
}

// recoverToError converts a panic raised by a programmer-fault invariant
// check into a returned error at the package boundary.
func recoverToError(context string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("vtree: %s: %v", context, r)
	}
}

// New builds a vtree over text, a digitised string whose real symbols lie
// in [1, alphabetSize] with exactly one terminator symbol (value 0) at
// the end and nowhere else. id tags the tree with the caller's sequence
// identifier.
func New(text []int, alphabetSize int, id int) (t *Tree, err error) {
	defer recoverToError("New", &err)

	n := len(text)
	if n == 0 {
		return nil, fmt.Errorf("vtree: empty text")
	}
	if text[n-1] != 0 {
		return nil, fmt.Errorf("vtree: text must end with exactly one terminator symbol")
	}
	for _, s := range text[:n-1] {
		if s == 0 {
			return nil, fmt.Errorf("vtree: terminator symbol must not appear before the end of text")
		}
	}

	padded := make([]int, n+3)
	copy(padded, text)

	sa := make([]int, n)
	suffixArray(padded, sa, n, alphabetSize)

	isa := make([]int, n)
	for i, s := range sa {
		isa[s] = i
	}

	lcp := kasai(text, sa, isa, n)

	bwt := make([]int, n)
	for i, s := range sa {
		if s == 0 {
			bwt[i] = -1
		} else {
			bwt[i] = text[s-1]
		}
	}

	ct := buildChildTable(lcp, n)

	return &Tree{
		Text:         text,
		SufTab:       sa,
		ISufTab:      isa,
		LCPTab:       lcp,
		BWTab:        bwt,
		ChildTab:     ct,
		ID:           id,
		AlphabetSize: alphabetSize,
	}, nil
}

// FromDigitalString builds a vtree over a digital string's symbols. The
// alphabet package sorts alphabet.SymTer above every real symbol for
// pairing/comparison purposes (§3 of the data model), but DC3 needs its
// sentinel to be the unique smallest value; FromDigitalString bridges the
// two conventions by shifting every real symbol up by one (so they keep
// their relative order) and mapping alphabet.SymTer to 0.
func FromDigitalString(ds *alphabet.DigitalString, id int) (*Tree, error) {
	text := make([]int, len(ds.Symbols))
	for i, s := range ds.Symbols {
		if s == alphabet.SymTer {
			text[i] = 0
		} else {
			text[i] = int(s) + 1
		}
	}
	return New(text, int(alphabet.SymTer), id)
}

// N is the number of suffixes (text length including the terminator).
func (t *Tree) N() int {
	return len(t.Text)
}

// kasai computes the LCP array in O(n) using the classic algorithm: walk
// original text positions in order, reusing the previous common-prefix
// length minus one as a lower bound for the next (the "h-1 trick").
func kasai(text []int, sa, rank []int, n int) []int {
	lcp := make([]int, n)
	h := 0
	for i := 0; i < n; i++ {
		if rank[i] > 0 {
			j := sa[rank[i]-1]
			for i+h < n && j+h < n && text[i+h] == text[j+h] {
				h++
			}
			lcp[rank[i]] = h
			if h > 0 {
				h--
			}
		} else {
			h = 0
		}
	}
	lcp[0] = 0
	return lcp
}
