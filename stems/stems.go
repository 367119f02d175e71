// Package stems enumerates candidate hairpin stems within a seed sequence:
// every pair of base-paired arms, tolerant of a bounded number of
// mismatches and G·U wobble pairs, that leaves a loop at least as long as
// the configured minimum. It is the sole producer of single-stem motifs
// that seed the discovery pipeline's specialisation and combination
// stages.
//
// The enumeration builds the seed concatenated with its own reverse
// complement, builds a vtree over that concatenation, and for every
// candidate arm-end pair walks wobble-tolerant longest-common-extension
// blocks inward from both ends.
package stems

import (
	"github.com/catalystbio/seedmotif/alphabet"
	"github.com/catalystbio/seedmotif/motif"
	"github.com/catalystbio/seedmotif/vtree"
)

// Params carries the subset of the discovery parameter bundle the
// enumerator consumes.
type Params struct {
	StemMinLen           int
	StemMaxGU            int
	StemMaxSeparation    int // 0 = unbounded
	LoopMinLen           int
	MaxMismatch          int
	NoGU                 bool
	SkipKeepLongestStems bool
}

// buildPalindrome concatenates the seed with its reverse complement. The
// two halves share no terminator in the middle, only the usual single
// trailing terminator.
func buildPalindrome(seed *alphabet.DigitalString) *alphabet.DigitalString {
	rc := alphabet.ReverseComplement(seed)
	return alphabet.Concat(seed, rc)
}

// wobbleLCE extends vtree.LCE(v,i,j) past ordinary mismatches whenever the
// next pair of symbols forms a G·U or U·G wobble (read through the
// reverse-complement half, so G pairs opposite A and U opposite C in the
// concatenated text), up to maxGU extensions and only when wobbles are
// allowed at all. It returns the total extension length.
func wobbleLCE(v *vtree.Tree, text []alphabet.Symbol, i, j int, guAllowed bool, maxGU int) int {
	length, wobbles := 0, 0
	for {
		block := v.LCE(i, j)
		length += block
		i += block
		j += block
		if !guAllowed || wobbles >= maxGU {
			return length
		}
		if i >= len(text) || j >= len(text) {
			return length
		}
		a, b := text[i], text[j]
		if (a == alphabet.SymG && b == alphabet.SymA) || (a == alphabet.SymU && b == alphabet.SymC) {
			length++
			wobbles++
			i++
			j++
			continue
		}
		return length
	}
}

// FindAllStems enumerates every admissible single-stem motif in seed
// under p: for each arm-start i and arm-end j satisfying the
// minimum-distance constraint, accumulate mismatch-bounded
// wobble-tolerant LCE blocks inward, clip each block so the residual
// loop never drops below LoopMinLen, and emit one motif per viable
// cumulative stem size.
func FindAllStems(seed *alphabet.DigitalString, p Params) []*motif.Motif {
	// n counts the terminator, matching the reference dstring convention:
	// positions 0..n-2 are real bases, and the reverse-complement image
	// of position jj in the concatenated text is 2(n-1)-jj-1.
	n := len(seed.Symbols)
	palindrome := buildPalindrome(seed)
	v, err := vtree.FromDigitalString(palindrome, 0)
	if err != nil {
		panic("stems: failed to build palindrome vtree: " + err.Error())
	}

	mindist := 2*p.StemMinLen + p.LoopMinLen - 1
	var out []*motif.Motif

	for i := 0; i < n-mindist; i++ {
		j0 := n - 2
		if p.StemMaxSeparation > 0 && i+p.StemMaxSeparation < j0 {
			j0 = i + p.StemMaxSeparation
		}
		for j := j0; j >= i+mindist; j-- {
			size, m, ii, jj := 0, 0, i, j
			okay := true
			for m <= p.MaxMismatch && jj-ii >= mindist && okay {
				offset := 2*(n-1) - jj - 1
				lce := wobbleLCE(v, palindrome.Symbols, ii, offset, !p.NoGU, p.StemMaxGU)
				if lce < p.StemMinLen {
					okay = false
					break
				}
				for (jj-lce)-(ii+lce)+1 < p.LoopMinLen {
					lce--
				}
				if lce >= p.StemMinLen {
					size = (ii + lce) - i
					ii = i + size + 1
					jj = j - size - 1
					m++
				} else {
					okay = false
				}
			}
			if size < p.StemMinLen {
				continue
			}
			minSize := size
			if p.SkipKeepLongestStems {
				minSize = p.StemMinLen
			}
			for s := minSize; s <= size; s++ {
				out = append(out, motif.NewStemMotif(i, j, s, m-1, seed))
			}
		}
	}
	return out
}
