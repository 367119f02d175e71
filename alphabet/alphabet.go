// Package alphabet implements the IUPAC nucleotide symbol alphabet used
// throughout seedmotif: a small integer code per symbol, Watson-Crick and
// G·U wobble pairing, mask-intersection comparison, and digital strings
// (symbol sequences terminated by a sentinel above the alphabet) that the
// vtree package builds suffix arrays over.
//
// Every symbol except the gap and the terminator is a 4-bit mask over the
// bases {A, C, G, U}, bit 0 = A, bit 1 = C, bit 2 = G, bit 3 = U. Degenerate
// IUPAC codes (R, Y, S, W, K, M, B, D, H, V, N) are simply masks with more
// than one bit set. Two symbols are considered equal under Cmp whenever
// their masks intersect, which is how a degenerate code matches any of the
// bases it stands for.
package alphabet

import "fmt"

// Symbol is a digitised nucleotide code: 0 is the gap, 1-15 are bit masks
// over {A,C,G,U}, and 16 is the string terminator.
type Symbol uint8

// The recognised symbol values, mirroring the reference alphabet's
// SYM_NUC_* constants.
const (
	SymGap Symbol = 0
	SymA   Symbol = 1
	SymC   Symbol = 2
	SymM   Symbol = 3
	SymG   Symbol = 4
	SymR   Symbol = 5
	SymS   Symbol = 6
	SymV   Symbol = 7
	SymU   Symbol = 8
	SymT   Symbol = 8
	SymW   Symbol = 9
	SymY   Symbol = 10
	SymH   Symbol = 11
	SymK   Symbol = 12
	SymD   Symbol = 13
	SymB   Symbol = 14
	SymN   Symbol = 15
	SymTer Symbol = 16
)

// Size is the number of distinct non-terminator symbols, 1..15 plus the gap.
const Size = 16

// Error reports an invalid character presented to Encode or Digitalise.
type Error struct {
	char rune
}

func (e *Error) Error() string {
	return fmt.Sprintf("alphabet: invalid nucleotide character %q", e.char)
}

var encodeTable = map[rune]Symbol{
	'A': SymA, 'a': SymA,
	'C': SymC, 'c': SymC,
	'G': SymG, 'g': SymG,
	'U': SymU, 'u': SymU,
	'T': SymT, 't': SymT,
	'M': SymM, 'm': SymM,
	'R': SymR, 'r': SymR,
	'S': SymS, 's': SymS,
	'V': SymV, 'v': SymV,
	'W': SymW, 'w': SymW,
	'Y': SymY, 'y': SymY,
	'H': SymH, 'h': SymH,
	'K': SymK, 'k': SymK,
	'D': SymD, 'd': SymD,
	'B': SymB, 'b': SymB,
	'N': SymN, 'n': SymN,
	'-': SymGap,
}

var decodeTable = map[Symbol]rune{
	SymGap: '-',
	SymA:   'A', SymC: 'C', SymM: 'M', SymG: 'G', SymR: 'R', SymS: 'S',
	SymV: 'V', SymU: 'U', SymW: 'W', SymY: 'Y', SymH: 'H', SymK: 'K',
	SymD: 'D', SymB: 'B', SymN: 'N', SymTer: '$',
}

// Encode maps a single IUPAC character (case-insensitive) to its symbol.
func Encode(c rune) (Symbol, error) {
	s, ok := encodeTable[c]
	if !ok {
		return 0, &Error{char: c}
	}
	return s, nil
}

// Decode maps a symbol back to its canonical uppercase IUPAC character.
// The terminator decodes to '$' for diagnostic display; it is never part of
// a caller-visible sequence.
func Decode(s Symbol) rune {
	if r, ok := decodeTable[s]; ok {
		return r
	}
	return '?'
}

// IsSpecial reports whether s is at or above the alphabet size, i.e. the
// terminator.
func IsSpecial(s Symbol) bool {
	return int(s) >= Size
}

// IsCharClass reports whether s is a degenerate (multi-base) IUPAC code.
func IsCharClass(s Symbol) bool {
	switch s {
	case SymM, SymR, SymS, SymV, SymW, SymY, SymH, SymK, SymD, SymB, SymN:
		return true
	default:
		return false
	}
}

// Cmp reports whether two symbols can represent the same base, i.e. their
// masks intersect. Both symbols must be in (SymGap, SymTer); callers must
// not invoke Cmp with a gap or terminator symbol.
func Cmp(a, b Symbol) bool {
	return a&b != 0
}

// complementOf mirrors the reference pairwise complement table: each
// specific or degenerate code maps to the code that pairs with it under
// strict Watson-Crick complementarity (no G·U).
var complementOf = map[Symbol]Symbol{
	SymA: SymU, SymC: SymG, SymM: SymK, SymG: SymC, SymR: SymY, SymS: SymS,
	SymV: SymB, SymU: SymA, SymW: SymW, SymY: SymR, SymH: SymD, SymK: SymM,
	SymD: SymH, SymB: SymV, SymN: SymN,
}

// Complement returns the strict Watson-Crick complement of s.
func Complement(s Symbol) Symbol {
	return complementOf[s]
}

// IsBasePair reports whether a and b form a valid base pair. With guAllowed
// set, G·U and U·G wobble pairs are also accepted.
func IsBasePair(a, b Symbol, guAllowed bool) bool {
	switch a {
	case SymA:
		return b == SymU
	case SymC:
		return b == SymG
	case SymM:
		return b == SymK
	case SymG:
		return b == SymC || (guAllowed && b == SymU)
	case SymR:
		return b == SymY
	case SymS:
		return b == SymS
	case SymV:
		return b == SymB
	case SymU:
		return b == SymA || (guAllowed && b == SymG)
	case SymW:
		return b == SymW
	case SymY:
		return b == SymR
	case SymH:
		return b == SymD
	case SymK:
		return b == SymM
	case SymD:
		return b == SymH
	case SymB:
		return b == SymV
	case SymN:
		return b == SymN
	default:
		return false
	}
}

// DigitalString is an ordered sequence of symbols terminated by SymTer.
type DigitalString struct {
	Symbols []Symbol
}

// Digitalise encodes a nucleotide string, appending the terminator.
func Digitalise(sequence string) (*DigitalString, error) {
	symbols := make([]Symbol, 0, len(sequence)+1)
	for _, c := range sequence {
		s, err := Encode(c)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, s)
	}
	symbols = append(symbols, SymTer)
	return &DigitalString{Symbols: symbols}, nil
}

// Len returns the number of symbols, including the terminator.
func (d *DigitalString) Len() int {
	return len(d.Symbols)
}

// Decode renders the digital string back to nucleotide characters, omitting
// the terminator.
func (d *DigitalString) Decode() string {
	out := make([]rune, 0, len(d.Symbols))
	for _, s := range d.Symbols {
		if IsSpecial(s) {
			continue
		}
		out = append(out, Decode(s))
	}
	return string(out)
}

// ReverseComplement returns the strict Watson-Crick reverse complement of a
// digital string's encoded bases (terminator excluded from input and
// appended fresh to the result).
func ReverseComplement(d *DigitalString) *DigitalString {
	n := len(d.Symbols)
	out := make([]Symbol, 0, n)
	for i := n - 1; i >= 0; i-- {
		s := d.Symbols[i]
		if IsSpecial(s) {
			continue
		}
		out = append(out, Complement(s))
	}
	out = append(out, SymTer)
	return &DigitalString{Symbols: out}
}

// Concat appends b's bases (without its terminator) after a's bases
// (without its terminator), and appends a single fresh terminator.
func Concat(a, b *DigitalString) *DigitalString {
	out := make([]Symbol, 0, len(a.Symbols)+len(b.Symbols))
	for _, s := range a.Symbols {
		if !IsSpecial(s) {
			out = append(out, s)
		}
	}
	for _, s := range b.Symbols {
		if !IsSpecial(s) {
			out = append(out, s)
		}
	}
	out = append(out, SymTer)
	return &DigitalString{Symbols: out}
}
