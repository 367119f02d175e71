package discover

import (
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/catalystbio/seedmotif/alphabet"
	"github.com/catalystbio/seedmotif/motif"
)

// Report is the external-facing rendering of a discovered motif: its
// decoded sequence/structure, the bookkeeping counters the pipeline
// tracked, and an optional energy score. ID is a stable short
// fingerprint of Sequence+Structure (blake2b-256, hex, truncated to 16
// characters), used to correlate a motif across report lines and CT file
// names by content rather than by a run-local index.
type Report struct {
	ID          string
	Sequence    string
	Structure   string
	Support     float64
	NumStem     int
	NumFixedPos int
	NumBasePair int
	Energy      float64
	HasEnergy   bool
}

// NewReport renders m against seed into a Report, optionally scoring it
// with the given Scorer (nil skips scoring, leaving HasEnergy false).
func NewReport(m *motif.Motif, seed *alphabet.DigitalString, scorer Scorer) Report {
	seq, sec := motif.MotifToString(m, seed)

	sum := blake2b.Sum256([]byte(seq + "\x00" + sec))
	id := hex.EncodeToString(sum[:])[:16]

	r := Report{
		ID:          id,
		Sequence:    seq,
		Structure:   sec,
		Support:     m.Support,
		NumStem:     m.NumStem,
		NumFixedPos: m.NumFixedPos,
		NumBasePair: motif.MotifNumBasePair(m),
	}

	if scorer != nil {
		r.Energy = scorer.Score(seq, sec)
		r.HasEnergy = true
	}

	return r
}

// String renders a compact one-line summary of the motif's counters and
// textual form.
func (r Report) String() string {
	base := fmt.Sprintf("%s support=%.2f stems=%d basepairs=%d fixed=%d %s %s",
		r.ID, r.Support, r.NumStem, r.NumBasePair, r.NumFixedPos, r.Sequence, r.Structure)
	if r.HasEnergy {
		return fmt.Sprintf("%s energy=%.2f", base, r.Energy)
	}
	return base
}

// WriteCT writes m in the classic connectivity-table format to w: a
// header line with the residue count and a name, then one line per
// position giving its base, its neighbours, and its base-pair partner
// (0 when unpaired).
func WriteCT(w io.Writer, name string, m motif.Match) error {
	n := len(m.Structure)
	partner := basePairPositions(m.Structure)

	if _, err := fmt.Fprintf(w, "%d %s\n", n, name); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		prev := i
		next := i + 2
		if i == 0 {
			prev = 0
		}
		if i == n-1 {
			next = 0
		}
		if _, err := fmt.Fprintf(w, "%d %c %d %d %d %d\n",
			i+1, m.Sequence[i], prev, next, partner[i], i+1); err != nil {
			return err
		}
	}

	return nil
}

// basePairPositions resolves every '(' in structure to the 1-based
// position of its matching ')' (and vice versa) via a stack. Unpaired
// positions ('.') resolve to 0.
func basePairPositions(structure string) []int {
	partner := make([]int, len(structure))
	var stack []int

	for i, c := range structure {
		switch c {
		case '(':
			stack = append(stack, i)
		case ')':
			if len(stack) == 0 {
				panic("discover: internal error, unbalanced structure string")
			}
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			partner[i] = j + 1
			partner[j] = i + 1
		default:
			partner[i] = 0
		}
	}

	if len(stack) != 0 {
		panic("discover: internal error, unbalanced structure string")
	}

	return partner
}
