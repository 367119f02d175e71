package discover

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/catalystbio/seedmotif/motif"
)

func TestNewReport(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	m := motif.NewStemMotif(0, 11, 4, 0, seed)
	m.Support = 0.75

	r := NewReport(m, seed, nil)

	if r.Sequence != "NNNNNNNNNNNN" || r.Structure != "((((....))))" {
		t.Errorf("report renders (%q,%q)", r.Sequence, r.Structure)
	}
	if r.Support != 0.75 || r.NumStem != 1 || r.NumBasePair != 4 || r.NumFixedPos != 0 {
		t.Errorf("report counters = %+v", r)
	}
	if len(r.ID) != 16 {
		t.Errorf("ID = %q, want a 16-character fingerprint", r.ID)
	}
	if r.HasEnergy {
		t.Error("HasEnergy set without a scorer")
	}

	again := NewReport(m, seed, nil)
	if again.ID != r.ID {
		t.Error("the fingerprint is not deterministic")
	}

	if !strings.Contains(r.String(), "support=0.75") {
		t.Errorf("String() = %q, want the support rendered", r.String())
	}
}

type fixedScorer struct{ value float64 }

func (f fixedScorer) Score(sequence, structure string) float64 { return f.value }

func TestNewReportWithScorer(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	m := motif.NewStemMotif(0, 11, 4, 0, seed)

	r := NewReport(m, seed, fixedScorer{value: -7.5})
	if !r.HasEnergy || r.Energy != -7.5 {
		t.Errorf("Energy = (%v,%v), want (-7.5,true)", r.Energy, r.HasEnergy)
	}
	if !strings.Contains(r.String(), "energy=-7.50") {
		t.Errorf("String() = %q, want the energy rendered", r.String())
	}
}

func TestWriteCT(t *testing.T) {
	match := motif.Match{
		ID:        0,
		Offset:    0,
		Length:    12,
		Sequence:  "GGGGAAAACCCC",
		Structure: "((((....))))",
	}

	var buf bytes.Buffer
	if err := WriteCT(&buf, "hairpin", match); err != nil {
		t.Fatal(err)
	}

	want := `12 hairpin
1 G 0 2 12 1
2 G 1 3 11 2
3 G 2 4 10 3
4 G 3 5 9 4
5 A 4 6 0 5
6 A 5 7 0 6
7 A 6 8 0 7
8 A 7 9 0 8
9 C 8 10 4 9
10 C 9 11 3 10
11 C 10 12 2 11
12 C 11 0 1 12
`

	if buf.String() != want {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(buf.String()),
			FromFile: "want",
			ToFile:   "got",
			Context:  3,
		}
		diffText, _ := difflib.GetUnifiedDiffString(diff)
		t.Errorf("WriteCT output differs:\n%s", diffText)
	}
}

func TestBasePairPositionsUnbalancedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unbalanced structure")
		}
	}()
	basePairPositions("(((..")
}
