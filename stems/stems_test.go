package stems

import (
	"testing"

	"github.com/catalystbio/seedmotif/alphabet"
	"github.com/catalystbio/seedmotif/motif"
)

func digitalise(t *testing.T, sequence string) *alphabet.DigitalString {
	t.Helper()
	d, err := alphabet.Digitalise(sequence)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// stemShape summarises one emitted stem's three-node expression graph for
// assertion purposes.
type stemShape struct {
	leftStart, armLen, rangeStart, loopLen, rightStart int
}

func shapeOf(t *testing.T, m *motif.Motif) stemShape {
	t.Helper()
	left := m.Expression
	if left.Kind != motif.Left {
		t.Fatalf("outermost node is %v, want Left", left.Kind)
	}
	rng := left.Nested
	if rng.Kind != motif.Range {
		t.Fatalf("nested node is %v, want Range", rng.Kind)
	}
	right := left.Adjacent
	if right.Kind != motif.Right {
		t.Fatalf("adjacent node is %v, want Right", right.Kind)
	}
	if left.Mask != right.Mask {
		t.Fatal("Left and Right must share one mask by identity")
	}
	return stemShape{
		leftStart:  left.Start,
		armLen:     left.Length,
		rangeStart: rng.Start,
		loopLen:    rng.Length,
		rightStart: right.Start,
	}
}

func TestFindAllStemsPerfectHairpin(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	p := Params{
		StemMinLen:  3,
		StemMaxGU:   0,
		LoopMinLen:  4,
		MaxMismatch: 0,
		NoGU:        true,
	}

	stems := FindAllStems(seed, p)
	if len(stems) == 0 {
		t.Fatal("no stems found in a perfect hairpin")
	}

	found := false
	for _, m := range stems {
		s := shapeOf(t, m)
		if s.armLen < p.StemMinLen {
			t.Errorf("stem %+v has arm length < %d", s, p.StemMinLen)
		}
		if s.loopLen < p.LoopMinLen {
			t.Errorf("stem %+v has loop length < %d", s, p.LoopMinLen)
		}
		if s == (stemShape{leftStart: 0, armLen: 4, rangeStart: 4, loopLen: 4, rightStart: 11}) {
			found = true
		}
		if m.NumStem != 1 || m.NumFixedPos != 0 {
			t.Errorf("stem %+v must start as a single unfixed stem", s)
		}
	}
	if !found {
		t.Error("missing the full-length stem Left@0 len 4, Range@4 len 4, Right@11 len 4")
	}
}

// A hairpin whose innermost pair is the G·U wobble: with wobbles allowed
// the arm extends to length 4, without them it stops at 3.
func TestFindAllStemsGUTolerance(t *testing.T) {
	seed := digitalise(t, "GGGGAAAAUCCC")

	withGU := Params{StemMinLen: 3, StemMaxGU: 1, LoopMinLen: 4, MaxMismatch: 0, NoGU: false}
	longest := 0
	for _, m := range FindAllStems(seed, withGU) {
		if s := shapeOf(t, m); s.armLen > longest {
			longest = s.armLen
		}
	}
	if longest != 4 {
		t.Errorf("longest arm with wobbles allowed = %d, want 4", longest)
	}

	noGU := Params{StemMinLen: 3, StemMaxGU: 1, LoopMinLen: 4, MaxMismatch: 0, NoGU: true}
	for _, m := range FindAllStems(seed, noGU) {
		if s := shapeOf(t, m); s.armLen >= 4 {
			t.Errorf("arm of length %d reported with NoGU set", s.armLen)
		}
	}
}

func TestFindAllStemsRespectsLoopClipping(t *testing.T) {
	// The two arms could pair to depth 4, but that would squeeze the loop
	// below the minimum, so the block must be clipped to 3.
	seed := digitalise(t, "GGGGAAACCCC")
	p := Params{StemMinLen: 3, LoopMinLen: 4, MaxMismatch: 0, NoGU: true}

	for _, m := range FindAllStems(seed, p) {
		s := shapeOf(t, m)
		if s.loopLen < p.LoopMinLen {
			t.Errorf("stem %+v violates the minimum loop length", s)
		}
	}
}

func TestFindAllStemsSeparationBound(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCCAAAAAAAAGGGGAAAACCCC")
	p := Params{StemMinLen: 3, LoopMinLen: 4, MaxMismatch: 0, NoGU: true, StemMaxSeparation: 12}

	for _, m := range FindAllStems(seed, p) {
		s := shapeOf(t, m)
		if s.rightStart-s.leftStart > p.StemMaxSeparation {
			t.Errorf("stem %+v exceeds StemMaxSeparation %d", s, p.StemMaxSeparation)
		}
	}
}

func TestFindAllStemsSkipKeepLongestEmitsAllSizes(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	p := Params{StemMinLen: 3, LoopMinLen: 4, MaxMismatch: 0, NoGU: true, SkipKeepLongestStems: true}

	sizes := map[int]bool{}
	for _, m := range FindAllStems(seed, p) {
		s := shapeOf(t, m)
		if s.leftStart == 0 && s.rightStart == 11 {
			sizes[s.armLen] = true
		}
	}
	if !sizes[3] || !sizes[4] {
		t.Errorf("expected both size-3 and size-4 stems for the (0,11) extent, got %v", sizes)
	}
}
