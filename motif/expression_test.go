package motif

import (
	"testing"

	"github.com/catalystbio/seedmotif/alphabet"
)

func digitalise(t *testing.T, sequence string) *alphabet.DigitalString {
	t.Helper()
	d, err := alphabet.Digitalise(sequence)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestNewStemMotifToString(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	m := NewStemMotif(0, 11, 4, 0, seed)

	seq, sec := MotifToString(m, seed)
	if seq != "NNNNNNNNNNNN" {
		t.Errorf("sequence = %q, want all jokers", seq)
	}
	if sec != "((((....))))" {
		t.Errorf("structure = %q, want ((((....))))", sec)
	}
}

// Fixing mask bit 0 pins the outermost pair: the Left shows the seed's
// symbol at its first position and the Right, reading its mask through
// the reflected offset, shows the seed's symbol at its last position.
func TestGetSymbol5to3MaskReflection(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	m := NewStemMotif(0, 11, 4, 0, seed)
	m.Expression.Mask.Bits[0] = true
	m.NumFixedPos = 1

	seq, sec := MotifToString(m, seed)
	if seq != "GNNNNNNNNNNC" {
		t.Errorf("sequence = %q, want GNNNNNNNNNNC", seq)
	}
	if sec != "((((....))))" {
		t.Errorf("structure = %q, want ((((....))))", sec)
	}
}

func TestMotifStartEndAndNumBasePair(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	m := NewStemMotif(0, 11, 4, 0, seed)

	if MotifStart(m) != 0 || MotifEnd(m) != 11 {
		t.Errorf("span = [%d,%d], want [0,11]", MotifStart(m), MotifEnd(m))
	}
	if got := MotifNumBasePair(m); got != 4 {
		t.Errorf("MotifNumBasePair = %d, want 4", got)
	}
}

func TestCloneMotifIndependence(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	m := NewStemMotif(0, 11, 4, 0, seed)
	m.Expression.Mask.Bits[1] = true
	m.NumFixedPos = 1

	c := CloneMotif(m)

	seq1, sec1 := MotifToString(m, seed)
	seq2, sec2 := MotifToString(c, seed)
	if seq1 != seq2 || sec1 != sec2 {
		t.Errorf("clone renders (%q,%q), original (%q,%q)", seq2, sec2, seq1, sec1)
	}

	if c.Expression == m.Expression {
		t.Fatal("clone shares the original's expression graph")
	}
	if c.Expression.Mask == m.Expression.Mask {
		t.Fatal("clone shares the original's mask")
	}
	if c.Expression.Mask != c.Expression.Adjacent.Mask {
		t.Fatal("clone's Left and Right no longer share one mask")
	}
	if c.Expression.Adjacent.Nested != c.Expression {
		t.Fatal("clone's Right back-edge does not point at the clone's Left")
	}

	c.Expression.Mask.Bits[2] = true
	if m.Expression.Mask.Bits[2] {
		t.Error("mutating the clone's mask leaked into the original")
	}
}

func TestStemWithin(t *testing.T) {
	seed := digitalise(t, "GGGGGAAAACCCCC")
	outer := NewStemMotif(0, 13, 5, 0, seed)
	inner := NewStemMotif(1, 12, 4, 0, seed)

	if !StemWithin(inner, outer) {
		t.Error("inner stem should be within the outer one")
	}
	if StemWithin(outer, inner) {
		t.Error("outer stem must not be within the inner one")
	}
}

func TestMotifBefore(t *testing.T) {
	seed := digitalise(t, "GGGAAAACCCAAGGGAAAACCC")
	a := NewStemMotif(0, 9, 3, 0, seed)
	b := NewStemMotif(12, 21, 3, 0, seed)

	if !MotifBefore(a, b) {
		t.Error("a ends before b begins")
	}
	if MotifBefore(b, a) {
		t.Error("b does not precede a")
	}
}
