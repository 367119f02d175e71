package motif

import (
	"testing"
)

func TestCombineAppend(t *testing.T) {
	seed := digitalise(t, "GGGAAAACCCAAGGGAAAACCC")
	a := NewStemMotif(0, 9, 3, 0, seed)
	b := NewStemMotif(12, 21, 3, 0, seed)
	b.Next = 7

	c := Combine(a, b)
	if c == nil {
		t.Fatal("Combine of two non-overlapping motifs returned nil")
	}

	seq, sec := MotifToString(c, seed)
	if sec != "(((....)))..(((....)))" {
		t.Errorf("structure = %q, want (((....)))..(((....)))", sec)
	}
	if len(seq) != len(sec) {
		t.Errorf("sequence and structure lengths differ: %d vs %d", len(seq), len(sec))
	}
	if c.NumStem != 2 {
		t.Errorf("NumStem = %d, want 2", c.NumStem)
	}
	if c.Next != 7 {
		t.Errorf("Next = %d, want inherited 7 from b", c.Next)
	}
	if MotifNumBasePair(c) != 6 {
		t.Errorf("MotifNumBasePair = %d, want 6", MotifNumBasePair(c))
	}
}

func TestCombineAppendSwapsOrder(t *testing.T) {
	seed := digitalise(t, "GGGAAAACCCAAGGGAAAACCC")
	a := NewStemMotif(0, 9, 3, 0, seed)
	b := NewStemMotif(12, 21, 3, 0, seed)

	c1 := Combine(a, b)
	c2 := Combine(b, a)
	if c1 == nil || c2 == nil {
		t.Fatal("Combine returned nil for either ordering")
	}

	seq1, sec1 := MotifToString(c1, seed)
	seq2, sec2 := MotifToString(c2, seed)
	if seq1 != seq2 || sec1 != sec2 {
		t.Errorf("append is not order-normalising: (%q,%q) vs (%q,%q)", seq1, sec1, seq2, sec2)
	}
}

func TestCombineInsert(t *testing.T) {
	// Outer stem (0,21,3) leaves a Range over 3..18; the inner stem
	// (6,15,3) sits strictly inside it.
	seed := digitalise(t, "GGGAAAGGGAAAACCCAAACCC")
	outer := NewStemMotif(0, 21, 3, 0, seed)
	inner := NewStemMotif(6, 15, 3, 0, seed)

	c := Combine(outer, inner)
	if c == nil {
		t.Fatal("Combine should nest the inner stem inside the outer Range")
	}

	_, sec := MotifToString(c, seed)
	if sec != "(((...(((....)))...)))" {
		t.Errorf("structure = %q, want (((...(((....)))...)))", sec)
	}
	if c.NumStem != 2 {
		t.Errorf("NumStem = %d, want 2", c.NumStem)
	}
	if MotifNumBasePair(c) != 6 {
		t.Errorf("MotifNumBasePair = %d, want 6", MotifNumBasePair(c))
	}
}

func TestCombineInsertLeavesOperandsUntouched(t *testing.T) {
	seed := digitalise(t, "GGGAAAGGGAAAACCCAAACCC")
	outer := NewStemMotif(0, 21, 3, 0, seed)
	inner := NewStemMotif(6, 15, 3, 0, seed)

	beforeSeq, beforeSec := MotifToString(outer, seed)
	if Combine(outer, inner) == nil {
		t.Fatal("Combine returned nil")
	}
	afterSeq, afterSec := MotifToString(outer, seed)
	if beforeSeq != afterSeq || beforeSec != afterSec {
		t.Error("Combine mutated its first operand")
	}
}

func TestCombineOverlappingReturnsNil(t *testing.T) {
	seed := digitalise(t, "GGGGGAAAACCCCC")
	a := NewStemMotif(0, 13, 4, 0, seed)
	b := NewStemMotif(1, 12, 4, 0, seed)

	if c := Combine(a, b); c != nil {
		t.Errorf("Combine of interleaved stems should fail, got %v", c)
	}
}
