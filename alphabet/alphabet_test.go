package alphabet

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// T and U alias to the same symbol and both decode to 'U'.
	want := map[rune]rune{
		'A': 'A', 'C': 'C', 'G': 'G', 'U': 'U', 'T': 'U',
		'M': 'M', 'R': 'R', 'S': 'S', 'V': 'V', 'W': 'W', 'Y': 'Y',
		'H': 'H', 'K': 'K', 'D': 'D', 'B': 'B', 'N': 'N', '-': '-',
	}
	for c, expect := range want {
		s, err := Encode(c)
		if err != nil {
			t.Fatalf("Encode(%q): %v", c, err)
		}
		if got := Decode(s); got != expect {
			t.Errorf("Decode(Encode(%q)) = %q, want %q", c, got, expect)
		}
	}
}

func TestEncodeInvalid(t *testing.T) {
	if _, err := Encode('X'); err == nil {
		t.Fatal("expected error for invalid character")
	}
}

func TestIsBasePairTable(t *testing.T) {
	cases := []struct {
		a, b      Symbol
		gu        bool
		wantPair  bool
	}{
		{SymA, SymU, false, true},
		{SymU, SymA, false, true},
		{SymC, SymG, false, true},
		{SymG, SymC, false, true},
		{SymG, SymU, false, false},
		{SymG, SymU, true, true},
		{SymU, SymG, true, true},
		{SymU, SymG, false, false},
		{SymA, SymG, false, false},
		{SymM, SymK, false, true},
		{SymR, SymY, false, true},
		{SymS, SymS, false, true},
		{SymV, SymB, false, true},
		{SymW, SymW, false, true},
		{SymH, SymD, false, true},
		{SymN, SymN, false, true},
	}
	for _, c := range cases {
		if got := IsBasePair(c.a, c.b, c.gu); got != c.wantPair {
			t.Errorf("IsBasePair(%v,%v,%v) = %v, want %v", c.a, c.b, c.gu, got, c.wantPair)
		}
	}
}

func TestCmpMaskIntersection(t *testing.T) {
	if !Cmp(SymN, SymA) {
		t.Error("N should match A under mask intersection")
	}
	if Cmp(SymA, SymC) {
		t.Error("A should not match C")
	}
	if !Cmp(SymR, SymA) || !Cmp(SymR, SymG) {
		t.Error("R (A|G) should match both A and G")
	}
}

func TestComplementInvolution(t *testing.T) {
	for s := SymA; s <= SymN; s++ {
		if s == SymGap {
			continue
		}
		if Complement(Complement(s)) != s {
			t.Errorf("Complement(Complement(%v)) != %v", s, s)
		}
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	d, err := Digitalise("GGGAAACCC")
	if err != nil {
		t.Fatal(err)
	}
	rc := ReverseComplement(d)
	rcrc := ReverseComplement(rc)
	if rcrc.Decode() != d.Decode() {
		t.Errorf("reverse_complement(reverse_complement(s)) = %q, want %q", rcrc.Decode(), d.Decode())
	}
}

func TestDigitaliseAppendsTerminator(t *testing.T) {
	d, err := Digitalise("ACGU")
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", d.Len())
	}
	if !IsSpecial(d.Symbols[4]) {
		t.Error("last symbol should be the terminator")
	}
}

func TestIsCharClass(t *testing.T) {
	for _, s := range []Symbol{SymM, SymR, SymS, SymV, SymW, SymY, SymH, SymK, SymD, SymB, SymN} {
		if !IsCharClass(s) {
			t.Errorf("IsCharClass(%v) = false, want true", s)
		}
	}
	for _, s := range []Symbol{SymA, SymC, SymG, SymU} {
		if IsCharClass(s) {
			t.Errorf("IsCharClass(%v) = true, want false", s)
		}
	}
}
