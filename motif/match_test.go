package motif

import (
	"testing"

	"github.com/catalystbio/seedmotif/alphabet"
	"github.com/catalystbio/seedmotif/vtree"
)

func buildTree(t *testing.T, sequence string, id int) (*vtree.Tree, *alphabet.DigitalString) {
	t.Helper()
	d := digitalise(t, sequence)
	v, err := vtree.FromDigitalString(d, id)
	if err != nil {
		t.Fatal(err)
	}
	return v, d
}

func TestMatchSelf(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	m := NewStemMotif(0, 11, 4, 0, seed)
	v, _ := buildTree(t, "GGGGAAAACCCC", 3)

	matches := FindMatches(v, m, seed, true, Params{MaxMismatch: 0, NoGU: true})
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(matches), matches)
	}

	got := matches[0]
	if got.ID != 3 || got.Offset != 0 || got.Length != 12 {
		t.Errorf("match = %+v, want id 3 offset 0 length 12", got)
	}
	if got.Sequence != "GGGGAAAACCCC" {
		t.Errorf("Sequence = %q, want the matched text itself", got.Sequence)
	}
	if got.Structure != "((((....))))" {
		t.Errorf("Structure = %q, want ((((....))))", got.Structure)
	}
}

func TestMatchEmbedded(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	m := NewStemMotif(0, 11, 4, 0, seed)
	v, _ := buildTree(t, "AAAGGGGAAAACCCCAAA", 0)

	matches := FindMatches(v, m, seed, true, Params{MaxMismatch: 0, NoGU: true})
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(matches), matches)
	}
	if matches[0].Offset != 3 {
		t.Errorf("Offset = %d, want 3", matches[0].Offset)
	}
	if matches[0].Sequence != "GGGGAAAACCCC" {
		t.Errorf("Sequence = %q, want GGGGAAAACCCC", matches[0].Sequence)
	}
}

func TestMatchAllSitesReported(t *testing.T) {
	seed := digitalise(t, "GGGAAAACCC")
	m := NewStemMotif(0, 9, 3, 0, seed)
	v, _ := buildTree(t, "GGGAAAACCCAAGGGAAAACCC", 0)

	matches := FindMatches(v, m, seed, true, Params{MaxMismatch: 0, NoGU: true})

	offsets := map[int]bool{}
	for _, mt := range matches {
		offsets[mt.Offset] = true
	}
	if len(matches) != 2 || !offsets[0] || !offsets[12] {
		t.Errorf("matches at %v, want exactly offsets {0, 12}", offsets)
	}
}

// A fully fixed stem tolerates a right-arm substitution as one mismatch:
// the substituted U neither matches the expected C nor pairs with its G
// partner when wobbles are off, which counts once against the budget.
func TestMatchMismatchBudget(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	m := NewStemMotif(0, 11, 4, 0, seed)
	for i := range m.Expression.Mask.Bits {
		m.Expression.Mask.Bits[i] = true
	}
	m.NumFixedPos = 4

	v, _ := buildTree(t, "GGGGAAAACCCU", 0)

	if got := FindMatches(v, m, seed, true, Params{MaxMismatch: 1, NoGU: true}); len(got) != 1 {
		t.Errorf("with one mismatch allowed: %d matches, want 1", len(got))
	}
	if got := FindMatches(v, m, seed, true, Params{MaxMismatch: 0, NoGU: true}); len(got) != 0 {
		t.Errorf("with no mismatch allowed: %d matches, want 0", len(got))
	}
}

func TestMatchWobblePairing(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	m := NewStemMotif(0, 11, 4, 0, seed)
	v, _ := buildTree(t, "GGGGAAAACCCU", 0)

	if got := FindMatches(v, m, seed, true, Params{MaxMismatch: 0, NoGU: false}); len(got) != 1 {
		t.Errorf("G·U pair with wobbles allowed: %d matches, want 1", len(got))
	}
	if got := FindMatches(v, m, seed, true, Params{MaxMismatch: 0, NoGU: true}); len(got) != 0 {
		t.Errorf("G·U pair with NoGU: %d matches, want 0", len(got))
	}
}

// The loop tolerance lets a 4-position Range absorb a 5-base loop.
func TestMatchRangeExtension(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	m := NewStemMotif(0, 11, 4, 0, seed)
	v, _ := buildTree(t, "GGGGAAAAACCCC", 0)

	matches := FindMatches(v, m, seed, true, Params{MaxMismatch: 0, NoGU: true, Range: 1})
	if len(matches) != 1 {
		t.Fatalf("with Range 1: %d matches, want 1", len(matches))
	}
	if matches[0].Structure != "((((.....))))" {
		t.Errorf("Structure = %q, want ((((.....))))", matches[0].Structure)
	}
	if matches[0].Length != 13 {
		t.Errorf("Length = %d, want 13", matches[0].Length)
	}

	if got := FindMatches(v, m, seed, true, Params{MaxMismatch: 0, NoGU: true, Range: 0}); len(got) != 0 {
		t.Errorf("with Range 0: %d matches, want 0", len(got))
	}
}

func TestOccursAndMatchCount(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	m := NewStemMotif(0, 11, 4, 0, seed)
	vYes, _ := buildTree(t, "AAAGGGGAAAACCCCAAA", 0)
	vNo, _ := buildTree(t, "AAAAAAAAAAAAAAAAAA", 1)

	var count int64
	p := Params{MaxMismatch: 0, NoGU: true, MatchCount: &count}

	if !Occurs(vYes, m, seed, p) {
		t.Error("Occurs = false on a sequence containing the motif")
	}
	if Occurs(vNo, m, seed, p) {
		t.Error("Occurs = true on a sequence with no pairable positions")
	}
	if count != 2 {
		t.Errorf("MatchCount = %d, want 2", count)
	}
}

// Every reported match must decode to the matched substring of the
// target, with balanced brackets whose pairs satisfy base-pair legality.
func TestMatchSoundness(t *testing.T) {
	seed := digitalise(t, "GGGAAAACCC")
	m := NewStemMotif(0, 9, 3, 0, seed)

	target := "GCGGGAAAACCCAUGGCAAAAGCC"
	v, d := buildTree(t, target, 0)

	for _, mt := range FindMatches(v, m, seed, true, Params{MaxMismatch: 0, NoGU: false}) {
		if got := d.Decode()[mt.Offset : mt.Offset+mt.Length]; got != mt.Sequence {
			t.Errorf("match at %d decodes %q, reported %q", mt.Offset, got, mt.Sequence)
		}

		var stack []byte
		for i := 0; i < len(mt.Structure); i++ {
			switch mt.Structure[i] {
			case '(':
				stack = append(stack, mt.Sequence[i])
			case ')':
				if len(stack) == 0 {
					t.Fatalf("unbalanced structure %q", mt.Structure)
				}
				partner := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				sa, _ := alphabet.Encode(rune(partner))
				sb, _ := alphabet.Encode(rune(mt.Sequence[i]))
				if !alphabet.IsBasePair(sa, sb, true) {
					t.Errorf("match at %d pairs %c with %c", mt.Offset, partner, mt.Sequence[i])
				}
			}
		}
		if len(stack) != 0 {
			t.Errorf("unbalanced structure %q", mt.Structure)
		}
	}
}
