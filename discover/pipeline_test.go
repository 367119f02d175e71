package discover

import (
	"testing"
	"time"

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

// testParams pins every stochastic-looking knob down for the small
// hand-checked inputs these tests use.
func testParams() Params {
	p := DefaultParams()
	p.StemMinLen = 3
	p.LoopMinLen = 4
	p.MaxMismatch = 0
	p.NoGU = true
	p.Range = 0
	p.MinBasePair = 3
	p.MinSupport = 0.6
	p.MaxNumStem = 1
	return p
}

func TestDiscoverSeedValidation(t *testing.T) {
	seqs := []*alphabet.DigitalString{digitalise(t, "GGGGAAAACCCC")}

	p := testParams()
	p.Seed = 5
	if _, err := Discover(seqs, p, Options{}); err == nil {
		t.Error("expected an error for a seed index out of range")
	}

	p = testParams()
	p.StemMaxSeparation = 4
	if _, err := Discover(seqs, p, Options{}); err == nil {
		t.Error("expected an error for a separation bound too small to hold a stem")
	}
}

// A motif present only in the seed has support 0.5 of two sequences and
// must be dropped at a 0.6 threshold.
func TestDiscoverSupportFiltering(t *testing.T) {
	seqs := []*alphabet.DigitalString{
		digitalise(t, "GGGGAAAACCCC"),
		digitalise(t, "AAAAAAAAAAAA"),
	}

	motifs, err := Discover(seqs, testParams(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(motifs) != 0 {
		t.Errorf("got %d motifs, want none below the support threshold", len(motifs))
	}
}

func TestDiscoverIdenticalPair(t *testing.T) {
	seqs := []*alphabet.DigitalString{
		digitalise(t, "GGGGAAAACCCC"),
		digitalise(t, "GGGGAAAACCCC"),
	}

	motifs, err := Discover(seqs, testParams(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(motifs) == 0 {
		t.Fatal("no motifs discovered in an identical pair")
	}

	seed := seqs[0]
	foundGeneral := false
	for _, m := range motifs {
		if m.Support != 1.0 {
			t.Errorf("Support = %v, want 1.0 for identical inputs", m.Support)
		}
		seq, sec := motif.MotifToString(m, seed)
		if sec != "((((....))))" {
			t.Errorf("structure = %q, want the full hairpin (the longest-stem filter keeps one extent)", sec)
		}
		if seq == "NNNNNNNNNNNN" {
			foundGeneral = true
		}
	}
	if !foundGeneral {
		t.Error("the fully generalised parent motif is missing from the output")
	}
}

// Specialisation never fixes more positions than the cap allows.
func TestFixAllCap(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	vs := makeAllVTrees([]*alphabet.DigitalString{seed})

	p := testParams()
	p.MaxFixedPos = 2
	p.MinSupport = 0

	m := motif.NewStemMotif(0, 11, 4, 0, seed)
	out := fixAll2([]*motif.Motif{m}, vs, seed, &p, Options{})

	counts := map[int]int{}
	for _, r := range out {
		counts[r.NumFixedPos]++
		if r.NumFixedPos > 2 {
			t.Errorf("motif with %d fixed positions exceeds the cap of 2", r.NumFixedPos)
		}
		if r.Next != len(out) {
			t.Errorf("Next = %d, want the block bound %d", r.Next, len(out))
		}
	}
	// One parent, four single fixes, six ordered double fixes.
	if counts[0] != 1 || counts[1] != 4 || counts[2] != 6 {
		t.Errorf("fixed-position histogram = %v, want map[0:1 1:4 2:6]", counts)
	}
}

// Fixing an additional position can only shrink the set of matching
// sequences.
func TestSupportMonotoneUnderSpecialisation(t *testing.T) {
	seqs := []*alphabet.DigitalString{
		digitalise(t, "GGGGAAAACCCC"),
		digitalise(t, "AGGGAAAACCCU"),
	}
	seed := seqs[0]
	vs := makeAllVTrees(seqs)

	p := testParams()
	p.MinSupport = 0

	parent := motif.NewStemMotif(0, 11, 4, 0, seed)
	calculateSupport(parent, vs, seed, &p)

	for i := 0; i < 4; i++ {
		child := motif.CloneMotif(parent)
		child.Expression.Mask.Bits[i] = true
		child.NumFixedPos++
		calculateSupport(child, vs, seed, &p)
		if child.Support > parent.Support {
			t.Errorf("fixing position %d raised support %v -> %v", i, parent.Support, child.Support)
		}
	}
}

func TestPostProcessIdempotent(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	p := testParams()

	a := motif.NewStemMotif(0, 11, 4, 0, seed)
	b := motif.NewStemMotif(0, 11, 4, 0, seed) // same key, same fixed count
	c := motif.NewStemMotif(0, 10, 3, 0, seed)

	once := postProcess([]*motif.Motif{a, b, c}, seed, &p)
	twice := postProcess(once, seed, &p)

	if len(once) != 2 {
		t.Fatalf("postProcess kept %d motifs, want 2 (one duplicate dropped)", len(once))
	}
	if len(twice) != len(once) {
		t.Errorf("postProcess is not idempotent: %d then %d", len(once), len(twice))
	}
}

func TestPostProcessEnforcesMinimums(t *testing.T) {
	seed := digitalise(t, "GGGGAAAACCCC")
	p := testParams()
	p.MinBasePair = 4

	small := motif.NewStemMotif(0, 10, 3, 0, seed)
	large := motif.NewStemMotif(0, 11, 4, 0, seed)

	out := postProcess([]*motif.Motif{small, large}, seed, &p)
	if len(out) != 1 || motif.MotifNumBasePair(out[0]) != 4 {
		t.Errorf("postProcess should keep only the 4-basepair motif, got %d survivors", len(out))
	}
}

// An immediately exhausted time budget drains the pipeline rather than
// failing it.
func TestDiscoverTimeLimitDrains(t *testing.T) {
	seqs := []*alphabet.DigitalString{
		digitalise(t, "GGGGAAAACCCC"),
		digitalise(t, "GGGGAAAACCCC"),
	}

	p := testParams()
	p.TimeLimit = time.Nanosecond

	motifs, err := Discover(seqs, p, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(motifs) == 0 {
		t.Error("drained run should still carry the enumerated stems through")
	}
}

// Composition across the seed's two hairpins survives end to end when
// two stems are allowed.
func TestDiscoverTwoStemCombination(t *testing.T) {
	sequence := "GGGGAAAACCCCAAGGGGAAAACCCC"
	seqs := []*alphabet.DigitalString{
		digitalise(t, sequence),
		digitalise(t, sequence),
	}

	p := testParams()
	p.MaxNumStem = 2
	p.MinNumStem = 2
	p.MinBasePair = 6

	motifs, err := Discover(seqs, p, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(motifs) == 0 {
		t.Fatal("no two-stem motifs discovered")
	}

	seed := seqs[0]
	found := false
	for _, m := range motifs {
		if m.NumStem < 2 {
			t.Errorf("motif with %d stems survived MinNumStem=2", m.NumStem)
		}
		_, sec := motif.MotifToString(m, seed)
		if sec == "((((....))))..((((....))))" {
			found = true
		}
	}
	if !found {
		t.Error("missing the appended double hairpin ((((....))))..((((....))))")
	}
}

func TestMatchAll(t *testing.T) {
	seqs := []*alphabet.DigitalString{
		digitalise(t, "GGGGAAAACCCC"),
		digitalise(t, "AAAGGGGAAAACCCCAAA"),
		digitalise(t, "AAAAAAAAAAAA"),
	}

	p := testParams()
	p.SaveAllMatches = true

	m := motif.NewStemMotif(0, 11, 4, 0, seqs[0])
	sites, err := MatchAll(seqs, m, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(sites) != 3 {
		t.Fatalf("got site lists for %d sequences, want 3", len(sites))
	}
	if len(sites[0]) != 1 || sites[0][0].Offset != 0 {
		t.Errorf("seed sites = %v, want one match at offset 0", sites[0])
	}
	if len(sites[1]) != 1 || sites[1][0].Offset != 3 {
		t.Errorf("embedded sites = %v, want one match at offset 3", sites[1])
	}
	if len(sites[2]) != 0 {
		t.Errorf("pairless sequence reported sites %v", sites[2])
	}
	if sites[1][0].ID != 1 {
		t.Errorf("match carries sequence id %d, want 1", sites[1][0].ID)
	}
}
