package vtree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// encodeMississippi maps each letter of "mississippi" to a small positive
// integer and appends a 0 terminator, the same sentinel FromDigitalString
// uses for nucleotide sequences.
func encodeMississippi() ([]int, int) {
	// i=1 m=2 p=3 s=4 (alphabetical order), terminator=0 (sorts first).
	codes := map[byte]int{'i': 1, 'm': 2, 'p': 3, 's': 4}
	s := "mississippi"
	text := make([]int, len(s)+1)
	for i := 0; i < len(s); i++ {
		text[i] = codes[s[i]]
	}
	text[len(s)] = 0
	return text, 4
}

func TestSuffixArrayMississippi(t *testing.T) {
	text, alphaSize := encodeMississippi()
	tr, err := New(text, alphaSize, 0)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{11, 10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2}
	if diff := cmp.Diff(want, tr.SufTab); diff != "" {
		t.Errorf("SufTab mismatch (-want +got):\n%s", diff)
	}
}

func TestSuffixArraySortedness(t *testing.T) {
	text, alphaSize := encodeMississippi()
	tr, err := New(text, alphaSize, 0)
	if err != nil {
		t.Fatal(err)
	}
	less := func(a, b int) bool {
		for k := 0; ; k++ {
			pa, pb := a+k, b+k
			var va, vb int
			if pa < len(tr.Text) {
				va = tr.Text[pa]
			}
			if pb < len(tr.Text) {
				vb = tr.Text[pb]
			}
			if va != vb {
				return va < vb
			}
			if pa >= len(tr.Text) || pb >= len(tr.Text) {
				return false
			}
		}
	}
	for i := 0; i+1 < len(tr.SufTab); i++ {
		if less(tr.SufTab[i+1], tr.SufTab[i]) {
			t.Errorf("suffix at rank %d (%d) should not precede rank %d (%d)",
				i+1, tr.SufTab[i+1], i, tr.SufTab[i])
		}
	}
}

func TestRankIsInverseOfSufTab(t *testing.T) {
	text, alphaSize := encodeMississippi()
	tr, err := New(text, alphaSize, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range tr.SufTab {
		if tr.ISufTab[s] != i {
			t.Errorf("ISufTab[SufTab[%d]=%d] = %d, want %d", i, s, tr.ISufTab[s], i)
		}
	}
}

func TestExactMatchIssInMississippi(t *testing.T) {
	text, alphaSize := encodeMississippi()
	tr, err := New(text, alphaSize, 0)
	if err != nil {
		t.Fatal(err)
	}
	// "iss" -> i=1 s=4 s=4
	got := tr.FindExactMatch([]int{1, 4, 4})
	want := map[int]bool{1: true, 4: true}
	if len(got) != len(want) {
		t.Fatalf("FindExactMatch(iss) = %v, want positions {1,4}", got)
	}
	for _, p := range got {
		if !want[p] {
			t.Errorf("unexpected match position %d", p)
		}
	}
}

func TestLCPCorrectness(t *testing.T) {
	text, alphaSize := encodeMississippi()
	tr, err := New(text, alphaSize, 0)
	if err != nil {
		t.Fatal(err)
	}
	lcpOf := func(a, b int) int {
		k := 0
		for a+k < len(tr.Text) && b+k < len(tr.Text) && tr.Text[a+k] == tr.Text[b+k] {
			k++
		}
		return k
	}
	for i := 1; i < len(tr.SufTab); i++ {
		want := lcpOf(tr.SufTab[i-1], tr.SufTab[i])
		if tr.LCPTab[i] != want {
			t.Errorf("LCPTab[%d] = %d, want %d", i, tr.LCPTab[i], want)
		}
	}
}

func TestLCENaiveAgreement(t *testing.T) {
	text, alphaSize := encodeMississippi()
	tr, err := New(text, alphaSize, 0)
	if err != nil {
		t.Fatal(err)
	}
	naive := func(a, b int) int {
		k := 0
		for a+k < len(tr.Text) && b+k < len(tr.Text) && tr.Text[a+k] == tr.Text[b+k] {
			k++
		}
		return k
	}
	for i := 0; i < len(tr.Text); i++ {
		for j := 0; j < len(tr.Text); j++ {
			if i == j {
				continue
			}
			if got, want := tr.LCE(i, j), naive(i, j); got != want {
				t.Errorf("LCE(%d,%d) = %d, want %d", i, j, got, want)
			}
		}
	}
}

func TestBWTColumn(t *testing.T) {
	text, alphaSize := encodeMississippi()
	tr, err := New(text, alphaSize, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range tr.SufTab {
		want := -1
		if s > 0 {
			want = tr.Text[s-1]
		}
		if tr.BWTab[i] != want {
			t.Errorf("BWTab[%d] = %d, want %d", i, tr.BWTab[i], want)
		}
	}
}

func TestChildIntervalsPartitionParent(t *testing.T) {
	text, alphaSize := encodeMississippi()
	tr, err := New(text, alphaSize, 0)
	if err != nil {
		t.Fatal(err)
	}

	n := tr.N()
	children := tr.ChildIntervals(0, n-1)
	if len(children) == 0 {
		t.Fatal("the root interval has no children")
	}
	next := 0
	for _, c := range children {
		if c.Start != next {
			t.Fatalf("children do not tile the parent: got start %d, want %d", c.Start, next)
		}
		if c.End < c.Start {
			t.Fatalf("empty child interval %+v", c)
		}
		next = c.End + 1
	}
	if next != n {
		t.Errorf("children end at %d, want %d", next, n)
	}
}

func TestGetIntervalDescendsBySymbol(t *testing.T) {
	text, alphaSize := encodeMississippi()
	tr, err := New(text, alphaSize, 0)
	if err != nil {
		t.Fatal(err)
	}
	eq := func(a, b int) bool { return a == b }

	// The 's' child of the root holds ranks of all four s-suffixes.
	i, j, ok := tr.GetInterval(0, tr.N()-1, 0, 4, eq)
	if !ok {
		t.Fatal("no child interval for symbol s")
	}
	if j-i+1 != 4 {
		t.Errorf("s-interval [%d,%d] holds %d suffixes, want 4", i, j, j-i+1)
	}
	for k := i; k <= j; k++ {
		if tr.Text[tr.SufTab[k]] != 4 {
			t.Errorf("suffix at rank %d does not start with s", k)
		}
	}
}

func TestTraverseWithArrayVisitsInternalNodes(t *testing.T) {
	text, alphaSize := encodeMississippi()
	tr, err := New(text, alphaSize, 0)
	if err != nil {
		t.Fatal(err)
	}

	var visited []Interval3
	tr.TraverseWithArray(func(iv Interval3) {
		visited = append(visited, iv)
	})

	if len(visited) == 0 {
		t.Fatal("no internal nodes visited")
	}
	root := visited[len(visited)-1]
	if root.LCP != 0 || root.LB != 0 || root.RB != tr.N()-1 {
		t.Errorf("last visited node = %+v, want the root interval", root)
	}
	for _, iv := range visited {
		if iv.LB >= iv.RB {
			t.Errorf("visited a singleton interval %+v", iv)
		}
	}
}

func TestTraverseAndProcessCarriesChildren(t *testing.T) {
	text, alphaSize := encodeMississippi()
	tr, err := New(text, alphaSize, 0)
	if err != nil {
		t.Fatal(err)
	}

	tr.TraverseAndProcess(func(iv Interval4) {
		next := iv.LB
		for _, c := range iv.Children {
			if c.Start != next {
				t.Fatalf("children of [%d,%d] do not tile it", iv.LB, iv.RB)
			}
			next = c.End + 1
		}
		if next != iv.RB+1 {
			t.Errorf("children of [%d,%d] stop at %d", iv.LB, iv.RB, next)
		}
	})
}

func TestExactMatchRejectsNearMisses(t *testing.T) {
	text, alphaSize := encodeMississippi()
	tr, err := New(text, alphaSize, 0)
	if err != nil {
		t.Fatal(err)
	}
	// "isp" shares an edge prefix with "iss..." but diverges on the
	// second symbol, which descent alone never inspects.
	if got := tr.FindExactMatch([]int{1, 4, 3}); got != nil {
		t.Errorf("FindExactMatch(isp) = %v, want no matches", got)
	}
	if got := tr.FindExactMatch([]int{3, 3, 3}); got != nil {
		t.Errorf("FindExactMatch(ppp) = %v, want no matches", got)
	}
}

func TestExactMatchFullText(t *testing.T) {
	text, alphaSize := encodeMississippi()
	tr, err := New(text, alphaSize, 0)
	if err != nil {
		t.Fatal(err)
	}
	pattern := text[:len(text)-1]
	got := tr.FindExactMatch(pattern)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("FindExactMatch(full text) = %v, want [0]", got)
	}
}
