package vtree

// GetInterval returns the child interval of [i,j] whose edge begins with a
// symbol matching want under cmp, or (0,0,false) if none exists. cmp lets
// callers search with mask-intersection equality (alphabet.Cmp) instead of
// plain equality.
func (t *Tree) GetInterval(i, j, depth int, want int, cmp func(a, b int) bool) (start, end int, ok bool) {
	for _, child := range t.ChildIntervals(i, j) {
		edgeSym := t.Text[t.SufTab[child.Start]+depth]
		if cmp(edgeSym, want) {
			return child.Start, child.End, true
		}
	}
	return 0, 0, false
}

// FindExactMatch returns every text position at which pattern occurs,
// descending the conceptual suffix tree one symbol at a time and, on
// reaching a leaf, verifying any remaining pattern suffix directly
// against the text.
func (t *Tree) FindExactMatch(pattern []int) []int {
	if len(pattern) == 0 {
		return nil
	}
	n := t.N()
	i, j, depth := 0, n-1, 0
	eq := func(a, b int) bool { return a == b }

	for depth < len(pattern) {
		if i == j {
			break
		}
		ni, nj, ok := t.GetInterval(i, j, depth, pattern[depth], eq)
		if !ok {
			return nil
		}
		i, j = ni, nj
		lcp := t.GetLCP(i, j)
		if lcp > len(pattern) {
			lcp = len(pattern)
		}
		depth = lcp
		if i == j {
			break
		}
	}

	// Descent only inspected the first symbol of each edge; verify the
	// whole pattern against the interval's first suffix, which also
	// covers any remainder at a leaf.
	for k := 0; k < len(pattern); k++ {
		pos := t.SufTab[i] + k
		if pos >= n || t.Text[pos] != pattern[k] {
			return nil
		}
	}

	var positions []int
	for k := i; k <= j; k++ {
		positions = append(positions, t.SufTab[k])
	}
	return positions
}
