package vtree

// TraverseWithArray visits every internal node (non-singleton lcp-
// interval) of the conceptual suffix tree in post-order, calling visit
// with an Interval3 record: a single pass over the LCP array driven by a
// stack of open intervals.
func (t *Tree) TraverseWithArray(visit func(Interval3)) {
	n := t.N()
	if n == 0 {
		return
	}
	type frame struct{ lcp, lb int }
	stack := []frame{{lcp: 0, lb: 0}}

	for i := 1; i < n; i++ {
		lb := i - 1
		for len(stack) > 0 && t.LCPTab[i] < stack[len(stack)-1].lcp {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			visit(Interval3{LCP: top.lcp, LB: top.lb, RB: i - 1})
			lb = top.lb
		}
		if len(stack) == 0 || t.LCPTab[i] > stack[len(stack)-1].lcp {
			stack = append(stack, frame{lcp: t.LCPTab[i], lb: lb})
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(Interval3{LCP: top.lcp, LB: top.lb, RB: n - 1})
	}
}

// TraverseAndProcess is TraverseWithArray's richer sibling: each visited
// internal node additionally carries the list of its immediate children
// (Algorithm 4.4 of Abouelhoda-Kurtz-Ohlebusch).
func (t *Tree) TraverseAndProcess(visit func(Interval4)) {
	t.TraverseWithArray(func(iv Interval3) {
		visit(Interval4{
			LCP:      iv.LCP,
			LB:       iv.LB,
			RB:       iv.RB,
			Children: t.ChildIntervals(iv.LB, iv.RB),
		})
	})
}
