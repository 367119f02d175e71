package motif

// CloneMotif deep-copies m's entire expression graph into an independent
// graph: every node is freshly allocated, each Left/Right pair shares one
// freshly allocated Mask (never reusing the original), and every pointer
// — including the Right→Left back-edge used to re-acquire a mask — is
// rewritten to point within the clone.
//
// The walk memoizes clones per source node and per source mask: any edge
// that reaches an already-visited node (Right.Nested pointing back at its
// Left, or a Left.Adjacent whose Right was already built through the
// stem's contents) resolves to the already-built clone instead of
// recursing again, so structural identity survives the copy.
func CloneMotif(m *Motif) *Motif {
	clone := cloneGraph(m.Expression)
	return &Motif{
		Expression:  clone,
		NumFixedPos: m.NumFixedPos,
		NumStem:     m.NumStem,
		Next:        m.Next,
		Support:     m.Support,
	}
}

func cloneGraph(root *Expression) *Expression {
	nodes := map[*Expression]*Expression{}
	masks := map[*Mask]*Mask{}

	var walk func(e *Expression) *Expression
	walk = func(e *Expression) *Expression {
		if e == nil {
			return nil
		}
		if c, ok := nodes[e]; ok {
			return c
		}
		c := &Expression{
			Kind:     e.Kind,
			Start:    e.Start,
			Length:   e.Length,
			Range:    e.Range,
			Mismatch: e.Mismatch,
		}
		nodes[e] = c
		if e.Mask != nil {
			nm, ok := masks[e.Mask]
			if !ok {
				nm = &Mask{Bits: append([]bool(nil), e.Mask.Bits...)}
				masks[e.Mask] = nm
			}
			c.Mask = nm
		}
		c.Nested = walk(e.Nested)
		c.Adjacent = walk(e.Adjacent)
		return c
	}
	return walk(root)
}
