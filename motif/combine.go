package motif

import "github.com/catalystbio/seedmotif/alphabet"

// elementStart and elementEnd return a single node's own seed-coordinate
// span. A Right node's span is read backwards from its Start (the outer
// end of the arm).
func elementStart(e *Expression) int {
	if e.Kind == Right {
		return e.Start - e.Length + 1
	}
	return e.Start
}

func elementEnd(e *Expression) int {
	if e.Kind == Right {
		return e.Start
	}
	return e.Start + e.Length - 1
}

// elementBefore reports whether a ends, in seed coordinates, strictly
// before b begins.
func elementBefore(a, b *Expression) bool {
	return elementEnd(a) < elementStart(b)
}

// expressionNext follows the same successor a free walk of the graph
// takes: into the nested subexpression for a Left node, onward via
// Adjacent for Right and Range.
func expressionNext(e *Expression) *Expression {
	if e.Kind == Left {
		return e.Nested
	}
	return e.Adjacent
}

// expressionStart returns the leftmost seed coordinate reachable from e: a
// Right reports its paired Left's start.
func expressionStart(e *Expression) int {
	if e.Kind == Right {
		return e.Nested.Start
	}
	return e.Start
}

// expressionEnd walks to the final Adjacent node and returns its own
// element end: the rightmost seed coordinate reachable from e.
func expressionEnd(e *Expression) int {
	for e.Adjacent != nil {
		e = e.Adjacent
	}
	return elementEnd(e)
}

// MotifStart and MotifEnd report the outermost seed-coordinate span of a
// motif.
func MotifStart(m *Motif) int { return expressionStart(m.Expression) }
func MotifEnd(m *Motif) int   { return expressionEnd(m.Expression) }

// MotifBefore reports whether a ends strictly before b begins in seed
// coordinates.
func MotifBefore(a, b *Motif) bool {
	return MotifEnd(a) < MotifStart(b)
}

// StemWithin reports whether the outer Left/Right coordinates of single-
// stem motif a are nested within those of single-stem motif b.
// Both motifs must be single stems (their outermost node is
// Left, whose Adjacent is the matching Right) — the caller is only ever
// the longest-stem filter, which operates exclusively on L3 output.
func StemWithin(a, b *Motif) bool {
	als, ale := elementStart(a.Expression), elementEnd(a.Expression)
	ars, are := elementStart(a.Expression.Adjacent), elementEnd(a.Expression.Adjacent)
	bls, ble := elementStart(b.Expression), elementEnd(b.Expression)
	brs, bre := elementStart(b.Expression.Adjacent), elementEnd(b.Expression.Adjacent)

	return als >= bls && ale <= ble && ars >= brs && are <= bre
}

// expressionAppend clones a and b and splices a fresh Range connector
// between the end of a's clone and the head of b's clone.
func expressionAppend(a, b *Expression) *Expression {
	ea := cloneGraph(a)
	eb := cloneGraph(b)

	e := ea
	for e.Adjacent != nil {
		e = e.Adjacent
	}

	connector := &Expression{
		Kind:   Range,
		Start:  expressionEnd(ea) + 1,
		Length: expressionStart(eb) - expressionEnd(ea) - 1,
	}
	connector.Adjacent = eb

	e.Adjacent = connector

	return ea
}

// motifAppend concatenates two motifs known not to overlap.
func motifAppend(a, b *Motif) *Motif {
	return &Motif{
		Expression:  expressionAppend(a.Expression, b.Expression),
		NumFixedPos: a.NumFixedPos + b.NumFixedPos,
		NumStem:     a.NumStem + b.NumStem,
		Support:     -1,
	}
}

// replaceRangeByStem splices single-stem expression stem, plus two fresh
// Range connectors filling the residual gaps, in place of the Range node
// directly reachable from previous.
func replaceRangeByStem(previous, stem *Expression) {
	var p *Expression
	if previous.Kind == Left {
		p = previous.Nested
	} else {
		p = previous.Adjacent
	}

	adjacent := p.Adjacent
	if adjacent == nil {
		panic("motif: internal error, invalid expression")
	}

	cleft := &Expression{
		Kind:   Range,
		Start:  elementEnd(previous) + 1,
		Length: expressionStart(stem) - elementEnd(previous) - 1,
	}
	cleft.Adjacent = stem

	if previous.Kind == Left {
		previous.Nested = cleft
	} else if previous.Kind == Right {
		previous.Adjacent = cleft
	} else {
		panic("motif: internal error, two consecutive range expressions")
	}

	cright := &Expression{
		Kind:   Range,
		Start:  expressionEnd(stem) + 1,
		Length: elementStart(adjacent) - expressionEnd(stem) - 1,
	}
	cright.Adjacent = adjacent

	if stem.Kind != Left || stem.Adjacent.Kind != Right {
		panic("motif: internal error, insert target is not a single stem")
	}
	stem.Adjacent.Adjacent = cright

	if adjacent.Kind == Range {
		panic("motif: internal error, consecutive range expressions")
	}

	p.Nested = nil
	p.Adjacent = nil
}

// motifInsert inserts single-stem motif b into motif a by locating a Range
// node of a that contains b's seed-coordinate span and replacing it with
// left-connector·b·right-connector.
// Returns nil if no such Range exists or the ordering is inconsistent.
func motifInsert(a, b *Motif) *Motif {
	if b.NumStem != 1 {
		panic("motif: internal error, insert operand is not a single stem")
	}

	ea := cloneGraph(a.Expression)
	eb := cloneGraph(b.Expression)

	pa := ea

	for {
		var next *Expression
		if pa.Kind == Left {
			next = pa.Nested
		} else {
			next = pa.Adjacent
		}

		switch {
		case next == nil:
			return nil

		case next.Kind == Range &&
			expressionStart(eb) >= elementStart(next) &&
			expressionEnd(eb) <= elementEnd(next):

			replaceRangeByStem(pa, eb)
			return &Motif{
				Expression:  ea,
				NumFixedPos: a.NumFixedPos + b.NumFixedPos,
				NumStem:     a.NumStem + b.NumStem,
				Support:     -1,
			}

		case !elementBefore(next, eb):
			return nil

		case pa.Kind == Left && elementBefore(eb, pa.Adjacent):
			pa = pa.Nested

		default:
			pa = pa.Adjacent
		}
	}
}

// Combine composes motifs a and b into one larger motif: if one motif's
// span precedes the other's, the result is their concatenation (Append);
// otherwise b (required to be a single stem) is nested inside one of a's
// Range spans (Insert). Returns nil when neither case applies. The result's
// Next field inherits from b.
func Combine(a, b *Motif) *Motif {
	var result *Motif

	switch {
	case MotifBefore(a, b):
		result = motifAppend(a, b)
	case MotifBefore(b, a):
		result = motifAppend(b, a)
	default:
		result = motifInsert(a, b)
	}

	if result != nil {
		result.Next = b.Next
	}

	return result
}

// expressionNumBasePair sums Length over every Left node reachable by
// following expressionNext.
func expressionNumBasePair(e *Expression) int {
	if e == nil {
		return 0
	}
	result := expressionNumBasePair(expressionNext(e))
	if e.Kind == Left {
		result += e.Length
	}
	return result
}

// MotifNumBasePair returns the total number of base-paired positions in m.
func MotifNumBasePair(m *Motif) int {
	return expressionNumBasePair(m.Expression)
}

// MotifToString renders m's canonical equivalence key: the decoded
// nucleotide sequence and its dot-bracket structure, both of length
// MotifEnd-MotifStart+1, built in one synchronized walk.
func MotifToString(m *Motif, seed *alphabet.DigitalString) (sequence, structure string) {
	n := MotifEnd(m) - MotifStart(m) + 1
	seq := make([]rune, 0, n)
	sec := make([]byte, 0, n)

	e := m.Expression
	for e != nil {
		switch e.Kind {
		case Left:
			for k := 0; k < e.Length; k++ {
				seq = append(seq, alphabet.Decode(GetSymbol5to3(e, k, seed)))
				sec = append(sec, '(')
			}
			e = e.Nested
		case Right:
			for k := 0; k < e.Length; k++ {
				seq = append(seq, alphabet.Decode(GetSymbol5to3(e, k, seed)))
				sec = append(sec, ')')
			}
			e = e.Adjacent
		case Range:
			for k := 0; k < e.Length; k++ {
				seq = append(seq, alphabet.Decode(GetSymbol5to3(e, k, seed)))
				sec = append(sec, '.')
			}
			e = e.Adjacent
		default:
			panic("motif: unknown expression kind")
		}
	}

	return string(seq), string(sec)
}
