package motif

import (
	"github.com/catalystbio/seedmotif/alphabet"
	"github.com/catalystbio/seedmotif/vtree"
)

// Params is the subset of the discovery parameter bundle the matcher
// consumes: the mismatch budget, whether G·U wobble pairs are honoured,
// and the extra loop-length tolerance applied per Range node. MatchCount,
// when non-nil, is incremented once per Occurs call — the sole mutable
// state the core threads through an otherwise pure walk.
type Params struct {
	MaxMismatch int
	NoGU        bool
	Range       int
	MatchCount  *int64
}

// Match is one reported occurrence of a motif against a sequence's vtree:
// the decoded nucleotide text of the match site and its dot-bracket
// structure, both of length Length.
type Match struct {
	ID        int
	Offset    int
	Length    int
	Sequence  string
	Structure string
}

// matchState carries the mutable per-call buffers matchNode and matchEdge
// share: the decoded-symbol and bracket accumulators and the base-pair
// stack.
type matchState struct {
	v        *vtree.Tree
	seed     *alphabet.DigitalString
	saveAll  bool
	decision bool
	params   Params
	sbuf     []alphabet.Symbol
	bbuf     []byte
	stack    []alphabet.Symbol
	matches  *[]Match
}

// FindMatches walks motif m against v, collecting every match (or, when saveAll
// is false, only the first one found, ending the walk) into a slice of Match.
func FindMatches(v *vtree.Tree, m *Motif, seed *alphabet.DigitalString, saveAll bool, params Params) []Match {
	var matches []Match
	st := &matchState{
		v:       v,
		seed:    seed,
		saveAll: saveAll,
		params:  params,
		sbuf:    make([]alphabet.Symbol, v.N()+1),
		bbuf:    make([]byte, v.N()+1),
		matches: &matches,
	}
	matchNode(st, vtree.Interval2{Start: 0, End: v.N() - 1}, m.Expression, 0, 0, 0)
	return matches
}

// Occurs reports whether v contains at least one match of m, without
// collecting match sites, and increments params.MatchCount if set.
func Occurs(v *vtree.Tree, m *Motif, seed *alphabet.DigitalString, params Params) bool {
	st := &matchState{
		v:        v,
		seed:     seed,
		saveAll:  false,
		decision: true,
		params:   params,
	}
	result := matchNode(st, vtree.Interval2{Start: 0, End: v.N() - 1}, m.Expression, 0, 0, 0)
	if params.MatchCount != nil {
		*params.MatchCount++
	}
	return result
}

// addMatch appends save-worthy matches rooted at interval to st.matches,
// decoding length symbols from st.sbuf/st.bbuf. When st.saveAll, every
// suffix-array position within interval produces its own match; otherwise
// only the first (interval.Start).
func addMatch(st *matchState, interval vtree.Interval2, length int) {
	n := 1
	if st.saveAll {
		n = interval.End - interval.Start + 1
	}
	for k := 0; k < n; k++ {
		seq := make([]byte, length)
		for pos := 0; pos < length; pos++ {
			seq[pos] = byte(alphabet.Decode(st.sbuf[pos]))
		}
		structure := make([]byte, length)
		copy(structure, st.bbuf[:length])

		*st.matches = append(*st.matches, Match{
			ID:        st.v.ID,
			Offset:    st.v.SufTab[interval.Start+k],
			Length:    length,
			Sequence:  string(seq),
			Structure: string(structure),
		})
	}
}

// matchEdge walks expr along a single suffix-tree edge label starting at
// suffix-array position v.SufTab[interval.Start]+pos, having already
// consumed offset symbols of the current expression node. It is mutually
// recursive with matchNode.
func matchEdge(st *matchState, interval vtree.Interval2, expr *Expression, pos, offset, mismatches int) bool {
	if expr == nil {
		if len(st.stack) != 0 {
			panic("motif: internal error, invalid expression, unbalanced pair stack")
		}
		if !st.decision {
			addMatch(st, interval, pos)
		}
		return true
	}

	if interval.Start != interval.End && pos == st.v.GetLCP(interval.Start, interval.End) {
		return matchNode(st, interval, expr, pos, offset, mismatches)
	}

	switch expr.Kind {
	case Left:
		if offset >= expr.Length {
			return matchEdge(st, interval, expr.Nested, pos, 0, mismatches)
		}
		return st.matchPairedSymbol(interval, expr, pos, offset, mismatches, '(', false)

	case Right:
		if offset >= expr.Length {
			return matchEdge(st, interval, expr.Adjacent, pos, 0, mismatches)
		}
		return st.matchPairedSymbol(interval, expr, pos, offset, mismatches, ')', true)

	case Range:
		if offset >= expr.Length {
			result := matchEdge(st, interval, expr.Adjacent, pos, 0, mismatches)
			if (!result || st.saveAll) && offset < expr.Length+st.params.Range {
				a, ok := st.readTextSymbol(interval, pos)
				if !ok {
					return result
				}
				st.writeBuf(pos, a, '.')
				result = matchEdge(st, interval, expr, pos+1, offset+1, mismatches)
			}
			return result
		}

		a, ok := st.readTextSymbol(interval, pos)
		if !ok {
			return false
		}
		st.writeBuf(pos, a, '.')
		return matchEdge(st, interval, expr, pos+1, offset+1, mismatches)

	default:
		panic("motif: unknown expression kind")
	}
}

// writeBuf records the consumed symbol and its bracket at buffer index
// pos. Every consumed symbol advances pos by exactly one, so pos doubles
// as the write cursor: abandoned branches are simply overwritten by the
// next branch at the same depth, and addMatch reads sbuf[0..length-1].
func (st *matchState) writeBuf(pos int, a alphabet.Symbol, bracket byte) {
	if st.sbuf == nil {
		return
	}
	st.sbuf[pos] = a
	st.bbuf[pos] = bracket
}

// readTextSymbol reads the text symbol at suffix-array position
// interval.Start, pos, failing on a terminator or an out-of-range read.
func (st *matchState) readTextSymbol(interval vtree.Interval2, pos int) (alphabet.Symbol, bool) {
	idx := st.v.SufTab[interval.Start] + pos
	if idx >= len(st.v.Text) {
		return 0, false
	}
	raw := st.v.Text[idx]
	if raw == 0 {
		return 0, false
	}
	// vtree shifts every real symbol up by one and maps the terminator to
	// 0 (see vtree.FromDigitalString); undo that to recover the symbol.
	sym := alphabet.Symbol(raw - 1)
	if alphabet.IsSpecial(sym) {
		return 0, false
	}
	return sym, true
}

// matchPairedSymbol implements matchEdge's Left and Right branches: read
// one text symbol, compare or base-pair it against the expression's
// expected symbol, account mismatches, and recurse. isRight selects the
// pair-stack pop/push-back behaviour of the Right branch.
func (st *matchState) matchPairedSymbol(interval vtree.Interval2, expr *Expression, pos, offset, mismatches int, bracket byte, isRight bool) bool {
	a, ok := st.readTextSymbol(interval, pos)
	if !ok {
		return false
	}

	b := GetSymbol5to3(expr, offset, st.seed)
	if alphabet.IsSpecial(b) {
		return false
	}

	if !isRight {
		if !alphabet.Cmp(a, b) {
			mismatches++
			if mismatches > st.params.MaxMismatch {
				return false
			}
		}
		st.writeBuf(pos, a, bracket)
		st.stack = append(st.stack, a)
		result := matchEdge(st, interval, expr, pos+1, offset+1, mismatches)
		st.stack = st.stack[:len(st.stack)-1]
		return result
	}

	partner := st.stack[len(st.stack)-1]
	st.stack = st.stack[:len(st.stack)-1]

	if !alphabet.Cmp(a, b) || !alphabet.IsBasePair(partner, a, !st.params.NoGU) {
		mismatches++
		if mismatches > st.params.MaxMismatch {
			st.stack = append(st.stack, partner)
			return false
		}
	}

	st.writeBuf(pos, a, bracket)
	result := matchEdge(st, interval, expr, pos+1, offset+1, mismatches)
	st.stack = append(st.stack, partner)
	return result
}

// matchNode handles an internal lcp-interval: enumerate every child
// sub-interval and recurse via matchEdge, stopping at the first success
// unless saveAll forces exhaustion of every child.
func matchNode(st *matchState, interval vtree.Interval2, expr *Expression, pos, offset, mismatches int) bool {
	found := false
	for _, child := range st.v.ChildIntervals(interval.Start, interval.End) {
		if matchEdge(st, child, expr, pos, offset, mismatches) {
			found = true
		}
		if found && !st.saveAll {
			break
		}
	}
	return found
}
