package discover

import (
	"log"
	"time"

	"github.com/catalystbio/seedmotif/alphabet"
	"github.com/catalystbio/seedmotif/motif"
	"github.com/catalystbio/seedmotif/stems"
	"github.com/catalystbio/seedmotif/vtree"
	"golang.org/x/exp/slices"
)

// Options bundles the run-level collaborators that sit outside the
// immutable Params: an optional logger (nil disables all progress
// messages) and an optional free-energy Scorer applied only at Report
// time.
type Options struct {
	Logger *log.Logger
	Scorer Scorer
}

// Scorer computes an optional thermodynamic score for a decoded
// sequence/structure pair. It is never consulted by the discovery
// pipeline itself, only at Report time — energy scoring is an external,
// pluggable capability.
type Scorer interface {
	Score(sequence, structure string) float64
}

func (o Options) logf(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

// Discover runs the full iterative-deepening pipeline over already
// digitised sequences: build a vtree per input sequence, enumerate stems
// in the seed, filter by
// support, drop stems contained in longer ones, specialise fixed
// positions, combine into multi-stem motifs, and deduplicate.
func Discover(seqs []*alphabet.DigitalString, params Params, opts Options) ([]*motif.Motif, error) {
	if params.Seed < 0 || params.Seed >= len(seqs) {
		return nil, errSeedOutOfRange(params.Seed, len(seqs))
	}
	if params.StemMaxSeparation != 0 && params.StemMaxSeparation < 2*params.StemMinLen+params.LoopMinLen-1 {
		return nil, errInvalidSeparation(params.StemMaxSeparation, params.StemMinLen, params.LoopMinLen)
	}

	params.startTime = time.Now()

	seed := seqs[params.Seed]

	vs := makeAllVTrees(seqs)

	opts.logf("[ enumerating stems ]")
	m0 := stems.FindAllStems(seed, params.stemsParams())

	m1 := filterBySupport(m0, vs, seed, &params, opts)
	opts.logf("[ size of the motif list is %d ]", len(m1))

	m2 := filterKeepLongestStems(m1, params.SkipKeepLongestStems, opts)
	opts.logf("[ size of the motif list is %d ]", len(m2))

	m3 := fixAll2(m2, vs, seed, &params, opts)
	opts.logf("[ size of the motif list is %d ]", len(m3))

	m3 = combineAllAll(m3, vs, seed, &params, opts)
	opts.logf("[ total number of match operations is %d ]", params.MatchCount)

	m4 := postProcess(m3, seed, &params)
	opts.logf("[ size of the motif list is %d ]", len(m4))

	return m4, nil
}

// makeAllVTrees builds one vtree per input sequence, tagged by its index
// in seqs.
func makeAllVTrees(seqs []*alphabet.DigitalString) []*vtree.Tree {
	vs := make([]*vtree.Tree, len(seqs))
	for i, s := range seqs {
		v, err := vtree.FromDigitalString(s, i)
		if err != nil {
			panic("discover: internal error, failed to build vtree: " + err.Error())
		}
		vs[i] = v
	}
	return vs
}

// calculateSupport sets m.Support to the fraction of vs in which m has at
// least one match.
func calculateSupport(m *motif.Motif, vs []*vtree.Tree, seed *alphabet.DigitalString, params *Params) {
	matched := 0
	mp := params.matchParams()
	for _, v := range vs {
		if motif.Occurs(v, m, seed, mp) {
			matched++
		}
	}
	m.Support = float64(matched) / float64(len(vs))
}

// filterBySupport drops every motif whose cross-sequence support falls
// below params.MinSupport.
func filterBySupport(in []*motif.Motif, vs []*vtree.Tree, seed *alphabet.DigitalString, params *Params, opts Options) []*motif.Motif {
	opts.logf("[ filtering by support ]")
	out := make([]*motif.Motif, 0, len(in))
	for _, m := range in {
		calculateSupport(m, vs, seed, params)
		if m.Support >= params.MinSupport {
			out = append(out, m)
		}
	}
	return out
}

// filterKeepLongestStems drops any single-stem motif whose outer extent
// is contained within another surviving motif's. Skipped entirely when
// skip is set.
func filterKeepLongestStems(in []*motif.Motif, skip bool, opts Options) []*motif.Motif {
	if skip {
		return in
	}
	opts.logf("[ keeping longest stems ]")

	remaining := append([]*motif.Motif(nil), in...)
	var out []*motif.Motif

	for len(remaining) > 0 {
		m1 := remaining[0]
		remaining = remaining[1:]

		within := false
		var kept []*motif.Motif
		for _, m2 := range remaining {
			switch {
			case motif.StemWithin(m1, m2):
				within = true
				kept = append(kept, m2)
			case motif.StemWithin(m2, m1):
				// m2 is dropped: a longer stem (m1) already subsumes it.
			default:
				kept = append(kept, m2)
			}
		}
		remaining = kept

		if !within {
			out = append(out, m1)
		}
	}

	return out
}

// fixAll breadth-first specialises single-stem motifs by fixing one
// additional Left-mask position at a time, dropping clones whose support
// falls below threshold.
func fixAll(open []*motif.Motif, vs []*vtree.Tree, seed *alphabet.DigitalString, params *Params) []*motif.Motif {
	var out []*motif.Motif

	for len(open) > 0 {
		m := open[0]
		open = open[1:]
		out = append(out, m)

		if m.NumFixedPos >= params.MaxFixedPos {
			continue
		}

		e := m.Expression
		highest := highestSetBit(e.Mask)

		for i := highest + 1; i < e.Length; i++ {
			clone := motif.CloneMotif(m)
			clone.Expression.Mask.Bits[i] = true
			clone.NumFixedPos++

			calculateSupport(clone, vs, seed, params)

			if clone.Support < params.MinSupport {
				continue
			}
			if clone.NumFixedPos < params.MaxFixedPos && i < e.Length-1 {
				open = append(open, clone)
			} else {
				out = append(out, clone)
			}
		}
	}

	return out
}

// highestSetBit returns the highest set index in mask, or -1 if none.
// Specialisation only ever fixes positions past the highest
// already-fixed one, which keeps every generated mask distinct.
func highestSetBit(mask *motif.Mask) int {
	for i := len(mask.Bits) - 1; i >= 0; i-- {
		if mask.Bits[i] {
			return i
		}
	}
	return -1
}

// fixAll2 drives fixAll one seed motif at a time so that all descendants
// of the same parent land contiguously in the output, recording each
// element's Next as the exclusive upper bound of its parent's block. It
// drains the remaining input unchanged once the time budget is
// exhausted.
func fixAll2(open []*motif.Motif, vs []*vtree.Tree, seed *alphabet.DigitalString, params *Params, opts Options) []*motif.Motif {
	opts.logf("[ fixing positions ]")

	var out []*motif.Motif

	for len(open) > 0 {
		if params.timeLimitExceeded() {
			out = append(out, open...)
			break
		}

		m := open[0]
		open = open[1:]

		first := len(out)
		res := fixAll([]*motif.Motif{m}, vs, seed, params)
		last := first + len(res)

		for _, rm := range res {
			rm.Next = last
			out = append(out, rm)
		}
	}

	return out
}

// combineAllAll iteratively composes motifs of the current stem-count
// level against every candidate at index >= a.Next (guarding against
// nesting a motif inside one of its own descendants), appending surviving
// combinations to motifs in place and widening the level boundaries.
func combineAllAll(motifs []*motif.Motif, vs []*vtree.Tree, seed *alphabet.DigitalString, params *Params, opts Options) []*motif.Motif {
	opts.logf("[ combining motifs ]")

	n := len(motifs)
	first, last, numStem := 0, n, 1
	done := params.MaxNumStem < 2 || params.timeLimitExceeded()

	for !done {
		opts.logf("[ generating all %d stems motifs ]", numStem+1)

		for i := first; i < last && !done; i++ {
			current := motifs[i]

			// j only ranges over the base specialisation block: every
			// combination adds one more of the base single-stem motifs.
			for j := current.Next; j < n && !done; j++ {
				if j < 0 {
					continue
				}
				candidate := motif.Combine(current, motifs[j])
				if candidate != nil {
					calculateSupport(candidate, vs, seed, params)
					if candidate.Support >= params.MinSupport {
						motifs = append(motifs, candidate)
					}
				}

				if params.timeLimitExceeded() {
					done = true
				}
			}
		}

		numStem++

		if len(motifs) == last || numStem == params.MaxNumStem {
			done = true
		} else {
			first, last = last, len(motifs)
		}
	}

	return motifs
}

// postProcess removes motifs that fall short of the minimum stem/base-pair
// requirements and, scanning from last to first, redundant motifs sharing
// an identical (NumFixedPos, sequence, structure) key with an
// earlier-indexed motif.
func postProcess(in []*motif.Motif, seed *alphabet.DigitalString, params *Params) []*motif.Motif {
	n := len(in)
	type cacheEntry struct {
		seq, sec string
		has      bool
	}
	cache := make([]cacheEntry, n)

	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}

	for i := n - 1; i >= 0; i-- {
		m := in[i]

		if m.NumStem < params.MinNumStem || motif.MotifNumBasePair(m) < params.MinBasePair {
			keep[i] = false
			continue
		}

		for j := 0; j < i; j++ {
			if !keep[j] {
				continue
			}
			other := in[j]
			if m.NumFixedPos != other.NumFixedPos {
				continue
			}

			if !cache[i].has {
				cache[i].seq, cache[i].sec = motif.MotifToString(m, seed)
				cache[i].has = true
			}
			if !cache[j].has {
				cache[j].seq, cache[j].sec = motif.MotifToString(other, seed)
				cache[j].has = true
			}

			if cache[i].seq == cache[j].seq && cache[i].sec == cache[j].sec {
				keep[i] = false
				break
			}
		}
	}

	out := make([]*motif.Motif, 0, n)
	for i, m := range in {
		if keep[i] {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, func(a, b *motif.Motif) bool {
		return motif.MotifStart(a) < motif.MotifStart(b)
	})
	return out
}
