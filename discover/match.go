package discover

import (
	"github.com/catalystbio/seedmotif/alphabet"
	"github.com/catalystbio/seedmotif/motif"
	"github.com/catalystbio/seedmotif/vtree"
)

// MatchSeed builds a vtree over seed and returns the occurrences of m
// within it: every one when params.SaveAllMatches is set, otherwise only
// the first. It is the external-collaborator-facing counterpart to the
// support calculation Discover runs internally, letting a caller (the CLI's
// CT-format output, in particular) recover the concrete match sites behind
// a reported motif without reaching into the pipeline's internals.
func MatchSeed(seed *alphabet.DigitalString, m *motif.Motif, params Params) ([]motif.Match, error) {
	v, err := vtree.FromDigitalString(seed, 0)
	if err != nil {
		return nil, err
	}
	return motif.FindMatches(v, m, seed, params.SaveAllMatches, params.matchParams()), nil
}

// MatchAll returns m's match sites in every input sequence, indexed the
// same way as seqs; sequences without a match get a nil slice. The seed
// is the sequence m's fixed positions decode against (params.Seed indexes
// it within seqs). SaveAllMatches selects every site versus the first
// per sequence.
func MatchAll(seqs []*alphabet.DigitalString, m *motif.Motif, params Params) ([][]motif.Match, error) {
	if params.Seed < 0 || params.Seed >= len(seqs) {
		return nil, errSeedOutOfRange(params.Seed, len(seqs))
	}
	seed := seqs[params.Seed]

	out := make([][]motif.Match, len(seqs))
	for i, s := range seqs {
		v, err := vtree.FromDigitalString(s, i)
		if err != nil {
			return nil, err
		}
		out[i] = motif.FindMatches(v, m, seed, params.SaveAllMatches, params.matchParams())
	}
	return out, nil
}
