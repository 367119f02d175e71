// Package discover drives the iterative-deepening discovery pipeline:
// build vtrees for every input sequence, enumerate stems in the seed,
// filter by cross-sequence support, specialise and combine surviving
// motifs, and deduplicate the result.
package discover

import (
	"time"

	"github.com/catalystbio/seedmotif/motif"
	"github.com/catalystbio/seedmotif/stems"
)

// Params is the immutable parameter bundle threaded through a discovery
// run. MatchCount is the one mutable instrument (per-run match operation
// count); everything else is read-only for the lifetime of a Discover
// call.
type Params struct {
	Seed int

	StemMinLen           int
	StemMaxGU            int
	StemMaxSeparation    int
	SkipKeepLongestStems bool
	LoopMinLen           int
	MaxMismatch          int

	MinNumStem  int
	MaxNumStem  int
	MaxFixedPos int
	MinBasePair int
	MinSupport  float64

	NoGU  bool
	Range int

	TimeLimit      time.Duration
	SaveAllMatches bool

	MatchCount int64

	startTime time.Time
}

// DefaultParams returns the conventional parameter defaults for a
// discovery run.
func DefaultParams() Params {
	return Params{
		Seed:                 0,
		StemMinLen:           3,
		StemMaxGU:            100,
		StemMaxSeparation:    150,
		SkipKeepLongestStems: false,
		LoopMinLen:           4,
		MaxMismatch:          1,
		MinNumStem:           1,
		MaxNumStem:           2,
		MaxFixedPos:          100,
		MinBasePair:          5,
		MinSupport:           0.70,
		NoGU:                 false,
		Range:                1,
		TimeLimit:            0,
		SaveAllMatches:       false,
	}
}

// timeLimitExceeded reports whether the wall-clock budget (0 = none) has
// elapsed since the run started.
func (p *Params) timeLimitExceeded() bool {
	if p.TimeLimit == 0 {
		return false
	}
	return time.Since(p.startTime) >= p.TimeLimit
}

// stemsParams projects the discovery bundle onto the subset the stem
// enumerator consumes.
func (p *Params) stemsParams() stems.Params {
	return stems.Params{
		StemMinLen:           p.StemMinLen,
		StemMaxGU:            p.StemMaxGU,
		StemMaxSeparation:    p.StemMaxSeparation,
		LoopMinLen:           p.LoopMinLen,
		MaxMismatch:          p.MaxMismatch,
		NoGU:                 p.NoGU,
		SkipKeepLongestStems: p.SkipKeepLongestStems,
	}
}

// matchParams projects the discovery bundle onto the subset the matcher
// consumes, wiring the shared MatchCount instrument through by pointer.
func (p *Params) matchParams() motif.Params {
	return motif.Params{
		MaxMismatch: p.MaxMismatch,
		NoGU:        p.NoGU,
		Range:       p.Range,
		MatchCount:  &p.MatchCount,
	}
}
