// Package energy provides optional thermodynamic scoring of a discovered
// motif occurrence. It sits entirely outside the discovery core: the
// pipeline never consults it, and a caller wires it in only at Report
// time.
package energy

import "github.com/catalystbio/seedmotif/energy/nn"

// isPureRNA reports whether sequence consists solely of A, C, G, and U,
// guarding against the underlying model's index-out-of-range panic on
// input it cannot recognise (e.g. a motif position still carrying its
// unfixed IUPAC joker code).
func isPureRNA(sequence string) bool {
	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'A', 'C', 'G', 'U':
		default:
			return false
		}
	}
	return true
}

// Scorer computes a free-energy estimate for a decoded sequence/structure
// pair. discover.Scorer is satisfied by any type implementing this
// method; a caller that doesn't want scoring simply passes nil.
type Scorer interface {
	Score(sequence, structure string) float64
}

// Vienna2004Scorer scores a folded RNA secondary structure using the
// ViennaRNA nearest-neighbour model with Turner 2004 parameters, at a
// fixed folding temperature.
type Vienna2004Scorer struct {
	// Temperature is the folding temperature in degrees Celsius.
	// Zero defaults to 37.0, the standard physiological temperature
	// ViennaRNA itself defaults to.
	Temperature float64
}

// Score returns the minimum free energy, in kcal/mol, of structure folded
// over sequence. Sequence positions outside ACGU (degenerate IUPAC codes
// left over from unfixed motif positions) make the underlying model
// reject the input; Score reports 0 in that case rather than panicking,
// since a Report is still meaningful without an energy term.
func (s Vienna2004Scorer) Score(sequence, structure string) float64 {
	if !isPureRNA(sequence) {
		return 0
	}

	temperature := s.Temperature
	if temperature == 0 {
		temperature = 37.0
	}

	mfe, _, err := nn.MinimumFreeEnergy(sequence, structure, temperature)
	if err != nil {
		return 0
	}
	return mfe
}
