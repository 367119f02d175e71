package energy

import "testing"

func TestVienna2004ScorerScoresHairpin(t *testing.T) {
	scorer := Vienna2004Scorer{}

	sequence := "GGGGAAAACCCC"
	structure := "((((....))))"

	got := scorer.Score(sequence, structure)
	if got >= 0 {
		t.Fatalf("Score(%q, %q) = %v, want a negative (favourable) free energy", sequence, structure, got)
	}
}

func TestVienna2004ScorerRejectsDegenerateSequence(t *testing.T) {
	scorer := Vienna2004Scorer{}

	got := scorer.Score("GGGGNNNNCCCC", "((((....))))")
	if got != 0 {
		t.Fatalf("Score with a degenerate sequence = %v, want 0 (unscoreable)", got)
	}
}

func TestVienna2004ScorerDefaultTemperature(t *testing.T) {
	withZero := Vienna2004Scorer{}
	withDefault := Vienna2004Scorer{Temperature: 37.0}

	sequence := "GGGGAAAACCCC"
	structure := "((((....))))"

	if withZero.Score(sequence, structure) != withDefault.Score(sequence, structure) {
		t.Fatal("Temperature: 0 should default to 37.0 and match an explicit 37.0")
	}
}
