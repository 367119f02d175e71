package discover

import "fmt"

func errSeedOutOfRange(seed, n int) error {
	return fmt.Errorf("discover: seed index %d out of range for %d input sequences", seed, n)
}

func errInvalidSeparation(maxSeparation, stemMinLen, loopMinLen int) error {
	return fmt.Errorf(
		"discover: StemMaxSeparation %d is too small for StemMinLen %d and LoopMinLen %d (need at least %d)",
		maxSeparation, stemMinLen, loopMinLen, 2*stemMinLen+loopMinLen-1,
	)
}
