package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/catalystbio/seedmotif/discover"
	"github.com/catalystbio/seedmotif/energy"
	"github.com/catalystbio/seedmotif/motif"
	"github.com/catalystbio/seedmotif/seqio"
)

// discoverCommand loads a multi-FASTA file, runs the discovery pipeline
// over it with flag-overridden parameters, and prints one report line per
// surviving motif, optionally writing CT-format match files.
func discoverCommand(c *cli.Context) error {
	records, err := readFasta(c.String("input"))
	if err != nil {
		return err
	}

	for _, group := range seqio.DuplicateGroups(records) {
		log.Printf("[ warning: records %v are identical sequences ]", group)
	}

	params := discover.DefaultParams()
	params.Seed = c.Int("seed")
	params.StemMinLen = c.Int("stem-min-len")
	params.StemMaxGU = c.Int("stem-max-gu")
	params.StemMaxSeparation = c.Int("stem-max-separation")
	params.LoopMinLen = c.Int("loop-min-len")
	params.Range = c.Int("range")
	params.MaxFixedPos = c.Int("max-fixed-pos")
	params.MinNumStem = c.Int("min-num-stem")
	params.SkipKeepLongestStems = c.Bool("skip-keep-longest-stems")
	params.SaveAllMatches = c.Bool("save-all-matches")
	params.MinSupport = c.Float64("min-support")
	params.MinBasePair = c.Int("min-basepair")
	params.MaxNumStem = c.Int("max-num-stem")
	params.MaxMismatch = c.Int("max-mismatch")
	params.NoGU = c.Bool("no-gu")
	params.TimeLimit = c.Duration("time-limit")

	opts := discover.Options{
		Logger: log.New(os.Stderr, "", log.LstdFlags),
	}
	var scorer energy.Vienna2004Scorer
	if c.Bool("score") {
		opts.Scorer = scorer
	}

	motifs, err := discover.Discover(seqio.Sequences(records), params, opts)
	if err != nil {
		return fmt.Errorf("discover: %w", err)
	}

	seed := records[params.Seed].Sequence
	ctDir := c.String("ct-dir")
	if ctDir != "" {
		if err := os.MkdirAll(ctDir, 0755); err != nil {
			return err
		}
	}

	for i, m := range motifs {
		report := discover.NewReport(m, seed, opts.Scorer)
		fmt.Println(report.String())

		if ctDir == "" {
			continue
		}

		matches, err := discover.MatchSeed(seed, m, params)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			continue
		}

		path := filepath.Join(ctDir, fmt.Sprintf("motif-%03d-%s.ct", i, report.ID))
		if err := writeCTFile(path, report.ID, matches[0]); err != nil {
			return err
		}
	}

	return nil
}

func writeCTFile(path, name string, match motif.Match) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return discover.WriteCT(f, name, match)
}

// fastaCheckCommand validates every record of a multi-FASTA file against
// the IUPAC nucleotide alphabet and reports any duplicate sequences found.
func fastaCheckCommand(c *cli.Context) error {
	records, err := readFasta(c.String("input"))
	if err != nil {
		return err
	}

	fmt.Printf("%d valid records\n", len(records))

	groups := seqio.DuplicateGroups(records)
	for _, group := range groups {
		fmt.Printf("duplicate sequence: records %v\n", group)
	}
	if len(groups) == 0 {
		fmt.Println("no duplicate sequences found")
	}

	return nil
}

func readFasta(path string) ([]seqio.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := seqio.Parse(f)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no FASTA records found", path)
	}
	return records, nil
}
