package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// main is the entry point for the seedmotif command line utility. It is
// kept separate from application() to ease testing.
func main() {
	run(os.Args)
}

func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

// application defines the seedmotif *cli.App: the discover and fasta-check
// subcommands, each with its own flags.
func application() *cli.App {
	app := &cli.App{
		Name:  "seedmotif",
		Usage: "Discover recurring RNA secondary-structure motifs across a family of sequences.",

		Commands: []*cli.Command{
			{
				Name:  "discover",
				Usage: "Run the iterative-deepening motif discovery pipeline over a multi-FASTA file.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to a multi-FASTA file of nucleotide sequences.",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "seed",
						Value: 0,
						Usage: "Index of the seed sequence within the input file.",
					},
					&cli.IntFlag{
						Name:  "stem-min-len",
						Value: 3,
						Usage: "Minimum length of a stem arm.",
					},
					&cli.IntFlag{
						Name:  "stem-max-gu",
						Value: 100,
						Usage: "Maximum G·U wobble pairs per stem arm.",
					},
					&cli.IntFlag{
						Name:  "stem-max-separation",
						Value: 150,
						Usage: "Maximum distance between outer stem ends (0 = unbounded).",
					},
					&cli.IntFlag{
						Name:  "loop-min-len",
						Value: 4,
						Usage: "Minimum unpaired gap between paired arms.",
					},
					&cli.IntFlag{
						Name:  "range",
						Value: 1,
						Usage: "Extra loop-length tolerance during matching.",
					},
					&cli.IntFlag{
						Name:  "max-fixed-pos",
						Value: 100,
						Usage: "Cap on fixed (specialised) positions per motif.",
					},
					&cli.IntFlag{
						Name:  "min-num-stem",
						Value: 1,
						Usage: "Minimum number of stems a reported motif must have.",
					},
					&cli.BoolFlag{
						Name:  "skip-keep-longest-stems",
						Value: false,
						Usage: "Bypass the longest-stem filter.",
					},
					&cli.BoolFlag{
						Name:  "save-all-matches",
						Value: false,
						Usage: "Emit every match site instead of the first only.",
					},
					&cli.Float64Flag{
						Name:  "min-support",
						Value: 0.70,
						Usage: "Minimum fraction of sequences a motif must match.",
					},
					&cli.IntFlag{
						Name:  "min-basepair",
						Value: 5,
						Usage: "Minimum total base-paired positions a reported motif must have.",
					},
					&cli.IntFlag{
						Name:  "max-num-stem",
						Value: 2,
						Usage: "Maximum number of stems combined into one motif.",
					},
					&cli.IntFlag{
						Name:  "max-mismatch",
						Value: 1,
						Usage: "Maximum mismatches tolerated per match.",
					},
					&cli.BoolFlag{
						Name:  "no-gu",
						Value: false,
						Usage: "Disable G·U wobble base pairing.",
					},
					&cli.DurationFlag{
						Name:  "time-limit",
						Usage: "Wall-clock budget for the run (e.g. 30s, 5m). Zero means unlimited.",
					},
					&cli.BoolFlag{
						Name:  "score",
						Value: false,
						Usage: "Attach a Vienna2004 free-energy estimate to each reported motif.",
					},
					&cli.StringFlag{
						Name:  "ct-dir",
						Usage: "If set, write one CT-format file per reported motif's first match into this directory.",
					},
				},
				Action: discoverCommand,
			},
			{
				Name:  "fasta-check",
				Usage: "Validate a multi-FASTA file against the IUPAC nucleotide alphabet and report duplicate sequences.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to a multi-FASTA file.",
						Required: true,
					},
				},
				Action: fastaCheckCommand,
			},
		},
	}

	return app
}
