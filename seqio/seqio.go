// Package seqio reads multi-FASTA nucleotide input for the discovery
// pipeline: it parses records, validates and digitalises each sequence
// against the IUPAC alphabet, and fingerprints raw sequence bytes to
// flag duplicate input records.
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"lukechampine.com/blake3"

	"github.com/catalystbio/seedmotif/alphabet"
)

// Record is one validated FASTA entry: its description line (without the
// leading '>'), the nucleotide letters joined across lines and
// upper-cased, and
// the digitalised form the core operates on.
type Record struct {
	Description string
	Raw         string
	Sequence    *alphabet.DigitalString
	Fingerprint string
}

// Parse reads every FASTA record from r, validating and digitalising each
// sequence in turn. Blank lines and ';' comment lines are skipped and '>'
// starts a new record; letters are validated against the IUPAC alphabet
// rather than accepted as arbitrary FASTA bytes, failing fast on the
// first invalid symbol with its record index and description.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record
	var description string
	var lines []string
	started := false

	flush := func() error {
		if !started {
			return nil
		}
		raw := strings.ToUpper(strings.Join(lines, ""))
		rec, err := newRecord(description, raw)
		if err != nil {
			return fmt.Errorf("seqio: record %d (%q): %w", len(records), description, err)
		}
		records = append(records, rec)
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case len(line) == 0:
			continue
		case line[0] == ';':
			continue
		case line[0] == '>':
			if err := flush(); err != nil {
				return nil, err
			}
			description = line[1:]
			lines = nil
			started = true
		default:
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seqio: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return records, nil
}

func newRecord(description, raw string) (Record, error) {
	if raw == "" {
		return Record{}, fmt.Errorf("empty sequence")
	}
	ds, err := alphabet.Digitalise(raw)
	if err != nil {
		return Record{}, err
	}

	sum := blake3.Sum256([]byte(raw))
	return Record{
		Description: description,
		Raw:         raw,
		Sequence:    ds,
		Fingerprint: fmt.Sprintf("%x", sum[:16]),
	}, nil
}

// DuplicateGroups partitions records into groups sharing the same
// fingerprint, returning only groups with more than one member (in file
// order), so a caller can warn about redundant input the way a
// discovery run implicitly treats duplicate sequences as free extra
// support.
func DuplicateGroups(records []Record) [][]int {
	byFingerprint := map[string][]int{}
	var order []string
	for i, r := range records {
		if _, ok := byFingerprint[r.Fingerprint]; !ok {
			order = append(order, r.Fingerprint)
		}
		byFingerprint[r.Fingerprint] = append(byFingerprint[r.Fingerprint], i)
	}

	var groups [][]int
	for _, fp := range order {
		if len(byFingerprint[fp]) > 1 {
			groups = append(groups, byFingerprint[fp])
		}
	}
	return groups
}

// Sequences extracts just the digital strings, in file order, for feeding
// directly into discover.Discover.
func Sequences(records []Record) []*alphabet.DigitalString {
	seqs := make([]*alphabet.DigitalString, len(records))
	for i, r := range records {
		seqs[i] = r.Sequence
	}
	return seqs
}
