package seqio

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const testFasta = `>seq one
GGGGAAAACCCC
; a comment line
>seq two
gggg
aaaa
cccc

>seq three
GGGGAAAACCCC
`

func TestParse(t *testing.T) {
	records, err := Parse(strings.NewReader(testFasta))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	if records[0].Description != "seq one" {
		t.Errorf("Description = %q, want %q", records[0].Description, "seq one")
	}

	// Multi-line lowercase input folds to one uppercase sequence.
	if records[1].Raw != records[0].Raw {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(records[0].Raw, records[1].Raw, false)
		t.Errorf("records 0 and 1 should carry identical sequences")
		fmt.Println(dmp.DiffPrettyText(diffs))
	}

	for i, r := range records {
		if r.Sequence == nil || r.Sequence.Decode() != r.Raw {
			t.Errorf("record %d: digitalised sequence does not decode back to its raw text", i)
		}
	}
}

func TestParseRejectsInvalidCharacter(t *testing.T) {
	_, err := Parse(strings.NewReader(">bad\nGGGGXAAAA\n"))
	if err == nil {
		t.Fatal("expected an error for a non-IUPAC character")
	}
}

func TestParseRejectsEmptySequence(t *testing.T) {
	_, err := Parse(strings.NewReader(">empty\n>next\nGGGG\n"))
	if err == nil {
		t.Fatal("expected an error for an empty record")
	}
}

func TestDuplicateGroups(t *testing.T) {
	records, err := Parse(strings.NewReader(testFasta))
	if err != nil {
		t.Fatal(err)
	}

	groups := DuplicateGroups(records)
	if len(groups) != 1 {
		t.Fatalf("got %d duplicate groups, want 1", len(groups))
	}
	if len(groups[0]) != 3 || groups[0][0] != 0 || groups[0][1] != 1 || groups[0][2] != 2 {
		t.Errorf("group = %v, want [0 1 2]", groups[0])
	}
}

func TestSequences(t *testing.T) {
	records, err := Parse(strings.NewReader(testFasta))
	if err != nil {
		t.Fatal(err)
	}
	seqs := Sequences(records)
	if len(seqs) != len(records) {
		t.Fatalf("got %d sequences, want %d", len(seqs), len(records))
	}
	for i := range seqs {
		if seqs[i] != records[i].Sequence {
			t.Errorf("sequence %d is not the record's digital string", i)
		}
	}
}
