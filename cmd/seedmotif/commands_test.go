package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const testFasta = `>first hairpin family member
GGGGAAAACCCC
>second hairpin family member
GGGGAAAACCCC
`

func writeTestFasta(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "family.fa")
	if err := os.WriteFile(path, []byte(testFasta), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func captureOutput(f func()) string {
	reader, writer, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	stdout := os.Stdout
	stderr := os.Stderr
	defer func() {
		os.Stdout = stdout
		os.Stderr = stderr
		log.SetOutput(os.Stderr)
	}()
	os.Stdout = writer
	os.Stderr = writer
	log.SetOutput(writer)
	out := make(chan string)
	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		var buf bytes.Buffer
		wg.Done()
		io.Copy(&buf, reader)
		out <- buf.String()
	}()
	wg.Wait()
	f()
	writer.Close()
	return <-out
}

func TestDiscoverCommand(t *testing.T) {
	input := writeTestFasta(t)
	ctDir := filepath.Join(t.TempDir(), "ct")

	args := []string{"seedmotif", "discover",
		"-i", input,
		"--max-mismatch", "0",
		"--no-gu",
		"--min-basepair", "4",
		"--ct-dir", ctDir,
	}

	results := captureOutput(func() { run(args) })

	if !strings.Contains(results, "((((....))))") {
		t.Errorf("discover output missing the hairpin structure:\n%s", results)
	}
	if !strings.Contains(results, "support=1.00") {
		t.Errorf("discover output missing full support:\n%s", results)
	}

	entries, err := os.ReadDir(ctDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Error("no CT files written")
	}
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".ct") {
			t.Errorf("unexpected file %q in the CT directory", e.Name())
		}
	}
}

func TestFastaCheckCommand(t *testing.T) {
	input := writeTestFasta(t)

	args := []string{"seedmotif", "fasta-check", "-i", input}
	results := captureOutput(func() { run(args) })

	if !strings.Contains(results, "2 valid records") {
		t.Errorf("fasta-check output missing the record count:\n%s", results)
	}
	if !strings.Contains(results, "duplicate sequence") {
		t.Errorf("fasta-check output missing the duplicate warning:\n%s", results)
	}
}
