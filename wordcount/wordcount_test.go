package main

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/jc0n/ulib/mapreduce"
)

func TestMapWordLowercases(t *testing.T) {
	if key, val := mapWord("The"); key != "the" || val != 1 {
		t.Errorf(`mapWord("The") = (%q, %v), want ("the", 1)`, key, val)
	}
}

func TestReadWordsSplitsOnNonAlphanumerics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("It was the\nbest-of times, 42 times!"), 0644); err != nil {
		t.Fatal(err)
	}

	words, err := readWords(path)
	if err != nil {
		t.Fatalf("readWords() = %v, want nil", err)
	}
	want := []string{"It", "was", "the", "best", "of", "times", "42", "times"}
	if !slices.Equal(words, want) {
		t.Errorf("readWords() = %v, want %v", words, want)
	}
}

func TestReadWordsMissingFile(t *testing.T) {
	if _, err := readWords(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("readWords on a missing file returned no error")
	}
}

func TestTopWords(t *testing.T) {
	counts := map[string]int{"pride": 4, "prejudice": 4, "bennet": 9, "darcy": 2}

	got := topWords(counts, 3)
	want := []wordCount{
		{Word: "bennet", Count: 9},
		{Word: "prejudice", Count: 4},
		{Word: "pride", Count: 4},
	}
	if !slices.Equal(got, want) {
		t.Errorf("topWords() = %v, want %v", got, want)
	}

	if all := topWords(counts, 10); len(all) != len(counts) {
		t.Errorf("topWords(10) returned %v entries, want %v", len(all), len(counts))
	}
	if none := topWords(counts, 0); len(none) != 0 {
		t.Errorf("topWords(0) returned %v entries, want none", len(none))
	}
}

func TestCountsEndToEnd(t *testing.T) {
	words := []string{"The", "quick", "fox", "the", "lazy", "fox", "THE"}

	store, err := mapreduce.Run(words, mapWord, mapreduce.Sum[int], mapreduce.HashString, 3)
	if err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}

	want := map[string]int{"the": 3, "quick": 1, "fox": 2, "lazy": 1}
	if got := store.Snapshot(); !maps.Equal(got, want) {
		t.Errorf("counts = %v, want %v", got, want)
	}
}

func TestWriteCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.json")
	if err := writeCounts(path, map[string]int{"b": 2, "a": 1}); err != nil {
		t.Fatalf("writeCounts() = %v, want nil", err)
	}

	buffer, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\"word\":\"a\",\"count\":1}\n{\"word\":\"b\",\"count\":2}\n"
	if string(buffer) != want {
		t.Errorf("writeCounts wrote %q, want %q", buffer, want)
	}
}
