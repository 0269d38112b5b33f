package main

import (
	"fmt"
	"sort"
	"strings"
)

// mapWord is called for each word read from the input file. Case is folded
// so "The" and "the" count as the same word; each occurrence weighs 1.
func mapWord(word string) (string, int) {
	return strings.ToLower(word), 1
}

// topWords will return the n most frequent words, most frequent first.
// Ties are broken alphabetically so the ranking is stable.
func topWords(counts map[string]int, n int) []wordCount {
	var ranked []wordCount

	for word, count := range counts {
		ranked = append(ranked, wordCount{Word: word, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if n < 0 {
		n = 0
	}
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// printTop will print the n most frequent words, one per line.
func printTop(counts map[string]int, n int) {
	for _, wc := range topWords(counts, n) {
		fmt.Printf("%7v %v\n", wc.Count, wc.Word)
	}
}
