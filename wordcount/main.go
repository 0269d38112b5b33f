package main

import (
	"flag"
	"log"

	"github.com/jc0n/ulib/mapreduce"
)

var (
	// Input data settings
	file   = flag.String("file", "files/pg1342.txt", "File to use as input")
	ntasks = flag.Int("ntasks", 4, "Number of parallel tasks folding the input")

	// Output settings
	top = flag.Int("top", 20, "Number of most frequent words to print")
	out = flag.String("out", "", "File to write the full counts to, one JSON object per line")
)

// Code Entry Point
func main() {
	var (
		err    error
		words  []string
		store  *mapreduce.MapStore[string, int]
		counts map[string]int
	)

	flag.Parse()

	if words, err = readWords(*file); err != nil {
		log.Fatal(err)
	}

	log.Println("Counting", len(words), "words over", *ntasks, "tasks.")

	if store, err = mapreduce.Run(words, mapWord, mapreduce.Sum[int], mapreduce.HashString, *ntasks); err != nil {
		log.Fatal(err)
	}

	counts = store.Snapshot()
	log.Println("Distinct words:", len(counts))

	printTop(counts, *top)

	if *out != "" {
		if err = writeCounts(*out, counts); err != nil {
			log.Fatal(err)
		}
		log.Println("Counts written to", *out)
	}
}
