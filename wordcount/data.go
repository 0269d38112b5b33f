package main

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"unicode"
)

// wordCount is the serialized form of one counter cell.
type wordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// readWords will read the whole input file and split it into words. Any run
// of non-alphanumeric characters separates two words.
func readWords(fileName string) ([]string, error) {
	var (
		err           error
		buffer        []byte
		delimiterFunc func(c rune) bool
	)

	if buffer, err = os.ReadFile(fileName); err != nil {
		return nil, err
	}

	delimiterFunc = func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsNumber(c)
	}

	return strings.FieldsFunc(string(buffer), delimiterFunc), nil
}

// writeCounts will store the counts in fileName, one JSON object per line,
// sorted by word so runs over the same input produce the same file.
func writeCounts(fileName string, counts map[string]int) error {
	var (
		err         error
		file        *os.File
		fileEncoder *json.Encoder
		words       []string
	)

	if file, err = os.Create(fileName); err != nil {
		return err
	}
	defer file.Close()

	for word := range counts {
		words = append(words, word)
	}
	sort.Strings(words)

	fileEncoder = json.NewEncoder(file)
	for _, word := range words {
		if err = fileEncoder.Encode(wordCount{Word: word, Count: counts[word]}); err != nil {
			return err
		}
	}

	return nil
}
