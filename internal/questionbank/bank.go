package questionbank

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"sync"
)

//go:embed data/*.json
var dataFS embed.FS

var (
	loadOnce sync.Once
	loaded   []Question
	loadErr  error
)

// load parses and validates every embedded data file exactly once.
func load() {
	schema, err := compiledSchema()
	if err != nil {
		loadErr = fmt.Errorf("compile question schema: %w", err)
		return
	}

	entries, err := dataFS.ReadDir("data")
	if err != nil {
		loadErr = fmt.Errorf("read embedded data: %w", err)
		return
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names) // book1.json .. book7.json, stable ID order

	var all []Question
	seen := make(map[string]bool)
	for _, name := range names {
		raw, err := dataFS.ReadFile("data/" + name)
		if err != nil {
			loadErr = fmt.Errorf("read %s: %w", name, err)
			return
		}
		if err := validateFile(name, raw, schema); err != nil {
			loadErr = err
			return
		}
		var qs []Question
		if err := json.Unmarshal(raw, &qs); err != nil {
			loadErr = fmt.Errorf("%s: %w", name, err)
			return
		}
		for _, q := range qs {
			if seen[q.ID] {
				loadErr = fmt.Errorf("%s: duplicate question ID %q", name, q.ID)
				return
			}
			seen[q.ID] = true
		}
		all = append(all, qs...)
	}
	loaded = all
}

// Validate forces the content load and reports any data error.
func Validate() error {
	loadOnce.Do(load)
	return loadErr
}

// All returns every question across all books. On a data error it returns an
// empty slice; callers render placeholders rather than crash.
func All() []Question {
	loadOnce.Do(load)
	return loaded
}

// ForBookChapter returns the questions for one chapter of one book. An empty
// result is valid: not every chapter has authored questions.
func ForBookChapter(book, chapter int) []Question {
	var out []Question
	for _, q := range All() {
		if q.Book == book && q.Chapter == chapter {
			out = append(out, q)
		}
	}
	return out
}

// ForBook returns every question in one book.
func ForBook(book int) []Question {
	var out []Question
	for _, q := range All() {
		if q.Book == book {
			out = append(out, q)
		}
	}
	return out
}

// AvailableBooks lists the books a player at (currentBook, currentChapter)
// may open: everything up to the current book, plus the next one once the
// current book's eighth chapter is reached. Book 8 is never offered.
func AvailableBooks(currentBook, currentChapter int) []int {
	var books []int
	for b := 1; b <= currentBook && b <= 7; b++ {
		books = append(books, b)
	}
	if currentChapter >= 8 && currentBook < 7 {
		books = append(books, currentBook+1)
	}
	return books
}

// Random returns count questions drawn without replacement across all books,
// shuffled by rng. Fewer are returned if the bank is smaller than count.
func Random(count int, rng *rand.Rand) []Question {
	all := All()
	shuffled := make([]Question, len(all))
	copy(shuffled, all)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
