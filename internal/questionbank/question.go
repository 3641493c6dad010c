// Package questionbank holds the static quiz content for all seven books and
// the read-only lookups screens use to drive quizzes.
package questionbank

// Difficulty is a coarse question rating. Informational only; it does not
// affect scoring.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Question is one quiz item. Content is immutable once loaded.
type Question struct {
	ID            string     `json:"id"`
	Text          string     `json:"text"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correctAnswer"`
	Explanation   string     `json:"explanation,omitempty"`
	Book          int        `json:"year"`
	Chapter       int        `json:"chapter"`
	Difficulty    Difficulty `json:"difficulty"`
	Category      string     `json:"category"`
}

// ChapterTitle pairs a chapter number with its display title.
type ChapterTitle struct {
	Chapter int
	Title   string
}
