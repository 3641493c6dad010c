// Package sorting implements the one-time ceremony that assigns a player's
// house from a short weighted questionnaire.
package sorting

import "github.com/abhisek/owlery/internal/house"

// Option is one ceremony answer with its per-house weight contribution.
type Option struct {
	Text    string
	Weights map[house.House]int
}

// Question is a single ceremony question with exactly four options.
type Question struct {
	ID      string
	Text    string
	Options [4]Option
}

// Result is the running per-house tally across ceremony answers.
type Result map[house.House]int

// NewResult returns an all-zero tally.
func NewResult() Result {
	r := make(Result, 4)
	for _, h := range house.All() {
		r[h] = 0
	}
	return r
}

// Tally sums the chosen option's weights across all answered questions.
// answerIdx holds one chosen option index per question; out-of-range or
// missing answers contribute nothing.
func Tally(questions []Question, answerIdx []int) Result {
	r := NewResult()
	for i, q := range questions {
		if i >= len(answerIdx) {
			break
		}
		idx := answerIdx[i]
		if idx < 0 || idx >= len(q.Options) {
			continue
		}
		for h, w := range q.Options[idx].Weights {
			r[h] += w
		}
	}
	return r
}

// Add accumulates one chosen option into the tally.
func (r Result) Add(opt Option) {
	for h, w := range opt.Weights {
		r[h] += w
	}
}

// Assign picks the house with the highest tally. Ties resolve to whichever
// house comes first in house.All() order; the comparison keeps the incumbent
// unless a later house is strictly greater. The assignment is one-shot: once
// written to the profile it is never recomputed.
func (r Result) Assign() house.House {
	houses := house.All()
	best := houses[0]
	for _, h := range houses[1:] {
		if r[h] > r[best] {
			best = h
		}
	}
	return best
}
