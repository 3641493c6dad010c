package quiz

import "time"

// timerTickMsg is sent every second to drive the per-question countdown.
// It carries the index of the question it was scheduled for so ticks from
// an already-answered question are discarded.
type timerTickMsg struct {
	Question int
	At       time.Time
}

// feedbackDoneMsg is sent when the answer feedback is dismissed.
type feedbackDoneMsg struct{}

// quizEndMsg is sent to trigger scoring and the summary view.
type quizEndMsg struct{}
