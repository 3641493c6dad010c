package quiz

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/owlery/internal/config"
	"github.com/abhisek/owlery/internal/leaderboard"
	"github.com/abhisek/owlery/internal/profile"
	"github.com/abhisek/owlery/internal/questionbank"
	"github.com/abhisek/owlery/internal/router"
	"github.com/abhisek/owlery/internal/screen"
	"github.com/abhisek/owlery/internal/ui/components"
	"github.com/abhisek/owlery/internal/ui/layout"
)

// Mode selects the quiz variant.
type Mode int

const (
	// ModeChapter is a full quiz over one chapter, gating progression.
	ModeChapter Mode = iota
	// ModeDaily is the short daily quiz that feeds the streak.
	ModeDaily
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseSummary
)

// QuizScreen runs one quiz from first question to summary.
type QuizScreen struct {
	store *profile.Store
	sim   *leaderboard.Simulator
	mode  Mode

	book    int
	chapter int

	questions []questionbank.Question
	current   int
	choice    components.MultiChoice

	timerSeconds int
	remaining    int

	phase   phase
	correct int
	applied bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// NewChapterQuiz creates a quiz over one book chapter.
func NewChapterQuiz(store *profile.Store, sim *leaderboard.Simulator, cfg config.Config, book, chapter int) *QuizScreen {
	q := &QuizScreen{
		store:        store,
		sim:          sim,
		mode:         ModeChapter,
		book:         book,
		chapter:      chapter,
		questions:    questionbank.ForBookChapter(book, chapter),
		timerSeconds: cfg.Quiz.ChapterTimerSeconds,
	}
	q.setupQuestion()
	return q
}

// NewDailyQuiz creates the short random daily quiz.
func NewDailyQuiz(store *profile.Store, sim *leaderboard.Simulator, cfg config.Config) *QuizScreen {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	q := &QuizScreen{
		store:        store,
		sim:          sim,
		mode:         ModeDaily,
		questions:    questionbank.Random(cfg.Quiz.DailyQuestionCount, rng),
		timerSeconds: cfg.Quiz.DailyTimerSeconds,
	}
	q.setupQuestion()
	return q
}

func (q *QuizScreen) setupQuestion() {
	if q.current >= len(q.questions) {
		return
	}
	question := q.questions[q.current]
	q.choice = components.NewMultiChoice(
		question.Text,
		question.Options,
		question.CorrectAnswer,
		question.Explanation,
	)
	q.remaining = q.timerSeconds
}

func (q *QuizScreen) Init() tea.Cmd {
	if len(q.questions) == 0 {
		return nil
	}
	return q.tickCmd()
}

func (q *QuizScreen) Title() string {
	if q.mode == ModeDaily {
		return "Daily Prophet Quiz"
	}
	return "Chapter Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case phaseSummary:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	default:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
		}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return q.handleTick(msg)
	case feedbackDoneMsg:
		return q.handleFeedbackDone()
	case quizEndMsg:
		return q.handleEnd()
	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	// Ticks scheduled for a question that has already been answered or
	// timed out are stale. The answer won the race.
	if q.phase != phaseQuestion || msg.Question != q.current {
		return q, nil
	}

	q.remaining--
	if q.remaining > 0 {
		return q, q.tickCmd()
	}

	// Time expired: submit "no answer" for this question.
	q.choice.ForceSubmit()
	q.phase = phaseFeedback
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if len(q.questions) == 0 {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch q.phase {
	case phaseQuestion:
		var cmd tea.Cmd
		q.choice, cmd = q.choice.Update(msg)
		if q.choice.Submitted {
			if q.choice.IsCorrect() {
				q.correct++
			}
			q.phase = phaseFeedback
		}
		return q, cmd

	case phaseFeedback:
		return q, func() tea.Msg { return feedbackDoneMsg{} }

	case phaseSummary:
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return q, nil
}

func (q *QuizScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if q.current+1 < len(q.questions) {
		q.current++
		q.phase = phaseQuestion
		q.setupQuestion()
		return q, q.tickCmd()
	}
	return q, func() tea.Msg { return quizEndMsg{} }
}

// handleEnd applies the quiz outcome to the profile exactly once and
// shows the summary.
func (q *QuizScreen) handleEnd() (screen.Screen, tea.Cmd) {
	if !q.applied {
		q.applied = true
		ctx := context.Background()
		if q.mode == ModeDaily {
			q.store.CompleteDailyQuiz(ctx, q.correct)
		} else {
			q.store.CompleteQuiz(ctx, q.book, q.chapter, q.correct, len(q.questions))
		}
		if q.sim != nil {
			q.sim.RivalBoost(ctx, q.store.User().House)
		}
	}
	q.phase = phaseSummary
	return q, nil
}

func (q *QuizScreen) tickCmd() tea.Cmd {
	idx := q.current
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{Question: idx, At: t}
	})
}
