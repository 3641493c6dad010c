package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/owlery/internal/progression"
	"github.com/abhisek/owlery/internal/questionbank"
	"github.com/abhisek/owlery/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	if len(q.questions) == 0 {
		return renderEmpty(width, height)
	}
	if q.phase == phaseSummary {
		return q.renderSummary(width, height)
	}
	return q.renderQuestion(width, height)
}

func renderEmpty(width, height int) string {
	content := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("No questions here yet.\n\npress any key to go back")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + q.contextLabel())

	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if q.remaining <= 5 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  ", q.current+1, len(q.questions))) +
		timerStyle.Render(fmt.Sprintf("⏳ %ds", q.remaining))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(q.choice.View())

	if q.phase == phaseFeedback {
		b.WriteString("\n")
		if q.choice.ChosenIndex < 0 {
			b.WriteString(theme.Incorrect.Render("  Time's up!"))
		} else if q.choice.IsCorrect() {
			b.WriteString(theme.Correct.Render("  Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("  Not quite."))
		}
	}

	return b.String()
}

func (q *QuizScreen) contextLabel() string {
	if q.mode == ModeDaily {
		return "Daily Prophet"
	}
	return fmt.Sprintf("%s — Chapter %d", questionbank.BookTitle(q.book), q.chapter)
}

func (q *QuizScreen) renderSummary(width, height int) string {
	total := len(q.questions)

	grade := progression.Grade(q.correct, total)
	var points int
	if q.mode == ModeDaily {
		points = progression.DailyQuizPoints(float64(q.correct))
	} else {
		points = progression.QuizPoints(float64(q.correct))
	}

	title := theme.Title.Render("Quiz Complete")
	score := theme.Body.Render(fmt.Sprintf("Score: %d / %d", q.correct, total))
	gradeLine := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Grade: %s", grade))
	pointsLine := theme.Body.Render(fmt.Sprintf("⚡ %d points earned", points))

	lines := []string{title, "", score, gradeLine, pointsLine}

	if q.mode == ModeChapter {
		if progression.IsPassing(q.correct, total) {
			lines = append(lines, "", theme.Correct.Render("Chapter passed! The next one awaits."))
		} else {
			lines = append(lines, "", theme.Hint.Render("Score 70% or better to move on."))
		}
	} else {
		u := q.store.User()
		lines = append(lines, "", theme.Body.Render(fmt.Sprintf("🔥 %d day streak", u.Streak)))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
