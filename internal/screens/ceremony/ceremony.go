package ceremony

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/owlery/internal/house"
	"github.com/abhisek/owlery/internal/profile"
	"github.com/abhisek/owlery/internal/router"
	"github.com/abhisek/owlery/internal/screen"
	"github.com/abhisek/owlery/internal/sorting"
	"github.com/abhisek/owlery/internal/ui/components"
	"github.com/abhisek/owlery/internal/ui/layout"
	"github.com/abhisek/owlery/internal/ui/theme"
)

type phase int

const (
	phaseName phase = iota
	phaseQuestions
	phaseReveal
)

// CeremonyScreen runs the one-time sorting ceremony: the player enters a
// name, answers the weighted questions, and is revealed their house.
type CeremonyScreen struct {
	store       *profile.Store
	nextFactory func() screen.Screen

	phase     phase
	nameInput components.TextInput
	name      string

	questions []sorting.Question
	current   int
	selected  int
	result    sorting.Result

	assigned house.House
	created  bool
}

var _ screen.Screen = (*CeremonyScreen)(nil)
var _ screen.KeyHintProvider = (*CeremonyScreen)(nil)

// New creates a CeremonyScreen. nextFactory produces the screen shown
// once the profile has been created.
func New(store *profile.Store, nextFactory func() screen.Screen) *CeremonyScreen {
	return &CeremonyScreen{
		store:       store,
		nextFactory: nextFactory,
		nameInput:   components.NewTextInput("Enter your name...", 24),
		questions:   sorting.Questions(),
		result:      sorting.NewResult(),
	}
}

func (c *CeremonyScreen) Title() string {
	return "Sorting Ceremony"
}

func (c *CeremonyScreen) Init() tea.Cmd {
	return c.nameInput.Init()
}

func (c *CeremonyScreen) KeyHints() []layout.KeyHint {
	switch c.phase {
	case phaseName:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	case phaseQuestions:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Begin"}}
	}
}

func (c *CeremonyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch c.phase {
	case phaseName:
		if isKey && kmsg.String() == "enter" {
			name := strings.TrimSpace(c.nameInput.Value())
			if name == "" {
				return c, nil
			}
			c.name = name
			c.phase = phaseQuestions
			return c, nil
		}
		var cmd tea.Cmd
		c.nameInput, cmd = c.nameInput.Update(msg)
		return c, cmd

	case phaseQuestions:
		if !isKey {
			return c, nil
		}
		return c.handleQuestionKey(kmsg)

	case phaseReveal:
		if isKey && kmsg.String() == "enter" {
			return c, c.finish()
		}
	}

	return c, nil
}

func (c *CeremonyScreen) handleQuestionKey(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q := c.questions[c.current]

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.selected > 0 {
			c.selected--
		}
	case "down", "j":
		if c.selected < len(q.Options)-1 {
			c.selected++
		}
	case "1", "2", "3", "4":
		c.selected = int(key[0] - '1')
		return c.answer()
	case "enter":
		return c.answer()
	}
	return c, nil
}

func (c *CeremonyScreen) answer() (screen.Screen, tea.Cmd) {
	q := c.questions[c.current]
	c.result.Add(q.Options[c.selected])

	if c.current+1 < len(c.questions) {
		c.current++
		c.selected = 0
		return c, nil
	}

	c.assigned = c.result.Assign()
	c.phase = phaseReveal
	return c, nil
}

func (c *CeremonyScreen) finish() tea.Cmd {
	if c.created {
		return nil
	}
	c.created = true
	c.store.Create(context.Background(), c.name, c.assigned)
	next := c.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (c *CeremonyScreen) View(width, height int) string {
	switch c.phase {
	case phaseName:
		return c.viewName(width, height)
	case phaseQuestions:
		return c.viewQuestion(width, height)
	default:
		return c.viewReveal(width, height)
	}
}

func (c *CeremonyScreen) viewName(width, height int) string {
	title := theme.Title.Render("Welcome to the Sorting Ceremony")
	prompt := theme.Body.Render("The Sorting Hat would like to know your name.")

	content := strings.Join([]string{
		title,
		"",
		prompt,
		"",
		c.nameInput.View(),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (c *CeremonyScreen) viewQuestion(width, height int) string {
	q := c.questions[c.current]

	counter := theme.Subtitle.Render(
		fmt.Sprintf("Question %d of %d", c.current+1, len(c.questions)))
	question := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text)

	var options []string
	for i, opt := range q.Options {
		line := fmt.Sprintf("  %d)  %s", i+1, opt.Text)
		if i == c.selected {
			line = fmt.Sprintf("▸ %d)  %s", i+1, opt.Text)
			options = append(options, theme.Selected.Render(line))
		} else {
			options = append(options, theme.Unselected.Render(line))
		}
	}

	content := strings.Join([]string{
		counter,
		"",
		question,
		"",
		strings.Join(options, "\n"),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (c *CeremonyScreen) viewReveal(width, height int) string {
	h := c.assigned

	announce := theme.Subtitle.Render("The Sorting Hat has decided...")
	banner := lipgloss.NewStyle().
		Foreground(h.Color()).
		Bold(true).
		Render(fmt.Sprintf("%s  %s  %s", h.Emblem(), strings.ToUpper(string(h)), h.Emblem()))
	trait := theme.Hint.Render(h.Trait())
	welcome := theme.Body.Render(fmt.Sprintf("Welcome to %s, %s!", h, c.name))

	card := theme.Card.
		BorderForeground(h.Color()).
		Render(strings.Join([]string{banner, "", trait}, "\n"))

	content := strings.Join([]string{
		announce,
		"",
		card,
		"",
		welcome,
		"",
		theme.Hint.Render("press enter to begin your first year"),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
