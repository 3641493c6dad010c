// Package profilescreen shows the player's record and hosts the reset
// confirmation flow.
package profilescreen

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/owlery/internal/profile"
	"github.com/abhisek/owlery/internal/progression"
	"github.com/abhisek/owlery/internal/questionbank"
	"github.com/abhisek/owlery/internal/router"
	"github.com/abhisek/owlery/internal/screen"
	"github.com/abhisek/owlery/internal/ui/layout"
	"github.com/abhisek/owlery/internal/ui/theme"
)

// ProfileScreen shows the player's record.
type ProfileScreen struct {
	store           *profile.Store
	confirmingReset bool
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen.
func New(store *profile.Store) *ProfileScreen {
	return &ProfileScreen{store: store}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Title() string {
	return "My Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	if p.confirmingReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Erase everything"},
			{Key: "N", Description: "Keep my profile"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Reset profile"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.confirmingReset {
		switch kmsg.String() {
		case "y", "Y":
			p.store.Reset(context.Background())
			return p, tea.Quit
		case "n", "N", "esc":
			p.confirmingReset = false
		}
		return p, nil
	}

	switch kmsg.String() {
	case "r", "R":
		p.confirmingReset = true
	case "q":
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *ProfileScreen) View(width, height int) string {
	if p.confirmingReset {
		return p.viewConfirm(width, height)
	}

	u := p.store.User()

	name := lipgloss.NewStyle().
		Foreground(u.House.Color()).
		Bold(true).
		Render(fmt.Sprintf("%s  %s", u.House.Emblem(), u.Name))
	housing := theme.Subtitle.Render(fmt.Sprintf("%s — %s", u.House, u.House.Trait()))

	var progress string
	if progression.IsFinished(u.CurrentYear) {
		progress = "All seven years complete!"
	} else {
		progress = fmt.Sprintf("Year %d, Chapter %d of %s",
			u.CurrentYear, u.CurrentChapter, questionbank.BookTitle(u.CurrentYear))
	}

	stats := []string{
		fmt.Sprintf("⚡ Points        %d", u.TotalPoints),
		fmt.Sprintf("🔥 Daily streak  %d", u.Streak),
		fmt.Sprintf("📖 Progress      %s", progress),
	}
	if u.LastDailyProphetDate != "" {
		stats = append(stats, fmt.Sprintf("📰 Last daily    %s", u.LastDailyProphetDate))
	}

	card := theme.Card.BorderForeground(u.House.Color()).Render(
		strings.Join(append([]string{name, housing, ""}, stats...), "\n"))

	content := strings.Join([]string{
		card,
		"",
		theme.Hint.Render("press r to reset your profile"),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *ProfileScreen) viewConfirm(width, height int) string {
	warning := theme.Incorrect.Render("Reset your profile?")
	detail := theme.Body.Render("Your house, points, and progress will be erased.\nThe Sorting Hat does not give second chances lightly.")

	card := theme.Card.BorderForeground(theme.Error).Render(
		warning + "\n\n" + detail + "\n\n" + theme.Hint.Render("y to erase, n to keep"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
