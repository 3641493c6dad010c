package standings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/owlery/internal/leaderboard"
	"github.com/abhisek/owlery/internal/profile"
	"github.com/abhisek/owlery/internal/screen"
	"github.com/abhisek/owlery/internal/ui/components"
	"github.com/abhisek/owlery/internal/ui/theme"
)

// StandingsScreen shows the four-house points race.
type StandingsScreen struct {
	store *profile.Store
	sim   *leaderboard.Simulator
	rows  []leaderboard.Standing
}

var _ screen.Screen = (*StandingsScreen)(nil)

// New creates a StandingsScreen.
func New(store *profile.Store, sim *leaderboard.Simulator) *StandingsScreen {
	return &StandingsScreen{store: store, sim: sim}
}

func (s *StandingsScreen) Init() tea.Cmd {
	u := s.store.User()
	s.rows = s.sim.Standings(context.Background(), u.House, u.TotalPoints)
	return nil
}

func (s *StandingsScreen) Title() string {
	return "House Standings"
}

func (s *StandingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StandingsScreen) View(width, height int) string {
	title := theme.Title.Render("🏆 The House Cup")

	barWidth := width / 2
	if barWidth > 48 {
		barWidth = 48
	}

	var lines []string
	lines = append(lines, title, "")

	medals := []string{"🥇", "🥈", "🥉", "  "}
	for i, row := range s.rows {
		name := string(row.House)
		if row.IsUser {
			name += " (you)"
		}
		label := lipgloss.NewStyle().
			Foreground(row.House.Color()).
			Bold(row.IsUser).
			Render(fmt.Sprintf("%s %s %-22s %6d", medals[i], row.House.Emblem(), name, row.Points))

		bar := components.NewProgressBar("", row.Percent, true, barWidth)
		bar.FillColor = row.House.Color()

		lines = append(lines, label, bar.View(), "")
	}

	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
