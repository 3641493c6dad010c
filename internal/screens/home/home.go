package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/owlery/internal/config"
	"github.com/abhisek/owlery/internal/leaderboard"
	"github.com/abhisek/owlery/internal/profile"
	"github.com/abhisek/owlery/internal/progression"
	"github.com/abhisek/owlery/internal/questionbank"
	"github.com/abhisek/owlery/internal/router"
	"github.com/abhisek/owlery/internal/screen"
	"github.com/abhisek/owlery/internal/screens/chapters"
	"github.com/abhisek/owlery/internal/screens/profilescreen"
	"github.com/abhisek/owlery/internal/screens/quiz"
	"github.com/abhisek/owlery/internal/screens/standings"
	"github.com/abhisek/owlery/internal/ui/components"
	"github.com/abhisek/owlery/internal/ui/theme"
)

// HomeScreen is the main hall of the application.
type HomeScreen struct {
	store *profile.Store
	menu  components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(store *profile.Store, sim *leaderboard.Simulator, cfg config.Config) *HomeScreen {
	items := []components.MenuItem{
		{Label: "CONTINUE STUDIES", Action: func() tea.Cmd {
			u := store.User()
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quiz.NewChapterQuiz(store, sim, cfg, u.CurrentYear, u.CurrentChapter),
				}
			}
		}},
		{Label: "CHOOSE CHAPTER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chapters.New(store, sim, cfg)}
			}
		}},
		{Label: "DAILY PROPHET QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.NewDailyQuiz(store, sim, cfg)}
			}
		}},
		{Label: "HOUSE STANDINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: standings.New(store, sim)}
			}
		}},
		{Label: "MY PROFILE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profilescreen.New(store)}
			}
		}},
		{Label: "LEAVE THE CASTLE", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		store: store,
		menu:  components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Great Hall"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	u := h.store.User()

	greeting := lipgloss.NewStyle().
		Foreground(u.House.Color()).
		Bold(true).
		Render(fmt.Sprintf("%s  %s of %s", u.House.Emblem(), u.Name, u.House))

	var position string
	if progression.IsFinished(u.CurrentYear) {
		position = theme.Subtitle.Render("All seven years complete!")
	} else {
		book := questionbank.BookTitle(u.CurrentYear)
		position = theme.Subtitle.Render(
			fmt.Sprintf("Year %d, Chapter %d — %s", u.CurrentYear, u.CurrentChapter, book))
	}

	stats := theme.Body.Render(
		fmt.Sprintf("⚡ %d points    🔥 %d day streak", u.TotalPoints, u.Streak))

	card := theme.Card.Render(strings.Join([]string{greeting, position, "", stats}, "\n"))

	content := strings.Join([]string{
		card,
		"",
		h.menu.View(),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
