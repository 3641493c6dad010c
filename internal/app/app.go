package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/owlery/internal/config"
	"github.com/abhisek/owlery/internal/leaderboard"
	"github.com/abhisek/owlery/internal/profile"
	"github.com/abhisek/owlery/internal/router"
	"github.com/abhisek/owlery/internal/screen"
	"github.com/abhisek/owlery/internal/screens/ceremony"
	"github.com/abhisek/owlery/internal/screens/home"
	"github.com/abhisek/owlery/internal/screens/welcome"
	"github.com/abhisek/owlery/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	store  *profile.Store
	width  int
	height int
}

// newAppModel builds the screen stack. New players go through the sorting
// ceremony first; returning players land in the great hall.
func newAppModel(store *profile.Store, sim *leaderboard.Simulator, cfg config.Config) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(store, sim, cfg)
	}

	var next func() screen.Screen
	if store.State() == profile.HasProfile {
		next = homeFactory
	} else {
		next = func() screen.Screen {
			return ceremony.New(store, homeFactory)
		}
	}

	return AppModel{
		router: router.New(welcome.New(next)),
		store:  store,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	points, streak := 0, 0
	if m.store.State() == profile.HasProfile {
		u := m.store.User()
		points = u.TotalPoints
		streak = u.Streak
	}
	header := layout.RenderHeader(title, points, streak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Options carries the dependencies the TUI runs on.
type Options struct {
	Store     *profile.Store
	Simulator *leaderboard.Simulator
	Config    config.Config
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts.Store, opts.Simulator, opts.Config))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
