package chapters

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
	"github.com/abhisek/owlery/internal/screens/quiz"
	"github.com/abhisek/owlery/internal/ui/layout"
	"github.com/abhisek/owlery/internal/ui/theme"
)

type level int

const (
	levelBooks level = iota
	levelChapters
)

// ChaptersScreen lets the player pick any unlocked book and chapter.
type ChaptersScreen struct {
	store *profile.Store
	sim   *leaderboard.Simulator
	cfg   config.Config

	level    level
	books    []int
	bookIdx  int
	book     int
	chapters []questionbank.ChapterTitle
	chIdx    int
}

var _ screen.Screen = (*ChaptersScreen)(nil)
var _ screen.KeyHintProvider = (*ChaptersScreen)(nil)

// New creates a ChaptersScreen rooted at the book list.
func New(store *profile.Store, sim *leaderboard.Simulator, cfg config.Config) *ChaptersScreen {
	u := store.User()
	return &ChaptersScreen{
		store: store,
		sim:   sim,
		cfg:   cfg,
		books: questionbank.AvailableBooks(u.CurrentYear, u.CurrentChapter),
	}
}

func (c *ChaptersScreen) Init() tea.Cmd {
	return nil
}

func (c *ChaptersScreen) Title() string {
	if c.level == levelChapters {
		return questionbank.BookTitle(c.book)
	}
	return "Choose a Book"
}

func (c *ChaptersScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if c.level == levelChapters {
		hints = append(hints, layout.KeyHint{Key: "Backspace", Description: "Books"})
	}
	return hints
}

func (c *ChaptersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	if c.level == levelBooks {
		return c.updateBooks(kmsg)
	}
	return c.updateChapters(kmsg)
}

func (c *ChaptersScreen) updateBooks(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "up", "k":
		if c.bookIdx > 0 {
			c.bookIdx--
		}
	case "down", "j":
		if c.bookIdx < len(c.books)-1 {
			c.bookIdx++
		}
	case "enter":
		if len(c.books) == 0 {
			return c, nil
		}
		c.book = c.books[c.bookIdx]
		c.chapters = questionbank.ChapterTitles(c.book)
		c.chIdx = 0
		c.level = levelChapters
	}
	return c, nil
}

func (c *ChaptersScreen) updateChapters(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "up", "k":
		if c.chIdx > 0 {
			c.chIdx--
		}
	case "down", "j":
		if c.chIdx < len(c.chapters)-1 {
			c.chIdx++
		}
	case "backspace":
		c.level = levelBooks
	case "enter":
		ch := c.chapters[c.chIdx].Chapter
		if !c.unlocked(ch) {
			return c, nil
		}
		store, sim, cfg := c.store, c.sim, c.cfg
		book := c.book
		return c, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: quiz.NewChapterQuiz(store, sim, cfg, book, ch),
			}
		}
	}
	return c, nil
}

func (c *ChaptersScreen) unlocked(chapter int) bool {
	u := c.store.User()
	return progression.IsChapterUnlocked(u.CurrentYear, u.CurrentChapter, c.book, chapter)
}

func (c *ChaptersScreen) View(width, height int) string {
	if c.level == levelBooks {
		return c.viewBooks(width, height)
	}
	return c.viewChapters(width, height)
}

func (c *ChaptersScreen) viewBooks(width, height int) string {
	title := theme.Title.Render("📚 The Library")

	var lines []string
	lines = append(lines, title, "")
	for i, b := range c.books {
		label := fmt.Sprintf("Year %d — %s", b, questionbank.BookTitle(b))
		if i == c.bookIdx {
			lines = append(lines, theme.Selected.Render("  ▸ "+label))
		} else {
			lines = append(lines, theme.Unselected.Render("    "+label))
		}
	}

	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (c *ChaptersScreen) viewChapters(width, height int) string {
	title := theme.Title.Render(questionbank.BookTitle(c.book))

	var lines []string
	lines = append(lines, title, "")
	for i, ct := range c.chapters {
		label := fmt.Sprintf("Chapter %-2d  %s", ct.Chapter, ct.Title)
		switch {
		case !c.unlocked(ct.Chapter):
			lines = append(lines, theme.Locked.Render("  🔒 "+label))
		case i == c.chIdx:
			lines = append(lines, theme.Selected.Render("  ▸  "+label))
		default:
			lines = append(lines, theme.Unselected.Render("     "+label))
		}
	}

	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
