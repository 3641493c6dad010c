package ceremony

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/owlery/internal/house"
	"github.com/abhisek/owlery/internal/profile"
	"github.com/abhisek/owlery/internal/router"
	"github.com/abhisek/owlery/internal/screen"
	"github.com/abhisek/owlery/internal/storage"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestCeremony() (*CeremonyScreen, *profile.Store) {
	store := profile.NewStore(storage.NewMemory())
	return New(store, func() screen.Screen { return &stubScreen{} }), store
}

func typeName(c *CeremonyScreen, name string) {
	for _, r := range name {
		c.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func pressKey(c *CeremonyScreen, key rune) tea.Cmd {
	_, cmd := c.Update(tea.KeyPressMsg{Code: key, Text: string(key)})
	return cmd
}

func pressEnter(c *CeremonyScreen) tea.Cmd {
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

// answerMaxGryffindor answers every question with the option carrying the
// highest Gryffindor weight.
func answerMaxGryffindor(c *CeremonyScreen) {
	for c.phase == phaseQuestions {
		q := c.questions[c.current]
		best, bestWeight := 0, -1
		for i, opt := range q.Options {
			if w := opt.Weights[house.Gryffindor]; w > bestWeight {
				best, bestWeight = i, w
			}
		}
		pressKey(c, rune('1'+best))
	}
}

func TestEmptyNameRejected(t *testing.T) {
	c, _ := newTestCeremony()

	pressEnter(c)
	if c.phase != phaseName {
		t.Error("empty name should not advance past name entry")
	}
}

func TestFullCeremonyFlow(t *testing.T) {
	c, store := newTestCeremony()

	typeName(c, "Harry")
	pressEnter(c)
	if c.phase != phaseQuestions {
		t.Fatalf("expected question phase, got %v", c.phase)
	}

	answerMaxGryffindor(c)
	if c.phase != phaseReveal {
		t.Fatalf("expected reveal phase after all answers, got %v", c.phase)
	}
	if c.assigned != house.Gryffindor {
		t.Errorf("assigned house = %s, want Gryffindor", c.assigned)
	}

	cmd := pressEnter(c)
	if cmd == nil {
		t.Fatal("reveal confirmation should produce a command")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}

	if store.State() != profile.HasProfile {
		t.Error("profile should exist after ceremony")
	}
	u := store.User()
	if u.Name != "Harry" || u.House != house.Gryffindor {
		t.Errorf("user = %s of %s, want Harry of Gryffindor", u.Name, u.House)
	}
	if u.CurrentYear != 1 || u.CurrentChapter != 1 || u.TotalPoints != 0 {
		t.Errorf("fresh user progress = %d/%d/%d, want 1/1/0",
			u.CurrentYear, u.CurrentChapter, u.TotalPoints)
	}
}

func TestFinishOnlyOnce(t *testing.T) {
	c, _ := newTestCeremony()

	typeName(c, "Ron")
	pressEnter(c)
	answerMaxGryffindor(c)

	if cmd := pressEnter(c); cmd == nil {
		t.Fatal("first confirmation should produce a command")
	}
	if cmd := pressEnter(c); cmd != nil {
		t.Error("second confirmation should be a no-op")
	}
}

func TestQuestionNavigation(t *testing.T) {
	c, _ := newTestCeremony()

	typeName(c, "Luna")
	pressEnter(c)

	pressKey(c, 'j')
	pressKey(c, 'j')
	if c.selected != 2 {
		t.Errorf("selected = %d after two downs, want 2", c.selected)
	}
	pressKey(c, 'k')
	if c.selected != 1 {
		t.Errorf("selected = %d after up, want 1", c.selected)
	}

	pressEnter(c)
	if c.current != 1 {
		t.Errorf("current question = %d after answer, want 1", c.current)
	}
	if c.selected != 0 {
		t.Errorf("selection should reset between questions, got %d", c.selected)
	}
}
