package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/owlery/internal/house"
	"github.com/abhisek/owlery/internal/progression"
	"github.com/abhisek/owlery/internal/storage"
)

// State is the load lifecycle of the profile store.
type State int

const (
	Uninitialized State = iota
	Loading
	NoProfile
	HasProfile
)

// Listener is notified after every committed user mutation.
type Listener func(User)

// Store owns the single User record. All mutations go through its named
// transitions; persistence failures are logged and swallowed so the
// in-memory state always proceeds.
type Store struct {
	kv    storage.KV
	state State
	user  User

	now       func() time.Time
	listeners []Listener
}

// NewStore creates a Store in the Uninitialized state.
func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// State reports the current lifecycle state.
func (s *Store) State() State {
	return s.state
}

// User returns a copy of the current user record. Only meaningful in
// HasProfile.
func (s *Store) User() User {
	return s.user
}

// Subscribe registers a listener called after each committed mutation.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// Load reads the persisted profile and settles into NoProfile or
// HasProfile. Malformed or unreadable data is treated as no profile.
func (s *Store) Load(ctx context.Context) State {
	s.state = Loading
	raw, ok, err := s.kv.Get(ctx, storage.KeyUserData)
	if err != nil {
		fmt.Fprintln(os.Stderr, "owlery: load profile:", err)
	}
	if err != nil || !ok {
		s.state = NoProfile
		return s.state
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.ID == "" {
		s.state = NoProfile
		return s.state
	}
	s.user = u
	s.state = HasProfile
	return s.state
}

// Create builds a fresh first-year profile for the sorted player and
// persists it, marking onboarding as complete.
func (s *Store) Create(ctx context.Context, name string, h house.House) User {
	s.user = User{
		ID:                 uuid.NewString(),
		Name:               name,
		House:              h,
		CurrentYear:        1,
		CurrentChapter:     1,
		TotalPoints:        0,
		Badges:             []Badge{},
		ChocolateFrogCards: []ChocolateFrogCard{},
		Streak:             0,
	}
	s.state = HasProfile
	s.persist(ctx)
	if err := s.kv.Set(ctx, storage.KeyIsFirstTime, "false"); err != nil {
		fmt.Fprintln(os.Stderr, "owlery: save first-time flag:", err)
	}
	return s.user
}

// AddPoints adds n to the player's total and persists the record.
func (s *Store) AddPoints(ctx context.Context, n int) {
	s.user.TotalPoints += n
	s.persist(ctx)
	s.notify()
}

// AdvanceProgress overwrites the player's position and persists the record.
func (s *Store) AdvanceProgress(ctx context.Context, year, chapter int) {
	s.user.CurrentYear = year
	s.user.CurrentChapter = chapter
	s.persist(ctx)
	s.notify()
}

// CompleteQuiz applies the outcome of a chapter quiz as one logical unit:
// points are always awarded, and progress advances past the quizzed
// chapter only on a pass. Both sub-steps commit in a single persist.
func (s *Store) CompleteQuiz(ctx context.Context, year, chapter, score, total int) {
	s.user.TotalPoints += progression.QuizPoints(float64(score))
	if progression.IsPassing(score, total) {
		s.user.CurrentYear, s.user.CurrentChapter = progression.Next(year, chapter)
	}
	s.persist(ctx)
	s.notify()
}

// CompleteDailyQuiz awards daily points, advances the streak per the
// calendar rules, and records today as the last completion date.
func (s *Store) CompleteDailyQuiz(ctx context.Context, score int) {
	now := s.now()
	s.user.TotalPoints += progression.DailyQuizPoints(float64(score))
	s.user.Streak = NextStreak(s.user.Streak, s.user.LastDailyProphetDate, now)
	s.user.LastDailyProphetDate = Today(now)
	s.persist(ctx)
	s.notify()
}

// UpdateStreak sets the streak to a caller-computed value.
func (s *Store) UpdateStreak(ctx context.Context, n int) {
	s.user.Streak = n
	s.persist(ctx)
	s.notify()
}

// Reset clears the persisted profile and onboarding flag, returning the
// store to NoProfile.
func (s *Store) Reset(ctx context.Context) {
	if err := s.kv.RemoveMany(ctx, []string{storage.KeyUserData, storage.KeyIsFirstTime}); err != nil {
		fmt.Fprintln(os.Stderr, "owlery: reset profile:", err)
	}
	s.user = User{}
	s.state = NoProfile
}

// SetClock overrides the store's time source. Used in tests.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.user)
	if err != nil {
		fmt.Fprintln(os.Stderr, "owlery: encode profile:", err)
		return
	}
	if err := s.kv.Set(ctx, storage.KeyUserData, string(raw)); err != nil {
		fmt.Fprintln(os.Stderr, "owlery: save profile:", err)
	}
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn(s.user)
	}
}
