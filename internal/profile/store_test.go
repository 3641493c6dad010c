package profile

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/owlery/internal/house"
	"github.com/abhisek/owlery/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	return NewStore(kv), kv
}

func TestLoadNoProfile(t *testing.T) {
	s, _ := newTestStore(t)
	if got := s.Load(context.Background()); got != NoProfile {
		t.Errorf("Load on empty storage = %v, want NoProfile", got)
	}
}

func TestLoadMalformedProfile(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	if err := kv.Set(ctx, storage.KeyUserData, "{not json"); err != nil {
		t.Fatal(err)
	}
	if got := s.Load(ctx); got != NoProfile {
		t.Errorf("Load with malformed blob = %v, want NoProfile", got)
	}
}

func TestCreateAndReload(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	u := s.Create(ctx, "Hermione", house.Ravenclaw)
	if u.ID == "" {
		t.Error("Create left ID empty")
	}
	if u.CurrentYear != 1 || u.CurrentChapter != 1 || u.TotalPoints != 0 {
		t.Errorf("fresh profile = year %d chapter %d points %d, want 1/1/0",
			u.CurrentYear, u.CurrentChapter, u.TotalPoints)
	}
	if v, _, _ := kv.Get(ctx, storage.KeyIsFirstTime); v != "false" {
		t.Errorf("isFirstTime = %q, want %q", v, "false")
	}

	// A second store sees the same record.
	s2 := NewStore(kv)
	if got := s2.Load(ctx); got != HasProfile {
		t.Fatalf("reload state = %v, want HasProfile", got)
	}
	if !reflect.DeepEqual(s2.User(), u) {
		t.Errorf("reloaded user = %+v, want %+v", s2.User(), u)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	s.Create(ctx, "Neville", house.Gryffindor)
	s.CompleteQuiz(ctx, 1, 1, 9, 10)
	s.UpdateStreak(ctx, 3)
	want := s.User()

	raw, ok, err := kv.Get(ctx, storage.KeyUserData)
	if err != nil || !ok {
		t.Fatalf("Get userData: ok=%v err=%v", ok, err)
	}
	var got User
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("unmarshal persisted profile: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("persisted user = %+v, want %+v", got, want)
	}
}

func TestAddPointsZeroIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Create(ctx, "Luna", house.Ravenclaw)
	s.AddPoints(ctx, 50)
	s.AddPoints(ctx, 0)
	if got := s.User().TotalPoints; got != 50 {
		t.Errorf("TotalPoints = %d, want 50", got)
	}
}

func TestCompleteQuizScenario(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Create(ctx, "Harry", house.Gryffindor)

	// Chapter 1 passed with 8/10.
	s.CompleteQuiz(ctx, 1, 1, 8, 10)
	if u := s.User(); u.TotalPoints != 80 || u.CurrentChapter != 2 {
		t.Fatalf("after 8/10: points %d chapter %d, want 80/2", u.TotalPoints, u.CurrentChapter)
	}

	// Chapter 2 failed with 6/10: points accrue, no advance.
	s.CompleteQuiz(ctx, 1, 2, 6, 10)
	if u := s.User(); u.TotalPoints != 140 || u.CurrentChapter != 2 {
		t.Fatalf("after 6/10: points %d chapter %d, want 140/2", u.TotalPoints, u.CurrentChapter)
	}

	// Chapter 2 passed with 7/10, exactly at the threshold.
	s.CompleteQuiz(ctx, 1, 2, 7, 10)
	if u := s.User(); u.TotalPoints != 210 || u.CurrentChapter != 3 {
		t.Fatalf("after 7/10: points %d chapter %d, want 210/3", u.TotalPoints, u.CurrentChapter)
	}
	if s.User().CurrentYear != 1 {
		t.Errorf("CurrentYear = %d, want 1", s.User().CurrentYear)
	}
}

func TestCompleteQuizBookRollover(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Create(ctx, "Ginny", house.Gryffindor)
	s.AdvanceProgress(ctx, 1, 8)
	s.CompleteQuiz(ctx, 1, 8, 10, 10)
	if u := s.User(); u.CurrentYear != 2 || u.CurrentChapter != 1 {
		t.Errorf("after chapter 8 pass: year %d chapter %d, want 2/1", u.CurrentYear, u.CurrentChapter)
	}
}

func TestCompleteDailyQuiz(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	day1 := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	s.SetClock(func() time.Time { return day1 })
	s.Create(ctx, "Cho", house.Ravenclaw)

	s.CompleteDailyQuiz(ctx, 4)
	if u := s.User(); u.TotalPoints != 60 || u.Streak != 1 {
		t.Fatalf("day one: points %d streak %d, want 60/1", u.TotalPoints, u.Streak)
	}
	if got := s.User().LastDailyProphetDate; got != "2024-06-10" {
		t.Errorf("LastDailyProphetDate = %q, want 2024-06-10", got)
	}

	// Same day again: points accrue, streak unchanged.
	s.CompleteDailyQuiz(ctx, 5)
	if u := s.User(); u.TotalPoints != 135 || u.Streak != 1 {
		t.Fatalf("same day: points %d streak %d, want 135/1", u.TotalPoints, u.Streak)
	}

	// Next day extends.
	s.SetClock(func() time.Time { return day1.AddDate(0, 0, 1) })
	s.CompleteDailyQuiz(ctx, 3)
	if u := s.User(); u.Streak != 2 {
		t.Errorf("next day streak = %d, want 2", u.Streak)
	}

	// A skipped day resets.
	s.SetClock(func() time.Time { return day1.AddDate(0, 0, 4) })
	s.CompleteDailyQuiz(ctx, 3)
	if u := s.User(); u.Streak != 1 {
		t.Errorf("after gap streak = %d, want 1", u.Streak)
	}
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	s.Create(ctx, "Ron", house.Gryffindor)
	kv.FailWrites = true
	s.AddPoints(ctx, 40)

	// In-memory state advances even though the write failed.
	if got := s.User().TotalPoints; got != 40 {
		t.Errorf("in-memory TotalPoints = %d, want 40", got)
	}

	kv.FailWrites = false
	s2 := NewStore(kv)
	s2.Load(ctx)
	if got := s2.User().TotalPoints; got != 0 {
		t.Errorf("persisted TotalPoints = %d, want 0 (write was dropped)", got)
	}
}

func TestReset(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	s.Create(ctx, "Draco", house.Slytherin)
	s.Reset(ctx)

	if s.State() != NoProfile {
		t.Errorf("state after Reset = %v, want NoProfile", s.State())
	}
	if _, ok, _ := kv.Get(ctx, storage.KeyUserData); ok {
		t.Error("userData survived Reset")
	}
	if _, ok, _ := kv.Get(ctx, storage.KeyIsFirstTime); ok {
		t.Error("isFirstTime survived Reset")
	}
}

func TestSubscribe(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Create(ctx, "Padma", house.Ravenclaw)

	var seen []int
	s.Subscribe(func(u User) { seen = append(seen, u.TotalPoints) })

	s.AddPoints(ctx, 10)
	s.AddPoints(ctx, 20)

	if len(seen) != 2 || seen[0] != 10 || seen[1] != 30 {
		t.Errorf("listener saw %v, want [10 30]", seen)
	}
}
