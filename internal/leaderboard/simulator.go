package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/abhisek/owlery/internal/house"
	"github.com/abhisek/owlery/internal/storage"
)

// growthRates are the fixed daily point gains of the non-user houses.
// Asymmetric so the synthetic ranking stays stable but non-uniform.
var growthRates = map[house.House]int{
	house.Gryffindor: 28,
	house.Slytherin:  26,
	house.Ravenclaw:  24,
	house.Hufflepuff: 22,
}

// fallbackPoints is used for every competitor when the persisted record
// is unreadable.
const fallbackPoints = 800

const msPerDay = 24 * 60 * 60 * 1000

// Standing is one house's row on the standings screen.
type Standing struct {
	House   house.House
	Points  int
	Rank    int
	Percent float64
	IsUser  bool
}

// competitorState is the persisted record for one non-user house.
type competitorState struct {
	Points     int   `json:"points"`
	LastUpdate int64 `json:"lastUpdate"`
}

// Simulator derives believable standings for the three non-user houses
// without a real backend. Competitor points only ever grow.
type Simulator struct {
	kv    storage.KV
	clock Clock
	rng   *rand.Rand
}

// NewSimulator creates a Simulator with the given sources. Pass a fixed
// clock and seeded rng in tests; a nil rng gets a time-seeded one.
func NewSimulator(kv storage.KV, clock Clock, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{kv: kv, clock: clock, rng: rng}
}

// Standings computes the current four-house table. The user's house always
// shows userPoints directly; the other three grow from their persisted
// state. The updated competitor state is persisted before returning.
func (s *Simulator) Standings(ctx context.Context, userHouse house.House, userPoints int) []Standing {
	now := s.clock.Now()
	states := s.loadCompetitors(ctx, userHouse, userPoints, now)

	for h, st := range states {
		states[h] = s.grow(h, st, now)
	}
	s.saveCompetitors(ctx, states)

	standings := make([]Standing, 0, 4)
	total := userPoints
	for h, st := range states {
		total += st.Points
		standings = append(standings, Standing{House: h, Points: st.Points})
	}
	standings = append(standings, Standing{House: userHouse, Points: userPoints, IsUser: true})

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Points > standings[j].Points
	})
	for i := range standings {
		standings[i].Rank = i + 1
		if total > 0 {
			standings[i].Percent = float64(standings[i].Points) / float64(total)
		}
	}
	return standings
}

// RivalBoost gives each competitor house an independent 30% chance of a
// small immediate bonus. Called whenever the user's point total changes.
func (s *Simulator) RivalBoost(ctx context.Context, userHouse house.House) {
	raw, ok, err := s.kv.Get(ctx, storage.KeyHouseCompetitionData)
	if err != nil || !ok {
		return
	}
	var persisted map[string]competitorState
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		return
	}
	for key, st := range persisted {
		if h, okKey := house.FromKey(key); !okKey || h == userHouse {
			continue
		}
		if s.rng.Float64() < 0.3 {
			st.Points += 1 + s.rng.Intn(3)
			persisted[key] = st
		}
	}
	if out, err := json.Marshal(persisted); err == nil {
		if err := s.kv.Set(ctx, storage.KeyHouseCompetitionData, string(out)); err != nil {
			fmt.Fprintln(os.Stderr, "owlery: save competition data:", err)
		}
	}
}

// grow advances one competitor to now. Points never decrease.
func (s *Simulator) grow(h house.House, st competitorState, now time.Time) competitorState {
	nowMS := now.UnixMilli()
	days := float64(nowMS-st.LastUpdate) / msPerDay
	if days < 0 {
		days = 0
	}
	growth := int(math.Floor(days * float64(growthRates[h])))
	jitter := s.rng.Intn(11) - 5
	next := st.Points + growth + jitter
	if next < st.Points {
		next = st.Points
	}
	return competitorState{Points: next, LastUpdate: nowMS}
}

func (s *Simulator) loadCompetitors(ctx context.Context, userHouse house.House, userPoints int, now time.Time) map[house.House]competitorState {
	states := make(map[house.House]competitorState, 3)

	raw, ok, err := s.kv.Get(ctx, storage.KeyHouseCompetitionData)
	if err != nil {
		fmt.Fprintln(os.Stderr, "owlery: load competition data:", err)
	}
	if ok && err == nil {
		var persisted map[string]competitorState
		if jsonErr := json.Unmarshal([]byte(raw), &persisted); jsonErr == nil {
			for _, h := range house.All() {
				if h == userHouse {
					continue
				}
				if st, found := persisted[h.Key()]; found {
					states[h] = st
					continue
				}
				states[h] = s.baseline(ctx, h, userPoints, now)
			}
			return states
		}
		// Unreadable data: flat fallback rather than failing the view.
		for _, h := range house.All() {
			if h != userHouse {
				states[h] = competitorState{Points: fallbackPoints, LastUpdate: now.UnixMilli()}
			}
		}
		return states
	}

	for _, h := range house.All() {
		if h != userHouse {
			states[h] = s.baseline(ctx, h, userPoints, now)
		}
	}
	return states
}

// baseline synthesizes an initial competitor score keyed off the real
// user's points and the time since install, scaled by the house's rate.
func (s *Simulator) baseline(ctx context.Context, h house.House, userPoints int, now time.Time) competitorState {
	rate := growthRates[h]
	days := float64(now.UnixMilli()-s.installDate(ctx, now)) / msPerDay
	if days < 0 {
		days = 0
	}
	base := math.Max(500, float64(userPoints)*0.8)
	points := int(math.Floor(base*float64(rate)/25 + days*float64(rate)))
	return competitorState{Points: points, LastUpdate: now.UnixMilli()}
}

// installDate returns the recorded install time in epoch milliseconds,
// writing it on first read.
func (s *Simulator) installDate(ctx context.Context, now time.Time) int64 {
	raw, ok, err := s.kv.Get(ctx, storage.KeyAppInstallDate)
	if err == nil && ok {
		if ms, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
			return ms
		}
	}
	ms := now.UnixMilli()
	if err := s.kv.Set(ctx, storage.KeyAppInstallDate, strconv.FormatInt(ms, 10)); err != nil {
		fmt.Fprintln(os.Stderr, "owlery: save install date:", err)
	}
	return ms
}

func (s *Simulator) saveCompetitors(ctx context.Context, states map[house.House]competitorState) {
	persisted := make(map[string]competitorState, len(states))
	for h, st := range states {
		persisted[h.Key()] = st
	}
	out, err := json.Marshal(persisted)
	if err != nil {
		return
	}
	if err := s.kv.Set(ctx, storage.KeyHouseCompetitionData, string(out)); err != nil {
		fmt.Fprintln(os.Stderr, "owlery: save competition data:", err)
	}
}
