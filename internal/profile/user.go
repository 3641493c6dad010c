package profile

import (
	"github.com/abhisek/owlery/internal/house"
)

// User is the single persisted player record. It is written in full on
// every mutation; all changes flow through Store transitions.
type User struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	House                house.House         `json:"house"`
	CurrentYear          int                 `json:"currentYear"`
	CurrentChapter       int                 `json:"currentChapter"`
	TotalPoints          int                 `json:"totalPoints"`
	Badges               []Badge             `json:"badges"`
	ChocolateFrogCards   []ChocolateFrogCard `json:"chocolateFrogCards"`
	Streak               int                 `json:"streak"`
	LastDailyProphetDate string              `json:"lastDailyProphetDate,omitempty"`
	Wand                 *Wand               `json:"wand,omitempty"`
	Patronus             string              `json:"patronus,omitempty"`
}

// Badge is a named achievement earned by the player.
type Badge struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	EarnedAt string `json:"earnedAt"`
}

// ChocolateFrogCard is a collectible unlocked by play.
type ChocolateFrogCard struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Wand describes the player's wand, chosen during onboarding flavor steps.
type Wand struct {
	Wood   string `json:"wood"`
	Core   string `json:"core"`
	Length string `json:"length"`
}
