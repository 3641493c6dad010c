// Package storage provides the flat namespace of named JSON blobs the game
// persists: the user profile, first-run flag, house competition record, and
// install date.
package storage

import "context"

// Persisted record keys.
const (
	KeyUserData             = "userData"
	KeyIsFirstTime          = "isFirstTime"
	KeyHouseCompetitionData = "houseCompetitionData"
	KeyAppInstallDate       = "appInstallDate"
)

// KV is the key-value contract the game core writes through. All methods may
// fail with an I/O error; callers log and continue rather than surface it.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// RemoveMany deletes every listed key.
	RemoveMany(ctx context.Context, keys []string) error
}
