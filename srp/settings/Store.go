package settings

import (
	"sync"

	"github.com/goprinciples/solid"
)

const ErrUserIDRequired solid.Error = `user id is required`

// Store is the persistence role of the settings.
// Whether the settings end up in a file, a database or a map is this role's concern alone.
type Store interface {
	Save(userID string, s Settings) error
	Load(userID string) (Settings, bool, error)
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{table: make(map[string]Settings)}
}

type InMemoryStore struct {
	mutex sync.RWMutex
	table map[string]Settings
}

func (store *InMemoryStore) Save(userID string, s Settings) error {
	if userID == `` {
		return ErrUserIDRequired
	}

	store.mutex.Lock()
	defer store.mutex.Unlock()

	store.table[userID] = s
	return nil
}

func (store *InMemoryStore) Load(userID string) (Settings, bool, error) {
	if userID == `` {
		return Settings{}, false, ErrUserIDRequired
	}

	store.mutex.RLock()
	defer store.mutex.RUnlock()

	s, found := store.table[userID]
	return s, found, nil
}
