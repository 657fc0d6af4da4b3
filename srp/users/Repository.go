package users

import (
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/goprinciples/solid"
)

// ErrIDRequired is returned when a lookup is attempted without an ID.
const ErrIDRequired solid.Error = `user id is required`

// Repository is the persistence role of the user entity.
// The entity does not know this interface exists.
type Repository interface {
	// Save persists the user and assigns an ID when the user has none yet.
	Save(u *User) error
	// FindByID returns the stored user and whether it was found at all.
	FindByID(id string) (User, bool, error)
}

// NewInMemoryRepository creates a Repository that lives and dies with the process.
// It stands in for the database the original God object printed about.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{table: make(map[string]User)}
}

type InMemoryRepository struct {
	mutex sync.RWMutex
	table map[string]User
}

func (r *InMemoryRepository) Save(u *User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if u.ID == `` {
		u.ID = uuid.NewV4().String()
	}

	r.table[u.ID] = *u
	return nil
}

func (r *InMemoryRepository) FindByID(id string) (User, bool, error) {
	if id == `` {
		return User{}, false, ErrIDRequired
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	u, found := r.table[id]
	return u, found, nil
}
