package employees

import (
	"sync"

	uuid "github.com/satori/go.uuid"
)

// Repository is the persistence role of the employee entity.
type Repository interface {
	Save(e *Employee) error
	FindByID(id string) (Employee, bool, error)
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{table: make(map[string]Employee)}
}

// InMemoryRepository stands in for the database the original God object only printed about.
type InMemoryRepository struct {
	mutex sync.RWMutex
	table map[string]Employee
}

func (r *InMemoryRepository) Save(e *Employee) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if e.ID == `` {
		e.ID = uuid.NewV4().String()
	}

	r.table[e.ID] = *e
	return nil
}

func (r *InMemoryRepository) FindByID(id string) (Employee, bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	e, found := r.table[id]
	return e, found, nil
}
