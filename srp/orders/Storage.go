package orders

import (
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/goprinciples/solid"
)

const ErrUnknownOrder solid.Error = `unknown order`

// Storage is the persistence role of the order entity.
// The Order type itself has no idea whether it lives in a database or in a map.
type Storage interface {
	// Save persists a new order and assigns its ID.
	Save(o *Order) error
	// Load returns the stored order and whether it was found.
	Load(id string) (*Order, bool, error)
	// Update overwrites an already persisted order.
	Update(o *Order) error
	// Delete removes the order from the storage.
	Delete(id string) error
}

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{table: make(map[string]Order)}
}

type InMemoryStorage struct {
	mutex sync.RWMutex
	table map[string]Order
}

func (s *InMemoryStorage) Save(o *Order) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if o.ID == `` {
		o.ID = uuid.NewV4().String()
	}

	s.table[o.ID] = snapshot(o)
	return nil
}

func (s *InMemoryStorage) Load(id string) (*Order, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	o, found := s.table[id]
	if !found {
		return nil, false, nil
	}
	stored := snapshot(&o)
	return &stored, true, nil
}

func (s *InMemoryStorage) Update(o *Order) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, found := s.table[o.ID]; !found {
		return ErrUnknownOrder
	}

	s.table[o.ID] = snapshot(o)
	return nil
}

func (s *InMemoryStorage) Delete(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, found := s.table[id]; !found {
		return ErrUnknownOrder
	}

	delete(s.table, id)
	return nil
}

// snapshot detaches the stored value from the live order,
// so a later mutation of one cannot leak into the other.
func snapshot(o *Order) Order {
	return Order{ID: o.ID, items: o.Items()}
}
