package forest

import (
	"context"
	"strconv"
	"sync"
)

/*
Store is an interface to manage a store
where forests can be created, retrieved, updated
and deleted.

All it methods take a context that may allow
cancelling the operation (thus forcing the return
of an error) if the implementation allows it.
*/
type Store interface {
	// Create takes a forest and stores it for the
	// first time in the store, returning the ID
	// generated for it or an error if the forest
	// cannot be stored.
	Create(ctx context.Context, f *Forest) (string, error)
	// Get takes an id and returns the forest in the
	// store with that id (or nil if it cannot be
	// found) or an error if the store cannot be
	// queried
	Get(ctx context.Context, id string) (*Forest, error)
	// Store takes an id and a forest and stores the
	// forest under the id, replacing whatever was
	// stored under it.
	Store(ctx context.Context, id string, f *Forest) error
	// Delete takes an id and deletes the forest
	// stored under it. Deleting an id that is not
	// on the store is not an error.
	Delete(ctx context.Context, id string) error
	// Close closes the store, freeing any resources
	// in use.
	Close(ctx context.Context) error
}

type memoryStore struct {
	forests map[string]*Forest
	lock    sync.RWMutex
	nextID  uint64
}

// NewMemoryStore returns an implementation
// of Store with the process memory space
// as underlying backend
func NewMemoryStore() Store {
	return &memoryStore{forests: make(map[string]*Forest)}
}

func (ms *memoryStore) Create(ctx context.Context, f *Forest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ms.lock.Lock()
	defer ms.lock.Unlock()
	ms.nextID++
	id := strconv.FormatUint(ms.nextID, 10)
	ms.forests[id] = f
	return id, nil
}

func (ms *memoryStore) Get(ctx context.Context, id string) (*Forest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ms.lock.RLock()
	defer ms.lock.RUnlock()
	return ms.forests[id], nil
}

func (ms *memoryStore) Store(ctx context.Context, id string, f *Forest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ms.lock.Lock()
	defer ms.lock.Unlock()
	ms.forests[id] = f
	return nil
}

func (ms *memoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ms.lock.Lock()
	defer ms.lock.Unlock()
	delete(ms.forests, id)
	return nil
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}
