package leads

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for lead storage. Two write patterns are
// supported: Create assigns an id and writes in one call, while NewID+Put
// lets the caller learn the id first so it can prefix upload paths with it.
type Repository interface {
	Create(ctx context.Context, lead *Lead) (string, error)
	NewID() string
	Put(ctx context.Context, id string, lead *Lead) error
	GetByID(ctx context.Context, id string) (*Lead, error)
}

// InMemoryRepository is an in-memory Repository used in tests and local
// development when no DynamoDB table is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]*Lead
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{leads: make(map[string]*Lead)}
}

// Create stores the lead under a fresh id and stamps CreatedAt.
func (r *InMemoryRepository) Create(_ context.Context, lead *Lead) (string, error) {
	id := r.NewID()
	lead.ID = id
	lead.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	stored := *lead
	r.mu.Lock()
	r.leads[id] = &stored
	r.mu.Unlock()

	return id, nil
}

// NewID reserves a unique id without touching the store.
func (r *InMemoryRepository) NewID() string {
	return uuid.NewString()
}

// Put writes the full lead document under a previously reserved id.
func (r *InMemoryRepository) Put(_ context.Context, id string, lead *Lead) error {
	lead.ID = id
	lead.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	stored := *lead
	r.mu.Lock()
	r.leads[id] = &stored
	r.mu.Unlock()

	return nil
}

// GetByID retrieves a lead by id.
func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, ErrLeadNotFound
	}
	return lead, nil
}

// Len reports how many leads have been stored.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.leads)
}
