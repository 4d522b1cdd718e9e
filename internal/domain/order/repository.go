package order

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Store persists order snapshots. LoadOrders returns (nil, nil) when no
// snapshot exists yet; the repository treats both that and a load error as
// "use the seed data".
type Store interface {
	LoadOrders(ctx context.Context) ([]Order, error)
	SaveOrders(ctx context.Context, orders []Order) error
}

// Repository owns the canonical in-memory order collection for the running
// session. Every mutation is applied in memory first and then pushed to the
// Store fire-and-forget: a failed write is logged and the in-memory state
// stays authoritative. The mutex serializes concurrent create/advance calls
// so the repository is safe when several terminals share one process.
type Repository struct {
	store Store
	lg    *zap.Logger

	mu     sync.RWMutex
	orders []Order
	nextID int
}

// NewRepository loads the collection from the store, falling back to seed
// when the store has nothing or the load fails. The id sequence continues
// past the highest loaded code.
func NewRepository(ctx context.Context, store Store, seed []Order, lg *zap.Logger) *Repository {
	r := &Repository{store: store, lg: lg}

	loaded, err := store.LoadOrders(ctx)
	if err != nil {
		lg.Warn("loading orders failed, using seed data", zap.Error(err))
		loaded = nil
	}
	if loaded == nil {
		loaded = make([]Order, len(seed))
		copy(loaded, seed)
	}

	r.orders = loaded
	r.nextID = highestSequence(loaded) + 1
	return r
}

// highestSequence extracts the largest numeric suffix among ORD- codes.
// Foreign or malformed ids are skipped rather than rejected.
func highestSequence(orders []Order) int {
	highest := 0
	for _, o := range orders {
		num, ok := strings.CutPrefix(o.ID, "ORD-")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest
}

// NextID returns the order code the next Create will assign.
func (r *Repository) NextID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fmt.Sprintf("ORD-%03d", r.nextID)
}

// Create assigns the next sequential id, appends the order, and persists.
func (r *Repository) Create(ctx context.Context, o Order) Order {
	r.mu.Lock()
	o.ID = fmt.Sprintf("ORD-%03d", r.nextID)
	r.nextID++
	r.orders = append(r.orders, o)
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	r.persist(ctx, snapshot)
	return o
}

// Get returns a copy of the order with the given id, or ErrNotFound.
func (r *Repository) Get(_ context.Context, id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			return r.orders[i], nil
		}
	}
	return Order{}, ErrNotFound
}

// Update applies mutate to the order with the given id under the write lock
// and persists the result. When mutate returns an error the collection is
// left unchanged and nothing is persisted.
func (r *Repository) Update(ctx context.Context, id string, mutate func(*Order) error) (Order, error) {
	r.mu.Lock()
	idx := -1
	for i := range r.orders {
		if r.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return Order{}, ErrNotFound
	}

	// Mutate a copy so a failed mutation never leaks partial changes.
	updated := r.orders[idx]
	if err := mutate(&updated); err != nil {
		r.mu.Unlock()
		return Order{}, err
	}
	r.orders[idx] = updated
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	r.persist(ctx, snapshot)
	return updated, nil
}

// Snapshot returns a copy of the whole collection in canonical (creation)
// order. Read operations work on snapshots and never see later mutations.
func (r *Repository) Snapshot(_ context.Context) []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

func (r *Repository) snapshotLocked() []Order {
	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out
}

// persist writes the snapshot to the store. Failures are logged and
// swallowed: the in-memory collection is authoritative for the session.
func (r *Repository) persist(ctx context.Context, snapshot []Order) {
	if err := r.store.SaveOrders(ctx, snapshot); err != nil {
		r.lg.Warn("persisting orders failed, in-memory state kept",
			zap.Int("orders", len(snapshot)),
			zap.Error(err),
		)
	}
}
