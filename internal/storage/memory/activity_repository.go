package memory

import (
	"context"
	"sync"

	"github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/domain"
)

// ActivityRepository holds the authoritative in-memory registry of
// activities. A single RWMutex guards the whole map: writes go through
// WithTx, reads take the read lock and return deep copies so callers
// never observe a list mid-mutation.
type ActivityRepository struct {
	mu         sync.RWMutex
	order      []string
	activities map[string]*domain.Activity
}

// NewActivityRepository builds a repository pre-populated with the seed
// activities. Names are opaque keys; seed order is preserved for listing.
func NewActivityRepository(seed []domain.Activity) *ActivityRepository {
	repo := &ActivityRepository{
		order:      make([]string, 0, len(seed)),
		activities: make(map[string]*domain.Activity, len(seed)),
	}
	for _, act := range seed {
		copied := act
		copied.Participants = append([]string(nil), act.Participants...)
		repo.order = append(repo.order, copied.Name)
		repo.activities[copied.Name] = &copied
	}
	return repo
}

// WithTx runs fn while holding the write lock, so a check-then-mutate
// sequence is atomic with respect to every other operation. Nested calls
// reuse the held lock.
func (r *ActivityRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(withTx(ctx))
}

// GetActivity returns a deep copy of the named activity.
func (r *ActivityRepository) GetActivity(ctx context.Context, name string) (domain.Activity, error) {
	if !inTx(ctx) {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	act, ok := r.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	return copyActivity(act), nil
}

// ListActivities returns a deep-copied snapshot of every activity in
// seed order.
func (r *ActivityRepository) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	if !inTx(ctx) {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	out := make([]domain.Activity, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, copyActivity(r.activities[name]))
	}
	return out, nil
}

// AddParticipant appends email to the named activity's participant list.
func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	if !inTx(ctx) {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	act, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	act.Participants = append(act.Participants, email)
	return nil
}

// RemoveParticipant removes the first entry matching email from the
// named activity's participant list, preserving the order of the rest.
func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	if !inTx(ctx) {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	act, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for i, p := range act.Participants {
		if p == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotRegistered
}

func copyActivity(act *domain.Activity) domain.Activity {
	copied := *act
	copied.Participants = append([]string(nil), act.Participants...)
	return copied
}
