package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/wizard"
)

// SessionStore persists wizard sessions. Update is the only way to mutate a
// stored wizard: it loads, applies fn and writes back atomically, failing with
// a CONFLICT store error when another writer got there first. The store
// derives each entry's expiry from the wizard itself.
type SessionStore interface {
	Create(ctx context.Context, w *wizard.Wizard) error
	Get(ctx context.Context, id uuid.UUID) (*wizard.Wizard, error)
	Update(ctx context.Context, id uuid.UUID, fn func(w *wizard.Wizard) error) (*wizard.Wizard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// IdempotencyStore records one reservation per key. Claim stores a processing
// record only when the key is free and reports whether it did; the claimant
// then either completes the record or releases the key.
type IdempotencyStore interface {
	Claim(ctx context.Context, rec IdempotencyRecord, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
	Complete(ctx context.Context, rec IdempotencyRecord, ttl time.Duration) error
	Release(ctx context.Context, key uuid.UUID) error
}
