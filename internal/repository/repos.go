// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/beatforge/backbeat/internal/model"
	"github.com/gofrs/uuid/v5"
)

// UserRepository provides CRUD access for user accounts.
type UserRepository interface {
	// Create inserts a new user. Fails with ErrConflict if the email is taken.
	Create(ctx context.Context, u *model.User) error
	// Get loads a user by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	// List returns all users.
	List(ctx context.Context) ([]model.User, error)
	// Update applies a partial patch and bumps UpdatedAt.
	Update(ctx context.Context, id uuid.UUID, p model.UserPatch) (*model.User, error)
	// Delete removes the user. Dependent records are NOT cascaded.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SongRepository provides CRUD access for the song catalog.
type SongRepository interface {
	Create(ctx context.Context, s *model.Song) error
	Get(ctx context.Context, id uuid.UUID) (*model.Song, error)
	List(ctx context.Context) ([]model.Song, error)
	Update(ctx context.Context, id uuid.UUID, p model.SongPatch) (*model.Song, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionRepository provides access to gameplay sessions.
type SessionRepository interface {
	// Create inserts a session after verifying its user and song exist.
	// The returned ErrNotFound names which parent is missing.
	Create(ctx context.Context, s *model.GameplaySession) error
	Get(ctx context.Context, id uuid.UUID) (*model.GameplaySession, error)
	// Update applies a patch limited to endedAt, deviceInfo and isSynced.
	Update(ctx context.Context, id uuid.UUID, p model.SessionPatch) (*model.GameplaySession, error)
}

// PerformanceRepository provides access to per-session performance metrics.
// Metrics are immutable: there is no update operation.
type PerformanceRepository interface {
	// Create inserts the metric for its session. Fails with ErrNotFound if
	// the session does not exist and ErrConflict if a metric already does.
	Create(ctx context.Context, m *model.PerformanceMetric) error
	// GetBySession loads the metric for a session, if submitted.
	GetBySession(ctx context.Context, sessionID uuid.UUID) (*model.PerformanceMetric, error)
}

// PurchaseRepository provides access to purchase records.
type PurchaseRepository interface {
	// Create inserts a purchase after verifying its user and song exist.
	Create(ctx context.Context, p *model.Purchase) error
	Get(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	List(ctx context.Context) ([]model.Purchase, error)
	Update(ctx context.Context, id uuid.UUID, p model.PurchasePatch) (*model.Purchase, error)
}

// AdminRepository provides access to administrative role records.
type AdminRepository interface {
	// Create inserts an admin record. Fails with ErrNotFound if the user
	// does not exist and ErrConflict if the user already holds a role.
	Create(ctx context.Context, a *model.Admin) error
	Get(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
	// Update changes the role; a nil patch role is a no-op.
	Update(ctx context.Context, id uuid.UUID, p model.AdminPatch) (*model.Admin, error)
	// Delete removes the record by its own id, not the user's.
	Delete(ctx context.Context, id uuid.UUID) error
}

// EntitlementRepository provides access to play entitlements.
type EntitlementRepository interface {
	// Grant inserts an entitlement after verifying its user and song exist.
	// Fails with ErrConflict if the (user, song) pair is already granted.
	Grant(ctx context.Context, e *model.Entitlement) error
	// GrantIfAbsent inserts the entitlement unless one already exists for
	// the pair. Reports whether a record was created. Never downgrades or
	// duplicates an existing grant.
	GrantIfAbsent(ctx context.Context, e *model.Entitlement) (created bool, err error)
	// ListByUser returns all entitlements held by a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Entitlement, error)
}
