package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
	"github.com/beatforge/backbeat/internal/store"
	"github.com/gofrs/uuid/v5"
)

// EntitlementRepo implements repository.EntitlementRepository.
type EntitlementRepo struct{ st *store.Store }

// NewEntitlementRepo constructs an entitlement repository.
func NewEntitlementRepo(st *store.Store) *EntitlementRepo { return &EntitlementRepo{st: st} }

// Grant verifies both parents exist, then inserts under the composite
// (user, song) key. A duplicate pair fails with ErrConflict and leaves the
// existing record untouched.
func (r *EntitlementRepo) Grant(ctx context.Context, e *model.Entitlement) error {
	if _, ok := r.st.Users.Get(e.UserID.String()); !ok {
		return fmt.Errorf("user: %w", errs.ErrNotFound)
	}
	if _, ok := r.st.Songs.Get(e.SongID.String()); !ok {
		return fmt.Errorf("song: %w", errs.ErrNotFound)
	}
	if err := r.st.Entitlements.Insert(model.EntitlementKey(e.UserID, e.SongID), *e); err != nil {
		return fmt.Errorf("entitlement already granted: %w", err)
	}
	return nil
}

// GrantIfAbsent inserts unless the pair is already granted. An existing
// record, whatever its source, is kept unchanged.
func (r *EntitlementRepo) GrantIfAbsent(ctx context.Context, e *model.Entitlement) (bool, error) {
	err := r.st.Entitlements.Insert(model.EntitlementKey(e.UserID, e.SongID), *e)
	if errors.Is(err, errs.ErrConflict) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListByUser scans for all entitlements held by the user.
func (r *EntitlementRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Entitlement, error) {
	all := r.st.Entitlements.List()
	out := make([]model.Entitlement, 0, len(all))
	for _, e := range all {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
