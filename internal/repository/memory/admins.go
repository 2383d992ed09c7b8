package memory

import (
	"context"
	"fmt"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
	"github.com/beatforge/backbeat/internal/store"
	"github.com/gofrs/uuid/v5"
)

// AdminRepo implements repository.AdminRepository.
type AdminRepo struct{ st *store.Store }

// NewAdminRepo constructs an admin role repository.
func NewAdminRepo(st *store.Store) *AdminRepo { return &AdminRepo{st: st} }

// Create verifies the user exists and holds no role yet, then inserts.
// The table is keyed by the admin record's own id, so one-role-per-user
// takes a scan.
func (r *AdminRepo) Create(ctx context.Context, a *model.Admin) error {
	if _, ok := r.st.Users.Get(a.UserID.String()); !ok {
		return fmt.Errorf("user: %w", errs.ErrNotFound)
	}
	if _, held := r.st.Admins.Find(func(x model.Admin) bool { return x.UserID == a.UserID }); held {
		return fmt.Errorf("user already has an admin role: %w", errs.ErrConflict)
	}
	return r.st.Admins.Insert(a.ID.String(), *a)
}

// Get loads an admin record by its own id.
func (r *AdminRepo) Get(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	a, ok := r.st.Admins.Get(id.String())
	if !ok {
		return nil, fmt.Errorf("admin: %w", errs.ErrNotFound)
	}
	return &a, nil
}

// List returns all admin records.
func (r *AdminRepo) List(ctx context.Context) ([]model.Admin, error) {
	return r.st.Admins.List(), nil
}

// Update changes the role when the patch supplies one; an absent role
// leaves the record as-is.
func (r *AdminRepo) Update(ctx context.Context, id uuid.UUID, p model.AdminPatch) (*model.Admin, error) {
	a, err := r.st.Admins.Update(id.String(), func(a *model.Admin) {
		if p.Role != nil {
			a.Role = *p.Role
		}
	})
	if err != nil {
		return nil, fmt.Errorf("admin: %w", err)
	}
	return &a, nil
}

// Delete removes the admin record by its own id.
func (r *AdminRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.st.Admins.Delete(id.String()); err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	return nil
}
