// Package memory implements the repository interfaces over the in-memory
// store. Uniqueness and foreign-key checks happen here; anything spanning
// more than one table is check-then-write and therefore racy by design
// (see the store package doc).
package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
	"github.com/beatforge/backbeat/internal/store"
	"github.com/gofrs/uuid/v5"
)

// UserRepo implements repository.UserRepository.
type UserRepo struct{ st *store.Store }

// NewUserRepo constructs a user repository.
func NewUserRepo(st *store.Store) *UserRepo { return &UserRepo{st: st} }

// Create inserts a new user, rejecting duplicate emails.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	if _, taken := r.st.Users.Find(func(x model.User) bool { return x.Email == u.Email }); taken {
		return fmt.Errorf("email already registered: %w", errs.ErrConflict)
	}
	return r.st.Users.Insert(u.ID.String(), *u)
}

// Get loads a user by ID.
func (r *UserRepo) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.st.Users.Get(id.String())
	if !ok {
		return nil, fmt.Errorf("user: %w", errs.ErrNotFound)
	}
	return &u, nil
}

// List returns all users.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	return r.st.Users.List(), nil
}

// Update applies the patch field-by-field and bumps UpdatedAt.
func (r *UserRepo) Update(ctx context.Context, id uuid.UUID, p model.UserPatch) (*model.User, error) {
	u, err := r.st.Users.Update(id.String(), func(u *model.User) {
		if p.Name != nil {
			u.Name = *p.Name
		}
		if p.Email != nil {
			u.Email = *p.Email
		}
		u.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		return nil, fmt.Errorf("user: %w", err)
	}
	return &u, nil
}

// Delete removes the user. Sessions, entitlements, purchases and admin
// records referencing the user are left in place.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.st.Users.Delete(id.String()); err != nil {
		return fmt.Errorf("user: %w", err)
	}
	return nil
}
