package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
	"github.com/beatforge/backbeat/internal/repository"
)

// AdminService defines administrative role operations.
type AdminService interface {
	// Grant assigns a role to a user. A user holds at most one role record.
	Grant(ctx context.Context, in model.CreateAdmin) (*model.Admin, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
	// Update changes the role; an absent role in the patch is ignored.
	Update(ctx context.Context, id uuid.UUID, p model.AdminPatch) (*model.Admin, error)
	// Revoke removes the role record by its own id.
	Revoke(ctx context.Context, id uuid.UUID) error
}

type AdminServiceImpl struct {
	admins repository.AdminRepository
}

// NewAdminService constructs AdminService.
func NewAdminService(admins repository.AdminRepository) *AdminServiceImpl {
	return &AdminServiceImpl{admins: admins}
}

// Grant validates the role and inserts the record.
func (s *AdminServiceImpl) Grant(ctx context.Context, in model.CreateAdmin) (*model.Admin, error) {
	if in.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty userId", errs.ErrValidation)
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", errs.ErrValidation, in.Role)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	a := &model.Admin{ID: id, UserID: in.UserID, Role: in.Role, GrantedAt: time.Now().UTC()}
	if err := s.admins.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns an admin record by id.
func (s *AdminServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	return s.admins.Get(ctx, id)
}

// List returns all admin records.
func (s *AdminServiceImpl) List(ctx context.Context) ([]model.Admin, error) {
	return s.admins.List(ctx)
}

// Update validates the new role, if supplied, and applies it.
func (s *AdminServiceImpl) Update(ctx context.Context, id uuid.UUID, p model.AdminPatch) (*model.Admin, error) {
	if p.Role != nil && !p.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", errs.ErrValidation, *p.Role)
	}
	return s.admins.Update(ctx, id, p)
}

// Revoke removes the role record.
func (s *AdminServiceImpl) Revoke(ctx context.Context, id uuid.UUID) error {
	return s.admins.Delete(ctx, id)
}
