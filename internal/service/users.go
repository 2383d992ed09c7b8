// Package service contains application services: input validation, key and
// timestamp assignment, and the cross-entity orchestration rules.
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

// UserService defines account operations.
type UserService interface {
	// Create registers a user with a fresh id and timestamps.
	Create(ctx context.Context, in model.CreateUser) (*model.User, error)
	// Get returns a user by id.
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	// List returns all users.
	List(ctx context.Context) ([]model.User, error)
	// Update applies a partial patch.
	Update(ctx context.Context, id uuid.UUID, p model.UserPatch) (*model.User, error)
	// Delete removes the user without cascading to dependents.
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserServiceImpl struct {
	users repository.UserRepository
}

// NewUserService constructs UserService.
func NewUserService(users repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{users: users}
}

// Create validates required fields and inserts the account.
func (s *UserServiceImpl) Create(ctx context.Context, in model.CreateUser) (*model.User, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: empty name", errs.ErrValidation)
	}
	if in.Email == "" {
		return nil, fmt.Errorf("%w: empty email", errs.ErrValidation)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &model.User{ID: id, Name: in.Name, Email: in.Email, CreatedAt: now, UpdatedAt: now}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Get returns a user by id.
func (s *UserServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.users.Get(ctx, id)
}

// List returns all users.
func (s *UserServiceImpl) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Update applies the patch; an empty patch only advances updatedAt.
func (s *UserServiceImpl) Update(ctx context.Context, id uuid.UUID, p model.UserPatch) (*model.User, error) {
	if p.Name != nil && *p.Name == "" {
		return nil, fmt.Errorf("%w: empty name", errs.ErrValidation)
	}
	if p.Email != nil && *p.Email == "" {
		return nil, fmt.Errorf("%w: empty email", errs.ErrValidation)
	}
	return s.users.Update(ctx, id, p)
}

// Delete removes the user record.
func (s *UserServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}
