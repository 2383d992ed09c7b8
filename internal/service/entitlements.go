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

// EntitlementService defines direct entitlement grants (promo, admin,
// default). Purchase-sourced grants happen inside PurchaseService.
type EntitlementService interface {
	// Grant creates an entitlement for the user addressed by the request
	// path. The body's userId must agree with pathUserID.
	Grant(ctx context.Context, pathUserID uuid.UUID, in model.CreateEntitlement) (*model.Entitlement, error)
	// ListForUser returns all entitlements held by an existing user.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Entitlement, error)
}

type EntitlementServiceImpl struct {
	entitlements repository.EntitlementRepository
	users        repository.UserRepository
}

// NewEntitlementService constructs EntitlementService.
func NewEntitlementService(entitlements repository.EntitlementRepository, users repository.UserRepository) *EntitlementServiceImpl {
	return &EntitlementServiceImpl{entitlements: entitlements, users: users}
}

// Grant checks path/body agreement, validates the source and inserts.
func (s *EntitlementServiceImpl) Grant(ctx context.Context, pathUserID uuid.UUID, in model.CreateEntitlement) (*model.Entitlement, error) {
	if pathUserID != in.UserID {
		return nil, fmt.Errorf("user id in path does not match body: %w", errs.ErrInvalidReference)
	}
	if in.SongID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty songId", errs.ErrValidation)
	}
	if !in.Source.Valid() {
		return nil, fmt.Errorf("%w: unknown source %q", errs.ErrValidation, in.Source)
	}
	e := &model.Entitlement{UserID: in.UserID, SongID: in.SongID, Source: in.Source, GrantedAt: time.Now().UTC()}
	if err := s.entitlements.Grant(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListForUser verifies the user exists, then lists their entitlements.
func (s *EntitlementServiceImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Entitlement, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.entitlements.ListByUser(ctx, userID)
}
