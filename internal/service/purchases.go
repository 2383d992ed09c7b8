package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
	"github.com/beatforge/backbeat/internal/repository"
)

// PurchaseService defines purchase operations and the purchase→entitlement
// orchestration rule.
type PurchaseService interface {
	// Record stores a purchase and grants the matching entitlement if the
	// (user, song) pair has none yet.
	Record(ctx context.Context, in model.CreatePurchase) (*model.Purchase, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	List(ctx context.Context) ([]model.Purchase, error)
	// Update changes payment fields. Refunding never revokes the entitlement.
	Update(ctx context.Context, id uuid.UUID, p model.PurchasePatch) (*model.Purchase, error)
}

type PurchaseServiceImpl struct {
	purchases    repository.PurchaseRepository
	entitlements repository.EntitlementRepository
	log          *zap.Logger
}

// NewPurchaseService constructs PurchaseService.
func NewPurchaseService(purchases repository.PurchaseRepository, entitlements repository.EntitlementRepository, log *zap.Logger) *PurchaseServiceImpl {
	return &PurchaseServiceImpl{purchases: purchases, entitlements: entitlements, log: log}
}

// Record inserts the purchase, then grants the entitlement as a separate
// step. The two inserts are not one transaction: a failure after the first
// leaves a purchase without its entitlement, which is logged and surfaced
// to nobody — callers get the successful purchase. Eventual reconciliation
// is a product decision left open.
func (s *PurchaseServiceImpl) Record(ctx context.Context, in model.CreatePurchase) (*model.Purchase, error) {
	switch {
	case in.UserID == uuid.Nil:
		return nil, fmt.Errorf("%w: empty userId", errs.ErrValidation)
	case in.SongID == uuid.Nil:
		return nil, fmt.Errorf("%w: empty songId", errs.ErrValidation)
	case in.PriceCents < 0:
		return nil, fmt.Errorf("%w: negative priceCents", errs.ErrValidation)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	p := &model.Purchase{
		ID:               id,
		UserID:           in.UserID,
		SongID:           in.SongID,
		PriceCents:       in.PriceCents,
		Currency:         "USD",
		PaymentProcessor: in.PaymentProcessor,
		PaymentReference: in.PaymentReference,
		PurchasedAt:      time.Now().UTC(),
	}
	if in.Currency != nil {
		p.Currency = *in.Currency
	}
	if in.Refunded != nil {
		p.Refunded = *in.Refunded
	}
	if err := s.purchases.Create(ctx, p); err != nil {
		return nil, err
	}

	ent := &model.Entitlement{
		UserID:    p.UserID,
		SongID:    p.SongID,
		Source:    model.SourcePurchase,
		GrantedAt: p.PurchasedAt,
	}
	created, err := s.entitlements.GrantIfAbsent(ctx, ent)
	if err != nil {
		s.log.Warn("entitlement grant failed after purchase",
			zap.String("purchaseId", p.ID.String()),
			zap.String("userId", p.UserID.String()),
			zap.String("songId", p.SongID.String()),
			zap.Error(err),
		)
	} else if !created {
		s.log.Debug("entitlement already present, purchase recorded without grant",
			zap.String("purchaseId", p.ID.String()),
		)
	}
	return p, nil
}

// Get returns a purchase by id.
func (s *PurchaseServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	return s.purchases.Get(ctx, id)
}

// List returns all purchases.
func (s *PurchaseServiceImpl) List(ctx context.Context) ([]model.Purchase, error) {
	return s.purchases.List(ctx)
}

// Update applies the patch to payment fields only.
func (s *PurchaseServiceImpl) Update(ctx context.Context, id uuid.UUID, p model.PurchasePatch) (*model.Purchase, error) {
	if p.PriceCents != nil && *p.PriceCents < 0 {
		return nil, fmt.Errorf("%w: negative priceCents", errs.ErrValidation)
	}
	return s.purchases.Update(ctx, id, p)
}
