package memory

import (
	"context"
	"fmt"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
	"github.com/beatforge/backbeat/internal/store"
	"github.com/gofrs/uuid/v5"
)

// PurchaseRepo implements repository.PurchaseRepository.
type PurchaseRepo struct{ st *store.Store }

// NewPurchaseRepo constructs a purchase repository.
func NewPurchaseRepo(st *store.Store) *PurchaseRepo { return &PurchaseRepo{st: st} }

// Create verifies both parents exist, then inserts the purchase record.
// Entitlement granting is orchestrated one level up, in the service.
func (r *PurchaseRepo) Create(ctx context.Context, p *model.Purchase) error {
	if _, ok := r.st.Users.Get(p.UserID.String()); !ok {
		return fmt.Errorf("user: %w", errs.ErrNotFound)
	}
	if _, ok := r.st.Songs.Get(p.SongID.String()); !ok {
		return fmt.Errorf("song: %w", errs.ErrNotFound)
	}
	return r.st.Purchases.Insert(p.ID.String(), *p)
}

// Get loads a purchase by ID.
func (r *PurchaseRepo) Get(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	p, ok := r.st.Purchases.Get(id.String())
	if !ok {
		return nil, fmt.Errorf("purchase: %w", errs.ErrNotFound)
	}
	return &p, nil
}

// List returns all purchases.
func (r *PurchaseRepo) List(ctx context.Context) ([]model.Purchase, error) {
	return r.st.Purchases.List(), nil
}

// Update applies the patch field-by-field. Flipping Refunded here never
// touches the entitlement granted at purchase time.
func (r *PurchaseRepo) Update(ctx context.Context, id uuid.UUID, patch model.PurchasePatch) (*model.Purchase, error) {
	p, err := r.st.Purchases.Update(id.String(), func(p *model.Purchase) {
		if patch.PriceCents != nil {
			p.PriceCents = *patch.PriceCents
		}
		if patch.Currency != nil {
			p.Currency = *patch.Currency
		}
		if patch.PaymentProcessor != nil {
			p.PaymentProcessor = patch.PaymentProcessor
		}
		if patch.PaymentReference != nil {
			p.PaymentReference = patch.PaymentReference
		}
		if patch.Refunded != nil {
			p.Refunded = *patch.Refunded
		}
	})
	if err != nil {
		return nil, fmt.Errorf("purchase: %w", err)
	}
	return &p, nil
}
