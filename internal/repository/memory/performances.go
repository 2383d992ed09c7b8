package memory

import (
	"context"
	"fmt"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
	"github.com/beatforge/backbeat/internal/store"
	"github.com/gofrs/uuid/v5"
)

// PerformanceRepo implements repository.PerformanceRepository.
type PerformanceRepo struct{ st *store.Store }

// NewPerformanceRepo constructs a performance metric repository.
func NewPerformanceRepo(st *store.Store) *PerformanceRepo { return &PerformanceRepo{st: st} }

// Create inserts the metric for its session. The table is keyed by session
// id, so the Insert's conflict check IS the 1:1 invariant.
func (r *PerformanceRepo) Create(ctx context.Context, m *model.PerformanceMetric) error {
	if _, ok := r.st.Sessions.Get(m.SessionID.String()); !ok {
		return fmt.Errorf("session: %w", errs.ErrNotFound)
	}
	if err := r.st.Performances.Insert(m.SessionID.String(), *m); err != nil {
		return fmt.Errorf("performance already submitted for session: %w", err)
	}
	return nil
}

// GetBySession loads the metric for a session, if one was submitted.
func (r *PerformanceRepo) GetBySession(ctx context.Context, sessionID uuid.UUID) (*model.PerformanceMetric, error) {
	m, ok := r.st.Performances.Get(sessionID.String())
	if !ok {
		return nil, fmt.Errorf("performance: %w", errs.ErrNotFound)
	}
	return &m, nil
}
