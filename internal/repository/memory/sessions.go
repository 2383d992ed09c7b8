package memory

import (
	"context"
	"fmt"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
	"github.com/beatforge/backbeat/internal/store"
	"github.com/gofrs/uuid/v5"
)

// SessionRepo implements repository.SessionRepository.
type SessionRepo struct{ st *store.Store }

// NewSessionRepo constructs a gameplay session repository.
func NewSessionRepo(st *store.Store) *SessionRepo { return &SessionRepo{st: st} }

// Create verifies both parents exist, then inserts. The existence checks
// and the insert are separate table operations; a parent deleted in
// between leaves a dangling reference (accepted).
func (r *SessionRepo) Create(ctx context.Context, s *model.GameplaySession) error {
	if _, ok := r.st.Users.Get(s.UserID.String()); !ok {
		return fmt.Errorf("user: %w", errs.ErrNotFound)
	}
	if _, ok := r.st.Songs.Get(s.SongID.String()); !ok {
		return fmt.Errorf("song: %w", errs.ErrNotFound)
	}
	return r.st.Sessions.Insert(s.ID.String(), *s)
}

// Get loads a session by ID.
func (r *SessionRepo) Get(ctx context.Context, id uuid.UUID) (*model.GameplaySession, error) {
	s, ok := r.st.Sessions.Get(id.String())
	if !ok {
		return nil, fmt.Errorf("session: %w", errs.ErrNotFound)
	}
	return &s, nil
}

// Update applies the mutable subset of session fields. Sessions carry no
// updatedAt, so nothing else changes on an empty patch.
func (r *SessionRepo) Update(ctx context.Context, id uuid.UUID, p model.SessionPatch) (*model.GameplaySession, error) {
	s, err := r.st.Sessions.Update(id.String(), func(s *model.GameplaySession) {
		if p.EndedAt != nil {
			s.EndedAt = p.EndedAt
		}
		if p.DeviceInfo != nil {
			s.DeviceInfo = p.DeviceInfo
		}
		if p.IsSynced != nil {
			s.IsSynced = *p.IsSynced
		}
	})
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return &s, nil
}
