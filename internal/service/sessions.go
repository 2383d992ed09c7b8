package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
	"github.com/beatforge/backbeat/internal/repository"
)

// SessionService defines gameplay session and performance operations.
type SessionService interface {
	// Start opens a session for an existing user and song.
	Start(ctx context.Context, in model.CreateSession) (*model.GameplaySession, error)
	// Get returns the session with its performance metric attached, if any.
	Get(ctx context.Context, id uuid.UUID) (*model.SessionView, error)
	// Update applies a patch limited to endedAt, deviceInfo and isSynced.
	Update(ctx context.Context, id uuid.UUID, p model.SessionPatch) (*model.GameplaySession, error)
	// SubmitPerformance records the session's scored result, once.
	SubmitPerformance(ctx context.Context, sessionID uuid.UUID, in model.CreatePerformance) (*model.PerformanceMetric, error)
	// GetPerformance returns the submitted metric for a session.
	GetPerformance(ctx context.Context, sessionID uuid.UUID) (*model.PerformanceMetric, error)
}

type SessionServiceImpl struct {
	sessions repository.SessionRepository
	perfs    repository.PerformanceRepository
}

// NewSessionService constructs SessionService.
func NewSessionService(sessions repository.SessionRepository, perfs repository.PerformanceRepository) *SessionServiceImpl {
	return &SessionServiceImpl{sessions: sessions, perfs: perfs}
}

// Start validates input and inserts a session with a server-assigned id and
// start time.
func (s *SessionServiceImpl) Start(ctx context.Context, in model.CreateSession) (*model.GameplaySession, error) {
	switch {
	case in.UserID == uuid.Nil:
		return nil, fmt.Errorf("%w: empty userId", errs.ErrValidation)
	case in.SongID == uuid.Nil:
		return nil, fmt.Errorf("%w: empty songId", errs.ErrValidation)
	case in.SongVersion == "":
		return nil, fmt.Errorf("%w: empty songVersion", errs.ErrValidation)
	case in.ClientVersion == "":
		return nil, fmt.Errorf("%w: empty clientVersion", errs.ErrValidation)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	sess := &model.GameplaySession{
		ID:            id,
		UserID:        in.UserID,
		SongID:        in.SongID,
		SongVersion:   in.SongVersion,
		ClientVersion: in.ClientVersion,
		StartedAt:     time.Now().UTC(),
		EndedAt:       in.EndedAt,
		DeviceInfo:    in.DeviceInfo,
	}
	if in.IsSynced != nil {
		sess.IsSynced = *in.IsSynced
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get joins the performance metric onto the session at read time. A missing
// metric is not an error; the view's Performance stays nil.
func (s *SessionServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.SessionView, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &model.SessionView{GameplaySession: *sess}
	perf, err := s.perfs.GetBySession(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return view, nil
		}
		return nil, err
	}
	view.Performance = perf
	return view, nil
}

// Update applies the mutable subset of session fields.
func (s *SessionServiceImpl) Update(ctx context.Context, id uuid.UUID, p model.SessionPatch) (*model.GameplaySession, error) {
	return s.sessions.Update(ctx, id, p)
}

// SubmitPerformance validates and records the metric. Metrics are immutable
// once stored; a second submission fails with ErrConflict.
func (s *SessionServiceImpl) SubmitPerformance(ctx context.Context, sessionID uuid.UUID, in model.CreatePerformance) (*model.PerformanceMetric, error) {
	if in.Score < 0 {
		return nil, fmt.Errorf("%w: negative score", errs.ErrValidation)
	}
	if in.Accuracy < 0 {
		return nil, fmt.Errorf("%w: negative accuracy", errs.ErrValidation)
	}
	m := &model.PerformanceMetric{
		SessionID:   sessionID,
		Score:       in.Score,
		Accuracy:    in.Accuracy,
		MaxCombo:    in.MaxCombo,
		Modifiers:   in.Modifiers,
		SubmittedAt: time.Now().UTC(),
		ReplayHash:  in.ReplayHash,
		Signature:   in.Signature,
	}
	if err := s.perfs.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetPerformance returns the metric for a session, ErrNotFound if none was
// submitted.
func (s *SessionServiceImpl) GetPerformance(ctx context.Context, sessionID uuid.UUID) (*model.PerformanceMetric, error) {
	return s.perfs.GetBySession(ctx, sessionID)
}
