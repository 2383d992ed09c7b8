package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
)

func TestSessionService_Start_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	u := e.mustUser(t, "a@x.com")
	s := e.mustSong(t)

	cases := []struct {
		name string
		in   model.CreateSession
	}{
		{"empty user", model.CreateSession{SongID: s.ID, SongVersion: "1.0", ClientVersion: "1"}},
		{"empty song", model.CreateSession{UserID: u.ID, SongVersion: "1.0", ClientVersion: "1"}},
		{"empty songVersion", model.CreateSession{UserID: u.ID, SongID: s.ID, ClientVersion: "1"}},
		{"empty clientVersion", model.CreateSession{UserID: u.ID, SongID: s.ID, SongVersion: "1.0"}},
	}
	for _, tc := range cases {
		if _, err := e.sessions.Start(ctx, tc.in); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("%s: want validation error, got %v", tc.name, err)
		}
	}
}

func TestSessionService_Start_MissingParents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	u := e.mustUser(t, "a@x.com")
	s := e.mustSong(t)

	in := model.CreateSession{UserID: uuid.Must(uuid.NewV4()), SongID: s.ID, SongVersion: "1.0", ClientVersion: "1"}
	if _, err := e.sessions.Start(ctx, in); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want not found for missing user, got %v", err)
	}

	in = model.CreateSession{UserID: u.ID, SongID: uuid.Must(uuid.NewV4()), SongVersion: "1.0", ClientVersion: "1"}
	if _, err := e.sessions.Start(ctx, in); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want not found for missing song, got %v", err)
	}
}

func TestSessionService_PerformanceJoinOnRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	u := e.mustUser(t, "a@x.com")
	s := e.mustSong(t)
	sess := e.mustSession(t, u, s)

	// before submission the view carries no performance
	view, err := e.sessions.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Performance != nil {
		t.Fatalf("performance should be absent before submission")
	}

	combo := 412
	if _, err := e.sessions.SubmitPerformance(ctx, sess.ID, model.CreatePerformance{
		Score: 998877, Accuracy: 98.6, MaxCombo: &combo,
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	view, err = e.sessions.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Performance == nil {
		t.Fatalf("performance should be attached after submission")
	}
	if view.Performance.Score != 998877 {
		t.Fatalf("score want 998877, got %d", view.Performance.Score)
	}
	if view.Performance.SessionID != sess.ID {
		t.Fatalf("metric keyed to wrong session")
	}
}

func TestSessionService_SubmitPerformance_Once(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	u := e.mustUser(t, "a@x.com")
	s := e.mustSong(t)
	sess := e.mustSession(t, u, s)

	if _, err := e.sessions.SubmitPerformance(ctx, sess.ID, model.CreatePerformance{Score: 100, Accuracy: 90}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := e.sessions.SubmitPerformance(ctx, sess.ID, model.CreatePerformance{Score: 999, Accuracy: 99}); !errors.Is(err, errs.ErrConflict) {
		t.Fatalf("want conflict on second submit, got %v", err)
	}

	// original metric unchanged
	m, err := e.sessions.GetPerformance(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get performance: %v", err)
	}
	if m.Score != 100 {
		t.Fatalf("metric mutated by rejected submit: score %d", m.Score)
	}
}

func TestSessionService_SubmitPerformance_MissingSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.sessions.SubmitPerformance(ctx, uuid.Must(uuid.NewV4()), model.CreatePerformance{Score: 1, Accuracy: 1})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestSessionService_Update_LimitedFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	u := e.mustUser(t, "a@x.com")
	s := e.mustSong(t)
	sess := e.mustSession(t, u, s)

	ended := time.Now().UTC()
	device := "SM-G998B"
	synced := true
	got, err := e.sessions.Update(ctx, sess.ID, model.SessionPatch{EndedAt: &ended, DeviceInfo: &device, IsSynced: &synced})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.EndedAt == nil || !got.EndedAt.Equal(ended) {
		t.Fatalf("endedAt not applied: %v", got.EndedAt)
	}
	if got.DeviceInfo == nil || *got.DeviceInfo != device {
		t.Fatalf("deviceInfo not applied")
	}
	if !got.IsSynced {
		t.Fatalf("isSynced not applied")
	}
	if !got.StartedAt.Equal(sess.StartedAt) {
		t.Fatalf("startedAt must not change on update")
	}
}
