package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
)

func TestUserService_Create_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)

	if _, err := e.users.Create(ctx, model.CreateUser{Email: "a@x.com"}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error on empty name, got %v", err)
	}
	if _, err := e.users.Create(ctx, model.CreateUser{Name: "p"}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error on empty email, got %v", err)
	}
}

func TestUserService_Create_UniqueEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)

	e.mustUser(t, "a@x.com")
	if _, err := e.users.Create(ctx, model.CreateUser{Name: "other", Email: "a@x.com"}); !errors.Is(err, errs.ErrConflict) {
		t.Fatalf("want conflict on duplicate email, got %v", err)
	}

	users, err := e.users.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	seen := map[string]bool{}
	for _, u := range users {
		if seen[u.Email] {
			t.Fatalf("duplicate email %q in store", u.Email)
		}
		seen[u.Email] = true
	}
}

func TestUserService_Update_EmptyPatchAdvancesUpdatedAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)

	u := e.mustUser(t, "a@x.com")
	got, err := e.users.Update(ctx, u.ID, model.UserPatch{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != u.Name || got.Email != u.Email {
		t.Fatalf("empty patch changed fields: %+v", got)
	}
	if got.UpdatedAt.Before(u.UpdatedAt) {
		t.Fatalf("updatedAt went backwards: %v < %v", got.UpdatedAt, u.UpdatedAt)
	}
	if !got.CreatedAt.Equal(u.CreatedAt) {
		t.Fatalf("createdAt changed on update")
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)

	if err := e.users.Delete(ctx, uuid.Must(uuid.NewV4())); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestSongService_Defaults(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	s := e.mustSong(t)
	if s.Version != "1.0" {
		t.Fatalf("default version want 1.0, got %q", s.Version)
	}
	if s.IsPublished {
		t.Fatalf("song should be unpublished by default")
	}
}

func TestSongService_Create_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)

	in := model.CreateSong{
		Title: "x", Artist: "y", BPM: 120, DurationSeconds: 60,
		BeatmapData: map[string]any{}, AudioPath: "/a.ogg",
	}

	bad := in
	bad.BPM = 0
	if _, err := e.songs.Create(ctx, bad); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error on zero bpm, got %v", err)
	}

	bad = in
	bad.BeatmapData = nil
	if _, err := e.songs.Create(ctx, bad); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error on missing beatmap, got %v", err)
	}

	if _, err := e.songs.Create(ctx, in); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}
