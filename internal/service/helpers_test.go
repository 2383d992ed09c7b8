package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/beatforge/backbeat/internal/model"
	"github.com/beatforge/backbeat/internal/repository/memory"
	"github.com/beatforge/backbeat/internal/store"
)

// env wires every service over one fresh store, the way main does.
type env struct {
	st           *store.Store
	users        *UserServiceImpl
	songs        *SongServiceImpl
	sessions     *SessionServiceImpl
	purchases    *PurchaseServiceImpl
	admins       *AdminServiceImpl
	entitlements *EntitlementServiceImpl
}

func newEnv(t *testing.T) *env {
	t.Helper()
	st := store.New()
	userRepo := memory.NewUserRepo(st)
	songRepo := memory.NewSongRepo(st)
	sessionRepo := memory.NewSessionRepo(st)
	perfRepo := memory.NewPerformanceRepo(st)
	purchaseRepo := memory.NewPurchaseRepo(st)
	adminRepo := memory.NewAdminRepo(st)
	entRepo := memory.NewEntitlementRepo(st)
	return &env{
		st:           st,
		users:        NewUserService(userRepo),
		songs:        NewSongService(songRepo),
		sessions:     NewSessionService(sessionRepo, perfRepo),
		purchases:    NewPurchaseService(purchaseRepo, entRepo, zap.NewNop()),
		admins:       NewAdminService(adminRepo),
		entitlements: NewEntitlementService(entRepo, userRepo),
	}
}

func (e *env) mustUser(t *testing.T, email string) *model.User {
	t.Helper()
	u, err := e.users.Create(context.Background(), model.CreateUser{Name: "player", Email: email})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func (e *env) mustSong(t *testing.T) *model.Song {
	t.Helper()
	s, err := e.songs.Create(context.Background(), model.CreateSong{
		Title:           "Neon Rush",
		Artist:          "A. Synth",
		BPM:             174,
		DurationSeconds: 182,
		BeatmapData:     map[string]any{"lanes": 4.0},
		AudioPath:       "/audio/neon-rush.ogg",
	})
	if err != nil {
		t.Fatalf("create song: %v", err)
	}
	return s
}

func (e *env) mustSession(t *testing.T, u *model.User, s *model.Song) *model.GameplaySession {
	t.Helper()
	sess, err := e.sessions.Start(context.Background(), model.CreateSession{
		UserID:        u.ID,
		SongID:        s.ID,
		SongVersion:   s.Version,
		ClientVersion: "2.3.0",
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return sess
}
