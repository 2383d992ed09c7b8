// Package httpapi exposes the rhythm game REST API. Handlers stay thin:
// they decode input, call a service and map the result or its typed failure
// onto the wire.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/beatforge/backbeat/internal/service"
)

// Server wires services into HTTP handlers.
type Server struct {
	users        service.UserService
	songs        service.SongService
	sessions     service.SessionService
	purchases    service.PurchaseService
	admins       service.AdminService
	entitlements service.EntitlementService
	log          *zap.Logger
}

// New constructs a Server with injected services.
func New(
	users service.UserService,
	songs service.SongService,
	sessions service.SessionService,
	purchases service.PurchaseService,
	admins service.AdminService,
	entitlements service.EntitlementService,
	log *zap.Logger,
) *Server {
	return &Server{
		users:        users,
		songs:        songs,
		sessions:     sessions,
		purchases:    purchases,
		admins:       admins,
		entitlements: entitlements,
		log:          log,
	}
}

// Routes builds the router with logging and panic recovery applied to
// every endpoint.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(Recover(s.log), Logging(s.log))

	r.Get("/healthz", s.handleHealth)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.handleListUsers)
		r.Post("/", s.handleCreateUser)
		r.Get("/{userID}", s.handleGetUser)
		r.Put("/{userID}", s.handleUpdateUser)
		r.Delete("/{userID}", s.handleDeleteUser)
		r.Get("/{userID}/entitlements", s.handleListEntitlements)
		r.Post("/{userID}/entitlements", s.handleGrantEntitlement)
	})

	r.Route("/songs", func(r chi.Router) {
		r.Get("/", s.handleListSongs)
		r.Post("/", s.handleCreateSong)
		r.Get("/{songID}", s.handleGetSong)
		r.Put("/{songID}", s.handleUpdateSong)
		r.Delete("/{songID}", s.handleDeleteSong)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleStartSession)
		r.Get("/{sessionID}", s.handleGetSession)
		r.Put("/{sessionID}", s.handleUpdateSession)
		r.Post("/{sessionID}/performance", s.handleSubmitPerformance)
		r.Get("/{sessionID}/performance", s.handleGetPerformance)
	})

	r.Route("/purchases", func(r chi.Router) {
		r.Get("/", s.handleListPurchases)
		r.Post("/", s.handleRecordPurchase)
		r.Get("/{purchaseID}", s.handleGetPurchase)
		r.Put("/{purchaseID}", s.handleUpdatePurchase)
	})

	r.Route("/admins", func(r chi.Router) {
		r.Get("/", s.handleListAdmins)
		r.Post("/", s.handleGrantAdmin)
		r.Get("/{adminID}", s.handleGetAdmin)
		r.Put("/{adminID}", s.handleUpdateAdmin)
		r.Delete("/{adminID}", s.handleRevokeAdmin)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
