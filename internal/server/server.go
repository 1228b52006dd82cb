package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/chorequest/internal/handler"
	"github.com/dukerupert/chorequest/internal/middleware"
	"github.com/dukerupert/chorequest/internal/service"
	"github.com/dukerupert/chorequest/internal/store"
	"github.com/dukerupert/chorequest/internal/ws"
)

type Server struct {
	db           *sql.DB
	hub          *ws.Hub
	svc          *service.Service
	authH        *handler.AuthHandler
	familyH      *handler.FamilyHandler
	userH        *handler.UserHandler
	choreH       *handler.ChoreHandler
	rewardH      *handler.RewardHandler
	redemptionH  *handler.RedemptionHandler
	achievementH *handler.AchievementHandler
	externalH    *handler.ExternalHandler
	sessionStore *store.SessionStore
	userStore    *store.UserStore
	familyStore  *store.FamilyStore
	rateLimiter  *middleware.RateLimiter
	logger       *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	familyStore := store.NewFamilyStore(db)
	userStore := store.NewUserStore(db)
	choreStore := store.NewChoreStore(db)
	rewardStore := store.NewRewardStore(db)
	redemptionStore := store.NewRedemptionStore(db)
	achievementStore := store.NewAchievementStore(db)
	sessionStore := store.NewSessionStore(db)

	svc := service.New(
		familyStore, userStore, choreStore, rewardStore, redemptionStore, achievementStore,
		hub, logger.With("component", "service"),
	)

	return &Server{
		db:           db,
		hub:          hub,
		svc:          svc,
		authH:        handler.NewAuthHandler(userStore, sessionStore, logger.With("component", "auth")),
		familyH:      handler.NewFamilyHandler(svc, logger.With("component", "family")),
		userH:        handler.NewUserHandler(svc, logger.With("component", "user")),
		choreH:       handler.NewChoreHandler(svc, logger.With("component", "chore")),
		rewardH:      handler.NewRewardHandler(svc, logger.With("component", "reward")),
		redemptionH:  handler.NewRedemptionHandler(svc, logger.With("component", "redemption")),
		achievementH: handler.NewAchievementHandler(svc, logger.With("component", "achievement")),
		externalH:    handler.NewExternalHandler(svc, logger.With("component", "external")),
		sessionStore: sessionStore,
		userStore:    userStore,
		familyStore:  familyStore,
		rateLimiter:  middleware.NewRateLimiter(),
		logger:       logger,
	}
}

// SessionStore returns the session store for cleanup tasks.
func (s *Server) SessionStore() *store.SessionStore {
	return s.sessionStore
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /api/auth/login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("POST /api/families", s.rateLimitedHandler(s.familyH.Create))
	outerMux.HandleFunc("POST /api/users", s.rateLimitedHandler(s.userH.Create))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// External integration surface, scoped by family API key
	externalMux := http.NewServeMux()
	externalMux.HandleFunc("GET /api/external/chores", s.externalH.Chores)
	externalMux.HandleFunc("POST /api/external/chores/{id}/complete", s.externalH.Complete)
	apiKeyMiddleware := middleware.RequireAPIKey(s.familyStore)
	outerMux.Handle("/api/external/", apiKeyMiddleware(externalMux))

	// Session-authenticated routes
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)
	authMiddleware := middleware.RequireAuth(s.sessionStore, s.userStore)
	outerMux.Handle("/", authMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

// parentOnly wraps a handler with the parent-role check. RequireAuth has
// already run by the time these routes are reached.
func parentOnly(h http.HandlerFunc) http.Handler {
	return middleware.RequireParent(h)
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/logout", s.authH.Logout)
	mux.HandleFunc("GET /api/auth/me", s.authH.Me)

	mux.HandleFunc("GET /api/families/{id}", s.familyH.Get)
	mux.HandleFunc("GET /api/families/{id}/members", s.familyH.Members)
	mux.HandleFunc("GET /api/users", s.userH.List)

	mux.HandleFunc("GET /api/chores", s.choreH.List)
	mux.Handle("POST /api/chores", parentOnly(s.choreH.Create))
	mux.Handle("PUT /api/chores/{id}", parentOnly(s.choreH.Update))
	mux.Handle("DELETE /api/chores/{id}", parentOnly(s.choreH.Delete))
	mux.HandleFunc("POST /api/chores/{id}/complete", s.choreH.Complete)

	mux.HandleFunc("GET /api/rewards", s.rewardH.List)
	mux.Handle("POST /api/rewards", parentOnly(s.rewardH.Create))
	mux.Handle("PUT /api/rewards/{id}", parentOnly(s.rewardH.Update))
	mux.Handle("DELETE /api/rewards/{id}", parentOnly(s.rewardH.Delete))

	mux.HandleFunc("GET /api/redemptions", s.redemptionH.List)
	mux.HandleFunc("POST /api/redemptions", s.redemptionH.Create)
	mux.Handle("POST /api/redemptions/{id}/approve", parentOnly(s.redemptionH.Approve))

	mux.HandleFunc("GET /api/achievements", s.achievementH.List)
	mux.HandleFunc("GET /api/users/{id}/achievements", s.achievementH.ListForUser)
	mux.Handle("POST /api/users/{id}/achievements", parentOnly(s.achievementH.Award))

	// WebSocket for live family sync
	mux.HandleFunc("GET /ws", ws.Handler(s.hub, s.logger.With("component", "websocket")))
}
