package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/semanalapp/semanal/internal/backup"
	"github.com/semanalapp/semanal/internal/handler"
	"github.com/semanalapp/semanal/internal/middleware"
	"github.com/semanalapp/semanal/internal/store"
	ws "github.com/semanalapp/semanal/internal/websocket"
)

type Server struct {
	db            *sql.DB
	hub           *ws.Hub
	planH         *handler.PlanHandler
	shoppingH     *handler.ShoppingHandler
	rateLimiter   *middleware.RateLimiter
	backupManager *backup.Manager
	logger        *slog.Logger
}

func New(db *sql.DB, backupCfg backup.Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	planStore := store.NewPlanStore(db)
	shoppingStore := store.NewShoppingStore(db)

	backupMgr := backup.NewManager(backupCfg, db, func(s backup.Status) {
		hub.Broadcast(ws.Message{
			Type:   "backup_status",
			Entity: ws.EntityBackup,
			Action: string(s.State),
			Extra: map[string]any{
				"in_progress": s.InProgress,
				"error":       s.Error,
			},
		})
	}, logger.With("component", "backup"))

	return &Server{
		db:            db,
		hub:           hub,
		planH:         handler.NewPlanHandler(planStore, shoppingStore, hub, logger.With("component", "plan")),
		shoppingH:     handler.NewShoppingHandler(shoppingStore, planStore, hub, logger.With("component", "shopping")),
		rateLimiter:   middleware.NewRateLimiter(),
		backupManager: backupMgr,
		logger:        logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

// BackupManager returns the backup manager.
func (s *Server) BackupManager() *backup.Manager {
	return s.backupManager
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)

	// Plan submission rebuilds the whole list, so it gets a rate limit.
	mux.HandleFunc("POST /api/plans", s.rateLimitedHandler(s.planH.Submit))
	mux.HandleFunc("GET /api/plans", s.planH.List)
	mux.HandleFunc("GET /api/plans/{id}", s.planH.Get)
	mux.HandleFunc("PUT /api/plans/{id}", s.planH.Update)
	mux.HandleFunc("DELETE /api/plans/{id}", s.planH.Delete)
	mux.HandleFunc("GET /api/plans/{id}/shopping-list", s.planH.ShoppingList)

	mux.HandleFunc("GET /api/shopping-list", s.shoppingH.List)
	mux.HandleFunc("GET /api/shopping-list/export", s.shoppingH.ExportCSV)
	mux.HandleFunc("POST /api/shopping-list/items/{id}/check", s.shoppingH.ToggleChecked)
	mux.HandleFunc("DELETE /api/shopping-list/items/{id}", s.shoppingH.DeleteItem)
	mux.HandleFunc("POST /api/shopping-list/clear-checked", s.shoppingH.ClearChecked)
	mux.HandleFunc("POST /api/shopping-list/clear", s.shoppingH.Clear)

	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.logger.With("component", "websocket")))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
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
