package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wxpress/salesboard/internal/gateway/middleware"
	auth_http "github.com/wxpress/salesboard/internal/modules/auth/interfaces/http"
	board_http "github.com/wxpress/salesboard/internal/modules/board/interfaces/http"
	notify_http "github.com/wxpress/salesboard/internal/modules/notify/interfaces/http"
)

// RouterConfig holds the handlers and middleware needed for routing.
type RouterConfig struct {
	AuthHandler    *auth_http.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	BoardHandler   *board_http.BoardHandler
	NotifyHandler  *notify_http.NotifyHandler
}

// SetupRoutes creates and configures all application routes. Reads stay
// public: the wall displays are unauthenticated viewers. Everything that
// writes, and the admin views, require a staff session.
func SetupRoutes(config RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Auth Routes
	mux.HandleFunc("POST /login", config.AuthHandler.Login)
	mux.Handle("GET /me", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.AuthHandler.Me)))

	// Board Routes
	mux.HandleFunc("GET /board", config.BoardHandler.Board)
	mux.HandleFunc("GET /messages", config.BoardHandler.ListMessages)
	mux.Handle("POST /messages", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.BoardHandler.CreateMessage)))
	mux.Handle("PATCH /messages/{id}", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.BoardHandler.UpdateMessage)))
	mux.Handle("DELETE /messages/{id}", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.BoardHandler.DeleteMessage)))
	mux.Handle("DELETE /messages", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.BoardHandler.ClearAllMessages)))
	mux.Handle("POST /messages/{id}/assign", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.BoardHandler.AssignMessage)))
	mux.Handle("POST /messages/{id}/unassign", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.BoardHandler.UnassignMessage)))
	mux.HandleFunc("POST /messages/{id}/read", config.BoardHandler.MarkRead)
	mux.HandleFunc("GET /team-members", config.BoardHandler.ListTeamMembers)
	mux.HandleFunc("GET /priority-alert", config.BoardHandler.GetPriorityAlert)
	mux.Handle("PUT /priority-alert", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.BoardHandler.PutPriorityAlert)))

	// Admin Routes
	mux.Handle("GET /admin/report", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.BoardHandler.AdminReport)))
	mux.Handle("GET /admin/report/export", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.BoardHandler.ExportReport)))

	// Notification Routes
	mux.HandleFunc("GET /notifications", config.NotifyHandler.List)
	mux.HandleFunc("DELETE /notifications/{id}", config.NotifyHandler.Dismiss)
	mux.HandleFunc("GET /ws", config.NotifyHandler.Subscribe)

	return mux
}
