package gateway_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wxpress/salesboard/internal/gateway"
	"github.com/wxpress/salesboard/internal/gateway/middleware"
	authapp "github.com/wxpress/salesboard/internal/modules/auth/application"
	authpg "github.com/wxpress/salesboard/internal/modules/auth/infrastructure/persistence/postgres"
	authhttp "github.com/wxpress/salesboard/internal/modules/auth/interfaces/http"
	boardapp "github.com/wxpress/salesboard/internal/modules/board/application"
	boardpg "github.com/wxpress/salesboard/internal/modules/board/infrastructure/persistence/postgres"
	boardhttp "github.com/wxpress/salesboard/internal/modules/board/interfaces/http"
	notifyapp "github.com/wxpress/salesboard/internal/modules/notify/application"
	notifyhttp "github.com/wxpress/salesboard/internal/modules/notify/interfaces/http"
)

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	sqlDB, _, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	db := sqlx.NewDb(sqlDB, "sqlmock")

	sink := notifyapp.NewSink(nil)
	t.Cleanup(sink.Close)

	store := boardapp.NewStore(
		boardpg.NewPgMessageRepository(db),
		boardpg.NewPgTeamMemberRepository(db),
		boardpg.NewPgPriorityAlertRepository(db),
	)
	assigner := boardapp.NewAssigner(store, nil, sink)

	return gateway.SetupRoutes(gateway.RouterConfig{
		AuthHandler:    authhttp.NewAuthHandler(authapp.NewAuthService(authpg.NewPgStaffRepository(db), "secret", time.Hour)),
		AuthMiddleware: middleware.NewAuthMiddleware("secret"),
		BoardHandler:   boardhttp.NewBoardHandler(store, assigner, sink, nil),
		NotifyHandler:  notifyhttp.NewNotifyHandler(sink, nil),
	})
}

func TestSetupRoutes_PublicReads(t *testing.T) {
	mux := newMux(t)

	for _, path := range []string{"/health", "/board", "/messages", "/team-members", "/priority-alert", "/notifications", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		assert.Equalf(t, http.StatusOK, w.Code, "GET %s should be public", path)
	}
}

func TestSetupRoutes_WritesRequireAuth(t *testing.T) {
	mux := newMux(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/messages"},
		{http.MethodDelete, "/messages"},
		{http.MethodPatch, "/messages/00000000-0000-0000-0000-000000000001"},
		{http.MethodDelete, "/messages/00000000-0000-0000-0000-000000000001"},
		{http.MethodPost, "/messages/00000000-0000-0000-0000-000000000001/assign"},
		{http.MethodPost, "/messages/00000000-0000-0000-0000-000000000001/unassign"},
		{http.MethodPut, "/priority-alert"},
		{http.MethodGet, "/admin/report"},
		{http.MethodGet, "/admin/report/export"},
		{http.MethodGet, "/me"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		assert.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s should require a staff session", tc.method, tc.path)
	}
}

func TestSetupRoutes_MarkReadIsPublic(t *testing.T) {
	mux := newMux(t)

	// Wall displays post read receipts without a session; a bad body is
	// still rejected by the handler, not the auth layer.
	req := httptest.NewRequest(http.MethodPost, "/messages/00000000-0000-0000-0000-000000000001/read", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
