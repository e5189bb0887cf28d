package board

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/wxpress/salesboard/internal/modules/board/application"
	"github.com/wxpress/salesboard/internal/modules/board/infrastructure/persistence/postgres"
	"github.com/wxpress/salesboard/internal/modules/board/infrastructure/sms"
	board_http "github.com/wxpress/salesboard/internal/modules/board/interfaces/http"
	report "github.com/wxpress/salesboard/internal/modules/report/application"
)

// SMSConfig configures the assignment SMS side channel.
type SMSConfig struct {
	FunctionURL string
	Token       string
	Cooldown    time.Duration
}

type Module struct {
	store     *application.Store
	refresher *application.Refresher
	handler   *board_http.BoardHandler
}

// NewModule wires the board: postgres repositories, the snapshot store,
// the refresher, the SMS dispatcher and the HTTP handler. redisClient may
// be nil, which disables SMS duplicate suppression.
func NewModule(db *sqlx.DB, redisClient *redis.Client, notifier application.Notifier, archive *report.ArchiveService, smsCfg SMSConfig, refreshInterval time.Duration) *Module {
	store := application.NewStore(
		postgres.NewPgMessageRepository(db),
		postgres.NewPgTeamMemberRepository(db),
		postgres.NewPgPriorityAlertRepository(db),
	)

	var guard sms.Guard
	if redisClient != nil {
		guard = sms.NewRedisCooldown(redisClient, smsCfg.Cooldown)
	}
	dispatcher := sms.NewDispatcher(smsCfg.FunctionURL, smsCfg.Token, guard)

	assigner := application.NewAssigner(store, dispatcher, notifier)
	refresher := application.NewRefresher(store, refreshInterval)
	handler := board_http.NewBoardHandler(store, assigner, notifier, archive)

	return &Module{store: store, refresher: refresher, handler: handler}
}

func (m *Module) Store() *application.Store {
	return m.store
}

func (m *Module) Refresher() *application.Refresher {
	return m.refresher
}

func (m *Module) HTTPHandler() *board_http.BoardHandler {
	return m.handler
}
