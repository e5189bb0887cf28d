package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/wxpress/salesboard/internal/gateway"
	"github.com/wxpress/salesboard/internal/gateway/middleware"
	"github.com/wxpress/salesboard/internal/modules/auth"
	"github.com/wxpress/salesboard/internal/modules/board"
	"github.com/wxpress/salesboard/internal/modules/notify"
	"github.com/wxpress/salesboard/internal/modules/report"
	s3storage "github.com/wxpress/salesboard/internal/modules/report/infrastructure/s3"
	"github.com/wxpress/salesboard/internal/shared/infrastructure/config"
	"github.com/wxpress/salesboard/internal/shared/infrastructure/database"
	"github.com/wxpress/salesboard/pkg/migration"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	log.Println("Connecting to DB...")
	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()
	log.Println("Database connected")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Database.User, cfg.Database.Password,
		cfg.Database.Host, cfg.Database.Port,
		cfg.Database.DBName, cfg.Database.SSLMode)

	migrationLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if err := migration.AutoMigrate(dbURL, "migrations", migrationLogger); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis is optional: without it the SMS dispatcher just skips
	// duplicate suppression.
	rdb := redisClientOrNil(cfg)

	// Toast notifications + websocket fan-out
	notifyModule := notify.NewModule()
	defer notifyModule.Shutdown()

	// Report archive (local directory or S3/MinIO)
	reportModule, err := report.NewModule(ctx, report.Config{
		UseS3:     cfg.Reports.UseS3,
		LocalPath: cfg.Reports.LocalPath,
		S3: s3storage.S3Config{
			BucketName: cfg.Reports.S3BucketName,
			Region:     cfg.Reports.S3Region,
			Endpoint:   cfg.Reports.S3Endpoint,
			AccessKey:  cfg.Reports.S3AccessKey,
			SecretKey:  cfg.Reports.S3SecretKey,
			UseSSL:     cfg.Reports.S3UseSSL,
		},
	})
	if err != nil {
		log.Fatalf("Failed to set up report archive: %v", err)
	}

	authModule := auth.NewModule(db, cfg.JWT.Secret, cfg.JWT.Expiry)

	boardModule := board.NewModule(db, rdb, notifyModule.Sink(), reportModule.Service(), board.SMSConfig{
		FunctionURL: cfg.SMS.FunctionURL,
		Token:       cfg.SMS.Token,
		Cooldown:    cfg.SMS.Cooldown,
	}, cfg.Refresh.Interval)

	// Background refresh keeps the in-memory board close to the database
	// even when nobody is writing through this process.
	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go boardModule.Refresher().Run(refreshCtx)
	defer boardModule.Refresher().Stop()

	mux := gateway.SetupRoutes(gateway.RouterConfig{
		AuthHandler:    authModule.HTTPHandler(),
		AuthMiddleware: middleware.NewAuthMiddleware(cfg.JWT.Secret),
		BoardHandler:   boardModule.HTTPHandler(),
		NotifyHandler:  notifyModule.HTTPHandler(),
	})

	handler := middleware.CORSMiddleware(middleware.PrometheusMiddleware(mux), cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Port, handler)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// redisClientOrNil connects to redis when enabled; a connection failure is
// logged and tolerated rather than blocking startup.
func redisClientOrNil(cfg config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}
	client, err := database.NewRedis(cfg.Redis.RedisConfig)
	if err != nil {
		log.Printf("Redis unavailable, SMS cooldown disabled: %v", err)
		return nil
	}
	return client
}
