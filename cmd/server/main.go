package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/fastadmin/blog-api/internal/api"
	"github.com/fastadmin/blog-api/internal/infrastructure/config"
	"github.com/fastadmin/blog-api/internal/infrastructure/db/postgres"
	redisdb "github.com/fastadmin/blog-api/internal/infrastructure/db/redis"
	"github.com/fastadmin/blog-api/internal/infrastructure/mail"
	"github.com/fastadmin/blog-api/internal/infrastructure/queue"
	"github.com/fastadmin/blog-api/migrations"
	"github.com/fastadmin/blog-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	pgCfg := postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
		SSLMode:  cfg.Postgres.SSLMode,
		MaxConns: cfg.Postgres.MaxConns,
	}
	pool, err := postgres.Connect(ctx, pgCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	// Migrations run through database/sql because goose requires it; the
	// application itself talks to the pool.
	migrationDB, err := sql.Open("pgx", pgCfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("migration connection failed")
	}
	if err := migrations.Migrate(migrationDB); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	_ = migrationDB.Close()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	mailer := mail.NewSMTPMailer(mail.Config{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.Username,
		Password:    cfg.SMTP.Password,
		From:        cfg.SMTP.From,
		FromName:    cfg.SMTP.FromName,
		FrontendURL: cfg.Auth.FrontendURL,
	}, log)

	dispatcher := queue.NewMailDispatcher(cfg.Auth.MailWorkers, mailer, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(pool, rdb, cfg, dispatcher, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
