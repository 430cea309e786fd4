package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shadowbay/marketkit/modules/account"
	"github.com/shadowbay/marketkit/modules/account/postgres"
	"github.com/shadowbay/marketkit/pkg/config"
	"github.com/shadowbay/marketkit/pkg/logger"
	"github.com/shadowbay/marketkit/pkg/pg"
	"github.com/shadowbay/marketkit/pkg/secrets"
	"github.com/shadowbay/marketkit/pkg/sessiontoken"
)

// The sweeper runs as its own process, replacing the daily cron job
// that lifts expired bans.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		log.Fatalf("failed to load logger config: %v", err)
	}
	slogger := logger.NewFromConfig(logCfg)

	var pgCfg pg.Config
	if err := config.Load(&pgCfg); err != nil {
		log.Fatalf("failed to load postgres config: %v", err)
	}
	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, postgres.Migrations, "migrations", pgCfg, slogger); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	var secretsCfg secrets.Config
	if err := config.Load(&secretsCfg); err != nil {
		log.Fatalf("failed to load secrets config: %v", err)
	}
	codec, err := secrets.NewFromConfig(secretsCfg)
	if err != nil {
		log.Fatalf("failed to create secret codec: %v", err)
	}

	var sessionCfg sessiontoken.Config
	if err := config.Load(&sessionCfg); err != nil {
		log.Fatalf("failed to load session config: %v", err)
	}
	issuer, err := sessiontoken.NewFromConfig(sessionCfg)
	if err != nil {
		log.Fatalf("failed to create session issuer: %v", err)
	}

	manager, err := account.New(postgres.NewRepository(pool), codec, issuer,
		account.WithLogger(slogger),
	)
	if err != nil {
		log.Fatalf("failed to create account manager: %v", err)
	}

	sweeper := account.NewSweeper(manager, account.WithSweeperLogger(slogger))
	if err := sweeper.Run(ctx); !errors.Is(err, context.Canceled) {
		log.Fatalf("sweeper stopped: %v", err)
	}
}
