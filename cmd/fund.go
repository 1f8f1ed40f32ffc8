package cmd

import (
	"context"
	"fmt"

	"mainevent/config"
	"mainevent/database"
	"mainevent/events"
	"mainevent/repository"
	"mainevent/service"

	log "github.com/sirupsen/logrus"
)

// Fund credits a wallet acting as the configured authority
func Fund(ctx context.Context, identity string, amount int64) error {
	cfg := config.Get()
	ConfigureLogging(cfg)

	if cfg.StorageBackend != config.StoragePostgres {
		return fmt.Errorf("fund requires the %s storage backend", config.StoragePostgres)
	}

	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	uowFactory := repository.NewUnitOfWorkFactory(db, events.NewBus())
	custody := service.NewCustodyService(uowFactory, service.NewAuthorizationGuard(cfg.AuthorityID))

	if err := custody.Fund(ctx, identity, amount, cfg.AuthorityID); err != nil {
		return err
	}

	balance, err := custody.WalletBalance(ctx, identity)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"identity": identity,
		"amount":   amount,
		"balance":  balance,
	}).Info("Wallet funded")
	return nil
}
