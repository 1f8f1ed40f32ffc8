package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"mainevent/bot"
	"mainevent/bot/features/fightcard"
	"mainevent/cache"
	"mainevent/config"
	"mainevent/database"
	"mainevent/events"
	"mainevent/infrastructure"
	"mainevent/metrics"
	"mainevent/repository"
	"mainevent/repository/memory"
	"mainevent/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

// ConfigureLogging sets the logrus level and formatter from config
func ConfigureLogging(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("Unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)

	if cfg.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

// storage is the ledger backend chosen by config
type storage struct {
	uowFactory service.UnitOfWorkFactory
	health     metrics.HealthFunc
	close      func()
}

func openStorage(ctx context.Context, cfg *config.Config, eventBus *events.Bus) (*storage, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		log.Warn("Using in-memory storage, the ledger is lost on restart")
		return &storage{
			uowFactory: memory.NewUnitOfWorkFactory(memory.NewStore(), eventBus),
			close:      func() {},
		}, nil
	default:
		db, err := database.NewConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &storage{
			uowFactory: repository.NewUnitOfWorkFactory(db, eventBus),
			health:     db.Health,
			close:      db.Close,
		}, nil
	}
}

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()
	ConfigureLogging(cfg)

	log.WithFields(log.Fields{
		"environment": cfg.Environment,
		"storage":     cfg.StorageBackend,
	}).Info("Starting mainevent")

	eventBus := events.NewBus()

	store, err := openStorage(ctx, cfg, eventBus)
	if err != nil {
		return err
	}
	defer store.close()

	guard := service.NewAuthorizationGuard(cfg.AuthorityID)
	services := bot.Services{
		Events:     service.NewEventService(store.uowFactory, guard),
		Bets:       service.NewBetService(store.uowFactory),
		Settlement: service.NewSettlementService(store.uowFactory, guard),
		Custody:    service.NewCustodyService(store.uowFactory, guard),
	}

	if cfg.NATSServers != "" {
		natsClient := infrastructure.NewNATSClient(cfg.NATSServers)
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err := natsClient.Connect(connectCtx)
		cancel()
		if err != nil {
			return err
		}
		defer natsClient.Close()

		mapper := infrastructure.NewEventSubjectMapper()
		if err := natsClient.EnsureStream(infrastructure.LedgerStreamName, mapper.GetAllSubjects()); err != nil {
			return err
		}
		infrastructure.NewNATSEventPublisher(natsClient, mapper).Attach(eventBus)
	}

	var reader fightcard.EventReader
	if cfg.RedisAddr != "" {
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return err
		}
		defer rdb.Close()

		eventCache := cache.NewEventCache(rdb, cfg.EventCacheTTL)
		eventCache.Attach(eventBus)
		reader = cache.NewReadThrough(eventCache, services.Events)
		log.WithField("addr", cfg.RedisAddr).Info("Event cache enabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	ledgerMetrics := metrics.New(registry)
	ledgerMetrics.Subscribe(eventBus)
	metricsServer := metrics.StartServer(cfg.MetricsPort, metrics.NewHandler(registry, store.health))

	botConfig := bot.Config{
		Token:             cfg.DiscordToken,
		GuildID:           cfg.DiscordGuildID,
		AnnounceChannelID: cfg.AnnounceChannelID,
	}
	discordBot, err := bot.New(botConfig, services, reader, ledgerMetrics, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	log.WithField("authority", guard.Authority()).Info("Bot is running")
	<-ctx.Done()

	log.Info("Shutting down")
	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Error stopping metrics server")
	}

	log.Info("Shutdown completed")
	return nil
}
