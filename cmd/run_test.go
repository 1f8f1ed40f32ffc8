package cmd

import (
	"context"
	"testing"

	"mainevent/config"
	"mainevent/events"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	cfg := config.NewTestConfig()
	ConfigureLogging(cfg)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.TextFormatter{}, log.StandardLogger().Formatter)

	cfg.LogLevel = "loud"
	cfg.Environment = "production"
	ConfigureLogging(cfg)
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	log.SetFormatter(&log.TextFormatter{})
}

func TestOpenStorage_Memory(t *testing.T) {
	cfg := config.NewTestConfig()

	store, err := openStorage(context.Background(), cfg, events.NewBus())
	require.NoError(t, err)
	defer store.close()

	assert.Nil(t, store.health)

	uow := store.uowFactory.Create()
	require.NoError(t, uow.Begin(context.Background()))
	balance, err := uow.CustodyRepository().Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
	require.NoError(t, uow.Commit())
}
