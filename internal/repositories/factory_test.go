package repositories

import (
	"context"
	"testing"

	"github.com/SscSPs/camp_ledger_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Memory(t *testing.T) {
	provider, err := NewProvider(context.Background(), &config.Config{StorageBackend: config.BackendMemory}, nil)
	require.NoError(t, err)
	defer provider.Close()

	assert.NotNil(t, provider.ClientRepo)
	assert.NotNil(t, provider.ExpenseRepo)
	assert.NotNil(t, provider.UserRepo)
	assert.NoError(t, provider.Health.Ping(context.Background()))
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(context.Background(), &config.Config{StorageBackend: "sqlite"}, nil)
	assert.Error(t, err)
}

func TestNewProvider_PostgresWithoutURL(t *testing.T) {
	_, err := NewProvider(context.Background(), &config.Config{StorageBackend: config.BackendPostgres}, nil)
	assert.Error(t, err)
}
