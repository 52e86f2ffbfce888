package main

import (
	"context"
	"testing"

	"car-api-go/internal/config"
	"car-api-go/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenStore_Memory(t *testing.T) {
	s, cleanup, err := openStore(context.Background(), config.StoreConfig{Backend: config.BackendMemory}, zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	_, ok := s.(*store.MemoryStore)
	assert.True(t, ok)
}

func TestOpenStore_PostgresBadURL(t *testing.T) {
	_, _, err := openStore(context.Background(), config.StoreConfig{
		Backend:     config.BackendPostgres,
		DatabaseURL: "://not-a-url",
	}, zap.NewNop())
	assert.Error(t, err)
}
