package di

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipeline-backend/internal/config"
)

func TestInitializeContainer(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)

	container, err := InitializeContainer(cfg)
	require.NoError(t, err)

	assert.NotNil(t, container.Logger)
	assert.NotNil(t, container.Collector)
	assert.NotNil(t, container.Tracing)
	assert.NotNil(t, container.Service)
	assert.NotNil(t, container.Router)
	assert.NotNil(t, container.Router.Setup())

	assert.NoError(t, container.Shutdown(context.Background()))
}
