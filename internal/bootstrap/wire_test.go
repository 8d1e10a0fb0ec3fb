package bootstrap_test

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-conciliacion/internal/bootstrap"
	"github.com/jhoicas/Inventario-conciliacion/pkg/config"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

func TestWire_RESTSource(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	svc, err := bootstrap.Wire(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer svc.Close()

	assert.NotNil(t, svc.History)
	assert.NotNil(t, svc.Status)
	assert.NotNil(t, svc.Bulk)
	assert.NotNil(t, svc.Deleter, "la fuente REST admite borrados")
	_, hasRun := svc.Bulk.Progress()
	assert.False(t, hasRun)
}

func TestWire_RejectsInvalidPolicy(t *testing.T) {
	v := viper.New()
	v.Set("STATUS_PRECEDENCE", "link,link")
	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	_, err = bootstrap.Wire(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
