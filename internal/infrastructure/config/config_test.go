package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/harbormaster-go/internal/infrastructure/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()

	require.NoError(t, config.ValidateConfig(cfg))
	assert.Equal(t, 2, cfg.Game.Berths)
	assert.Equal(t, 2, cfg.Game.Cranes)
	assert.Equal(t, 10, cfg.Game.MaxTurns)
	assert.Equal(t, 3, cfg.Game.SpawnInterval)
	assert.Equal(t, 1000, cfg.MCTS.Simulations)
}

func TestValidateConfig_RejectsOutOfRangeProbability(t *testing.T) {
	cfg := config.Default()
	cfg.Game.EventProbability = 1.5

	err := config.ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "EventProbability")
}

func TestValidateConfig_RejectsBadLogLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "noisy"

	err := config.ValidateConfig(cfg)

	require.Error(t, err)
}

func TestSetDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	cfg := &config.Config{}
	cfg.Game.MaxTurns = 20

	config.SetDefaults(cfg)

	assert.Equal(t, 20, cfg.Game.MaxTurns)
	assert.Equal(t, 2, cfg.Game.Berths)
}
