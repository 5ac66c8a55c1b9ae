package config

// GameConfig holds the match rules
type GameConfig struct {
	// Berths per port
	Berths int `mapstructure:"berths" validate:"min=1"`

	// Cranes per port
	Cranes int `mapstructure:"cranes" validate:"min=1"`

	// Baseline crane processing speed (1.0 = 10 containers per turn)
	CraneSpeed float64 `mapstructure:"crane_speed" validate:"gt=0"`

	// Turn count at which the match ends
	MaxTurns int `mapstructure:"max_turns" validate:"min=1"`

	// Ships arrive every SpawnInterval-th completed turn
	SpawnInterval int `mapstructure:"spawn_interval" validate:"min=1"`

	// Ships spawned per port at each interval
	SpawnCount int `mapstructure:"spawn_count" validate:"min=0"`

	// Per-turn probability of a random catalogue event
	EventProbability float64 `mapstructure:"event_probability" validate:"gte=0,lte=1"`
}

// SetDefaults fills any zero-valued config fields with defaults
func SetDefaults(cfg *Config) {
	if cfg.Game.Berths == 0 {
		cfg.Game.Berths = 2
	}
	if cfg.Game.Cranes == 0 {
		cfg.Game.Cranes = 2
	}
	if cfg.Game.CraneSpeed == 0 {
		cfg.Game.CraneSpeed = 1.0
	}
	if cfg.Game.MaxTurns == 0 {
		cfg.Game.MaxTurns = 10
	}
	if cfg.Game.SpawnInterval == 0 {
		cfg.Game.SpawnInterval = 3
	}
	if cfg.Game.SpawnCount == 0 {
		cfg.Game.SpawnCount = 2
	}
	if cfg.Game.EventProbability == 0 {
		cfg.Game.EventProbability = 0.3
	}

	if cfg.MCTS.Simulations == 0 {
		cfg.MCTS.Simulations = 1000
	}
	if cfg.MCTS.ExplorationConstant == 0 {
		cfg.MCTS.ExplorationConstant = 1.41
	}
	if cfg.MCTS.MaxDepth == 0 {
		cfg.MCTS.MaxDepth = 50
	}
	if cfg.MCTS.MaxActionsPerTurn == 0 {
		cfg.MCTS.MaxActionsPerTurn = 3
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}
