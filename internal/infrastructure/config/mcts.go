package config

// MCTSConfig holds the AI search budget and constants
type MCTSConfig struct {
	// Simulation count per search; the budget is iteration-based, never
	// wall-clock, so searches terminate deterministically
	Simulations int `mapstructure:"simulations" validate:"min=1"`

	// UCB1 exploration constant (sqrt(2) by default)
	ExplorationConstant float64 `mapstructure:"exploration_constant" validate:"gt=0"`

	// Maximum tree/rollout depth
	MaxDepth int `mapstructure:"max_depth" validate:"min=1"`

	// Upper bound on searched actions the AI applies per turn
	MaxActionsPerTurn int `mapstructure:"max_actions_per_turn" validate:"min=1"`
}
