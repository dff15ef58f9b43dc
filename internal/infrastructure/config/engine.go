package config

// EngineConfig holds turn engine tuning knobs. Gameplay constants carry
// defaults matching the standard ruleset; changing them changes the game.
type EngineConfig struct {
	// SearchBudget caps nodes expanded per wormhole route search
	SearchBudget int `mapstructure:"search_budget" validate:"min=1"`

	// Order intake throttle
	OrderRate  float64 `mapstructure:"order_rate" validate:"gt=0"`
	OrderBurst int     `mapstructure:"order_burst" validate:"min=1"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}
