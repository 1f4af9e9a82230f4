package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "prunplan.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "prunplan"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "prunplan"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// FIO API defaults
	if cfg.FIO.BaseURL == "" {
		cfg.FIO.BaseURL = "https://rest.fnar.net"
	}
	if cfg.FIO.Timeout == 0 {
		cfg.FIO.Timeout = 30 * time.Second
	}
	if cfg.FIO.RateLimit.Requests == 0 {
		cfg.FIO.RateLimit.Requests = 2
	}
	if cfg.FIO.RateLimit.Burst == 0 {
		cfg.FIO.RateLimit.Burst = 5
	}
	if cfg.FIO.Retry.MaxAttempts == 0 {
		cfg.FIO.Retry.MaxAttempts = 3
	}
	if cfg.FIO.Retry.BackoffBase == 0 {
		cfg.FIO.Retry.BackoffBase = time.Second
	}

	// Game data staleness defaults
	if cfg.GameData.StaleMinutesMaterials == 0 {
		cfg.GameData.StaleMinutesMaterials = 1440
	}
	if cfg.GameData.StaleMinutesBuildings == 0 {
		cfg.GameData.StaleMinutesBuildings = 1440
	}
	if cfg.GameData.StaleMinutesRecipes == 0 {
		cfg.GameData.StaleMinutesRecipes = 1440
	}
	if cfg.GameData.StaleMinutesExchanges == 0 {
		cfg.GameData.StaleMinutesExchanges = 60
	}
	if cfg.GameData.StaleMinutesPlanets == 0 {
		cfg.GameData.StaleMinutesPlanets = 720
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}
