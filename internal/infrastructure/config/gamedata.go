package config

// GameDataConfig holds the staleness thresholds of the local reference data
// cache, in minutes per entity type
type GameDataConfig struct {
	StaleMinutesMaterials int `mapstructure:"stale_minutes_materials" validate:"min=1"`
	StaleMinutesBuildings int `mapstructure:"stale_minutes_buildings" validate:"min=1"`
	StaleMinutesRecipes   int `mapstructure:"stale_minutes_recipes" validate:"min=1"`
	StaleMinutesExchanges int `mapstructure:"stale_minutes_exchanges" validate:"min=1"`
	StaleMinutesPlanets   int `mapstructure:"stale_minutes_planets" validate:"min=1"`
}
