package persistence

import (
	"time"
)

// PlanModel represents the plans table. The editable plan state is stored
// as its canonical backend serialization in a JSON text column; name and
// planet id are lifted out for listing and filtering.
type PlanModel struct {
	UUID      string    `gorm:"column:uuid;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	PlanetID  string    `gorm:"column:planet_id;not null;index"`
	Data      string    `gorm:"column:data;type:text;not null"` // BackendData JSON
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (PlanModel) TableName() string {
	return "plans"
}

// CXModel represents the cx_configurations table.
type CXModel struct {
	UUID      string    `gorm:"column:uuid;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Data      string    `gorm:"column:data;type:text;not null"` // CX JSON
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (CXModel) TableName() string {
	return "cx_configurations"
}

// MaterialModel represents the materials catalog cache.
type MaterialModel struct {
	Ticker   string  `gorm:"column:ticker;primaryKey"`
	Name     string  `gorm:"column:name;not null"`
	Category string  `gorm:"column:category"`
	Weight   float64 `gorm:"column:weight;not null"`
	Volume   float64 `gorm:"column:volume;not null"`
}

func (MaterialModel) TableName() string {
	return "materials"
}

// BuildingModel represents the buildings catalog cache. Workforce demand
// and construction costs are JSON text.
type BuildingModel struct {
	Ticker    string `gorm:"column:ticker;primaryKey"`
	Name      string `gorm:"column:name;not null"`
	Expertise string `gorm:"column:expertise"`
	AreaCost  int    `gorm:"column:area_cost;not null"`
	Workforce string `gorm:"column:workforce;type:text"` // JSON object tier -> count
	Costs     string `gorm:"column:costs;type:text"`     // JSON array of {ticker, amount}
}

func (BuildingModel) TableName() string {
	return "buildings"
}

// RecipeModel represents the recipes catalog cache. Inputs and outputs are
// JSON text.
type RecipeModel struct {
	RecipeID       string `gorm:"column:recipe_id;primaryKey"`
	BuildingTicker string `gorm:"column:building_ticker;not null;index"`
	TimeMs         int64  `gorm:"column:time_ms;not null"`
	Inputs         string `gorm:"column:inputs;type:text"`
	Outputs        string `gorm:"column:outputs;type:text"`
}

func (RecipeModel) TableName() string {
	return "recipes"
}

// ExchangeModel represents the exchange price cache, one row per
// "<MAT>.<CODE>" ticker id.
type ExchangeModel struct {
	TickerID     string  `gorm:"column:ticker_id;primaryKey"`
	Ask          float64 `gorm:"column:ask;not null"`
	Bid          float64 `gorm:"column:bid;not null"`
	PriceAverage float64 `gorm:"column:price_average;not null"`
}

func (ExchangeModel) TableName() string {
	return "exchanges"
}

// PlanetModel represents the per-planet cache. Resources are JSON text.
type PlanetModel struct {
	NaturalID   string  `gorm:"column:natural_id;primaryKey"`
	Name        string  `gorm:"column:name;not null"`
	Surface     int     `gorm:"column:surface;not null;default:0"` // 0 or 1 (SQLite compatible)
	Gravity     float64 `gorm:"column:gravity;not null"`
	Pressure    float64 `gorm:"column:pressure;not null"`
	Temperature float64 `gorm:"column:temperature;not null"`
	COGCProgram string  `gorm:"column:cogc_program"`
	Resources   string  `gorm:"column:resources;type:text"`
}

func (PlanetModel) TableName() string {
	return "planets"
}

// RefreshModel tracks when each cached entity was last refreshed.
type RefreshModel struct {
	Entity      string    `gorm:"column:entity;primaryKey"`
	RefreshedAt time.Time `gorm:"column:refreshed_at;not null"`
}

func (RefreshModel) TableName() string {
	return "gamedata_refreshes"
}
