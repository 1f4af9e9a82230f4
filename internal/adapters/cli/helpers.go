package cli

import (
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/prunplan/internal/adapters/api"
	"github.com/andrescamacho/prunplan/internal/adapters/persistence"
	appgamedata "github.com/andrescamacho/prunplan/internal/application/gamedata"
	"github.com/andrescamacho/prunplan/internal/infrastructure/config"
	"github.com/andrescamacho/prunplan/internal/infrastructure/database"
)

// environment bundles the wiring every command needs: config, database,
// repositories and the upstream FIO client.
type environment struct {
	cfg     *config.Config
	db      *gorm.DB
	gameRepo *persistence.GormGameDataRepository
	planRepo *persistence.GormPlanRepository
	cxRepo   *persistence.GormCXRepository
	source   *api.FIOClient
}

// openEnvironment loads config, opens the database, runs migrations and
// constructs the repositories. The caller closes the database.
func openEnvironment(configPath string) (*environment, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, err
	}

	source := api.NewFIOClientWithConfig(
		cfg.FIO.BaseURL,
		cfg.FIO.Timeout,
		cfg.FIO.RateLimit.Requests,
		cfg.FIO.RateLimit.Burst,
		cfg.FIO.Retry.MaxAttempts,
		cfg.FIO.Retry.BackoffBase,
	)

	return &environment{
		cfg:      cfg,
		db:       db,
		gameRepo: persistence.NewGormGameDataRepository(db),
		planRepo: persistence.NewGormPlanRepository(db),
		cxRepo:   persistence.NewGormCXRepository(db),
		source:   source,
	}, nil
}

func (e *environment) close() {
	_ = database.Close(e.db)
}

// thresholds converts the configured staleness minutes into durations.
func (e *environment) thresholds() appgamedata.Thresholds {
	gd := e.cfg.GameData
	return appgamedata.Thresholds{
		Materials: time.Duration(gd.StaleMinutesMaterials) * time.Minute,
		Buildings: time.Duration(gd.StaleMinutesBuildings) * time.Minute,
		Recipes:   time.Duration(gd.StaleMinutesRecipes) * time.Minute,
		Exchanges: time.Duration(gd.StaleMinutesExchanges) * time.Minute,
		Planets:   time.Duration(gd.StaleMinutesPlanets) * time.Minute,
	}
}

// refreshService builds the staleness-policy refresher over the local cache.
func (e *environment) refreshService() *appgamedata.RefreshService {
	return appgamedata.NewRefreshService(e.gameRepo, e.source, e.thresholds())
}

// store builds the in-memory reference data view backed by the local cache.
func (e *environment) store() *appgamedata.Store {
	return appgamedata.NewStore(e.gameRepo, e.source)
}
