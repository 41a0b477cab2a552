package migration

import (
	"embed"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"secretsanta/internal/infrastructure/persistence/models"
	"secretsanta/internal/shared/constants"
	"secretsanta/internal/shared/logger"
)

//go:embed scripts
var scriptsFS embed.FS

// Models lists every persistence model owned by the application.
func Models() []interface{} {
	return []interface{}{
		&models.PoolModel{},
		&models.EntryModel{},
	}
}

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager uses gorm auto migration in development and the versioned
// scripts everywhere else.
func NewManager(environment, driver string) (*Manager, error) {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvTest, constants.EnvProduction:
		gooseStrategy, err := NewGooseStrategy(driver)
		if err != nil {
			return nil, err
		}
		strategy = gooseStrategy
	default:
		strategy = NewGormAutoMigrateStrategy(Models()...)
	}

	return NewManagerWithStrategy(strategy), nil
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.WithComponent("migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
