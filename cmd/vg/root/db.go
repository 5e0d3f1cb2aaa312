package root

import (
	"context"

	"github.com/Cosmos506/Gamification-life/internal/config"
	"github.com/Cosmos506/Gamification-life/internal/storage"
	"github.com/Cosmos506/Gamification-life/internal/tracker"
)

// loadConfig resolves the config file and env, then applies the flags.
func (g *globalFlags) loadConfig() (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if g.dbPath != "" {
		cfg.DBPath = g.dbPath
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	return cfg, cfg.Validate()
}

func (g *globalFlags) openService(ctx context.Context) (*tracker.Service, func(), error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := cfg.NewLogger()

	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("database opened", "path", cfg.DBPath)

	svc := tracker.NewService(db,
		tracker.WithLogger(logger),
		tracker.WithMaxLevel(cfg.MaxLevel),
	)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup, nil
}
