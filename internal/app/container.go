package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"crewmatch/internal/ai"
	"crewmatch/internal/ai/gemini"
	"crewmatch/internal/config"
	"crewmatch/internal/database"
	"crewmatch/internal/database/migration"
	dbpostgres "crewmatch/internal/database/postgres"
	"crewmatch/internal/infrastructure/cache"
	"crewmatch/internal/ws"
)

type Container struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Hub      *ws.Hub
	WS       *ws.Handler
	Strategy ai.Strategy
	Logger   *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	redis := cache.NewRedis(logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	strategy, err := buildStrategy(ctx, cfg.AI, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config:   cfg,
		DB:       db,
		Cache:    redis,
		Hub:      hub,
		WS:       ws.NewHandler(hub, logger),
		Strategy: strategy,
		Logger:   logger,
	}, nil
}

func buildStrategy(ctx context.Context, cfg config.AIConfig, logger *log.Logger) (ai.Strategy, error) {
	if cfg.MatchStrategy != config.StrategyAI {
		return ai.NewAlgorithmic(), nil
	}

	generator, err := gemini.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("init gemini: %w", err)
	}
	logger.Printf("Match strategy | strategy=%s model=%s", cfg.MatchStrategy, generator.Model())
	return gemini.NewScorer(generator, logger), nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
