package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/peoplehq/people-api/internal/config"
	"github.com/peoplehq/people-api/internal/handler"
	"github.com/peoplehq/people-api/internal/pkg/database"
	"github.com/peoplehq/people-api/internal/repository/postgres"
	"github.com/peoplehq/people-api/internal/service"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Postgres *database.PostgresDB

	PersonRepo    *postgres.PersonRepository
	PersonService *service.PersonService

	PeopleHandler *handler.PeopleHandler
	HealthHandler *handler.HealthHandler
}

func initDependencies(cfg *config.Config, log *zap.Logger) (*Dependencies, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	log.Info("connected to postgres",
		zap.String("host", cfg.Postgres.Host),
		zap.String("database", cfg.Postgres.Database),
	)

	personRepo := postgres.NewPersonRepository(db)
	personService := service.NewPersonService(personRepo)

	return &Dependencies{
		Config:        cfg,
		Logger:        log,
		Postgres:      db,
		PersonRepo:    personRepo,
		PersonService: personService,
		PeopleHandler: handler.NewPeopleHandler(personService, log),
		HealthHandler: handler.NewHealthHandler(db.Pool),
	}, nil
}

// Close releases all held resources in reverse initialization order.
func (d *Dependencies) Close() {
	if d.Postgres != nil {
		d.Postgres.Close()
	}
}
