// Package main seeds an empty fittracker database with the starter exercise catalog,
// workout templates and optionally a demo user with one logged workout.
package main

import (
	"context"
	"flag"

	"github.com/2beens/fittracker/internal/config"
	"github.com/2beens/fittracker/internal/db"
	"github.com/2beens/fittracker/internal/exercises"
	"github.com/2beens/fittracker/internal/logging"
	"github.com/2beens/fittracker/internal/seed"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/templates"
	"github.com/2beens/fittracker/internal/users"
	"github.com/2beens/fittracker/internal/workouts"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	demoUser := flag.Bool("demo-user", false, "also create the demo user with a sample workout")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx := context.Background()
	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		log.Fatalf("load secrets: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: secrets.DBPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.Migrate(ctx, dbPool); err != nil {
		log.Fatalf("db migrate: %s", err)
	}

	metricsManager := metrics.NewManager("fittracker", "seed", prometheus.NewRegistry())
	workoutsRepo := workouts.NewRepo(dbPool)
	seeder := seed.NewSeeder(
		exercises.NewRepo(dbPool),
		templates.NewService(templates.NewRepo(dbPool), workoutsRepo, metricsManager),
		users.NewService(users.NewRepo(dbPool), metricsManager, cfg.PasswordHashCost),
		workouts.NewService(workoutsRepo, metricsManager),
	)

	res, err := seeder.Seed(ctx, *demoUser)
	if err != nil {
		log.Fatalf("seed: %s", err)
	}

	log.Infof("seeding done: %d exercises, %d templates created", res.ExercisesCreated, res.TemplatesCreated)
	if res.DemoUser != nil {
		log.Infof("demo user: %s / %s", res.DemoUser.Username, seed.DemoPassword)
	}
}
