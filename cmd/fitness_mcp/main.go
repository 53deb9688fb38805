// Package main runs the fittracker MCP server over stdio (for local MCP clients).
// The same MCP server is also mounted on the main service at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/fittracker/internal/config"
	"github.com/2beens/fittracker/internal/db"
	"github.com/2beens/fittracker/internal/exercises"
	fitnessmcp "github.com/2beens/fittracker/internal/mcp"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/templates"
	"github.com/2beens/fittracker/internal/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		log.Fatalf("load secrets: %v", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     secrets.DBPassword,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	// no metrics listener in stdio mode
	metricsManager := metrics.NewManager("fittracker", "mcp_stdio", prometheus.NewRegistry())

	workoutsRepo := workouts.NewRepo(dbPool)
	handler := fitnessmcp.NewHandler(
		exercises.NewRepo(dbPool),
		templates.NewService(templates.NewRepo(dbPool), workoutsRepo, metricsManager),
		workouts.NewService(workoutsRepo, metricsManager),
	)
	server := fitnessmcp.NewServer(handler)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
