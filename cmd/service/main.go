package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/2beens/fittracker/internal"
	"github.com/2beens/fittracker/internal/config"
	"github.com/2beens/fittracker/internal/logging"
	"github.com/2beens/fittracker/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	if err := run(*env, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "fittracker: %s\n", err)
		os.Exit(1)
	}
}

func run(env, configPath string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		return fmt.Errorf("load secrets: %w", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.SentryDSN,
		SentryServerName: "fittracker-service",
	})
	log.Warnf("---->> fittracker starting in [%s] environment, port %d", cfg.Environment, cfg.Port)

	versionInfo := buildVersion()
	log.Debugf("running version: [%s]", versionInfo)

	warnMissingSecrets(secrets)

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:                  cfg,
		Secrets:                 secrets,
		VersionInfo:             versionInfo,
		HoneycombTracingEnabled: secrets.HoneycombEnabled,
	})
	if err != nil {
		return fmt.Errorf("new server: %w", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnln("shutdown signal received, stopping ...")

	return server.GracefulShutdown()
}

func warnMissingSecrets(secrets *config.Secrets) {
	if secrets.DBPassword == "" {
		log.Warnln("db password not set. use FITTRACKER_DB_PASSWORD")
	}
	if secrets.RedisPassword == "" {
		log.Warnln("redis password not set. use FITTRACKER_REDIS_PASS")
	}
	if secrets.HoneycombEnabled && secrets.HoneycombAPIKey == "" {
		log.Warnln("honeycomb enabled, but HONEYCOMB_API_KEY not set")
	}
}

// buildVersion prefers the VCS revision stamped into the binary, then falls back to git in the working dir.
func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}

	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		log.Tracef("git rev-parse: %s", err)
		return ""
	}
	return strings.TrimSpace(pkg.BytesToString(out))
}
