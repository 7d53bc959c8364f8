package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/2beens/liftlog/internal"
	"github.com/2beens/liftlog/internal/config"
	"github.com/2beens/liftlog/internal/logging"
	"github.com/2beens/liftlog/pkg"

	log "github.com/sirupsen/logrus"
)

// secrets are read from the environment, never from the TOML config.
type secrets struct {
	adminUsername     string
	adminPasswordHash string
	postgresUser      string
	postgresPassword  string
	redisPassword     string
	sentryDSN         string
	honeycombEnabled  bool
}

func secretsFromEnv() (secrets, error) {
	s := secrets{
		adminUsername:     os.Getenv("LIFTLOG_ADMIN_USERNAME"),
		adminPasswordHash: os.Getenv("LIFTLOG_ADMIN_PASSWORD_HASH"),
		postgresUser:      os.Getenv("LIFTLOG_POSTGRES_USER"),
		postgresPassword:  os.Getenv("LIFTLOG_POSTGRES_PASS"),
		redisPassword:     os.Getenv("LIFTLOG_REDIS_PASS"),
		sentryDSN:         os.Getenv("SENTRY_DSN"),
		honeycombEnabled:  os.Getenv("HONEYCOMB_ENABLED") == "true",
	}
	if s.adminUsername == "" || s.adminPasswordHash == "" {
		return s, errors.New("admin username and password not set, use LIFTLOG_ADMIN_USERNAME and LIFTLOG_ADMIN_PASSWORD_HASH")
	}
	return s, nil
}

func main() {
	fmt.Println("starting liftlog ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sec, err := secretsFromEnv()
	if err != nil {
		panic(err)
	}

	versionInfo := buildVersion()
	closeLogs := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		Release:          versionInfo,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sec.sentryDSN,
		SentryServerName: "liftlog-service",
	})
	defer closeLogs()

	log.Warnf("---->> running in [%s] environment, version [%s]", cfg.Environment, versionInfo)
	log.Debugf("using port: %d", cfg.Port)

	if sec.redisPassword == "" {
		log.Errorln("redis password not set, use LIFTLOG_REDIS_PASS")
	}
	if sec.honeycombEnabled {
		if os.Getenv("HONEYCOMB_API_KEY") == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
		if os.Getenv("OTEL_SERVICE_NAME") == "" {
			log.Warnln("OTEL_SERVICE_NAME env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			AdminUsername:           sec.adminUsername,
			AdminPasswordHash:       sec.adminPasswordHash,
			PostgresUser:            sec.postgresUser,
			PostgresPassword:        sec.postgresPassword,
			RedisPassword:           sec.redisPassword,
			HoneycombTracingEnabled: sec.honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnln("shutdown signal received, stopping ...")
	server.GracefulShutdown()
}

// buildVersion prefers the vcs revision stamped into the binary and falls
// back to asking git, for `go run` in the project root.
func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return setting.Value
			}
		}
	}

	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(pkg.BytesToString(out))
}
