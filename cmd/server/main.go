package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"vitalboard.xyz/vitals-telemetry-service/pkg/common"
	"vitalboard.xyz/vitals-telemetry-service/pkg/db"
	"vitalboard.xyz/vitals-telemetry-service/pkg/flux"
	vitalsHttp "vitalboard.xyz/vitals-telemetry-service/pkg/http"
	"vitalboard.xyz/vitals-telemetry-service/pkg/influx"
	"vitalboard.xyz/vitals-telemetry-service/pkg/vitals"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	vitalsDbType := os.Getenv(common.EnvKeyVitalsDBType)
	switch vitalsDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown VITALS_DB_TYPE: " + vitalsDbType)
	}

	influxCfg, err := influx.ConfigFromEnv()
	if err != nil {
		log.Fatal("Invalid time-series endpoint config: ", err)
	}

	templateDir := strings.TrimSpace(os.Getenv(common.EnvKeyVitalsTemplateDir))
	if templateDir == "" {
		templateDir = "templates/flux"
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyVitalsHttpHostPort))

	cacheTTL := durationEnvSeconds(common.EnvKeyVitalsCacheTTL, vitals.DefaultCacheTTL)
	staleAfter := durationEnvSeconds(common.EnvKeyVitalsStaleAfter, vitals.DefaultStaleAfter)

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyVitalsDefaultRate), 64); err != nil {
		log.Fatal("Invalid VITALS_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyVitalsDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid VITALS_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	vitalsCore := vitals.Vitals{
		Db:       *dbInstance,
		Store:    flux.NewStore(templateDir),
		Endpoint: influx.NewClient(influxCfg),
		Cache:    vitals.NewCache(cacheTTL),
	}
	vitalsCore.WithServices(vitals.ServiceOpts{
		Query:   vitalsCore.GetIQuery(),
		Repo:    vitalsCore.GetIRepo(),
		Session: vitalsCore.GetISession(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refresher := vitals.NewRefresher(&vitalsCore, staleAfter/2, staleAfter)
	refresher.Start(ctx)
	logger.Info("Background cache refresher started",
		zap.Duration("stale_after", staleAfter))

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &vitalsHttp.RestfulServer{
		Server:           gin.Default(),
		Vitals:           &vitalsCore,
		RateLimiterStore: vitals.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}

func durationEnvSeconds(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Fatalf("Invalid %s, should be a positive integer of seconds", key)
	}
	return time.Duration(seconds) * time.Second
}
