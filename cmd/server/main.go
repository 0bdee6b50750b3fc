package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"waleki.xyz/water-level-service/pkg/auth"
	"waleki.xyz/water-level-service/pkg/common"
	"waleki.xyz/water-level-service/pkg/db"
	walekiHttp "waleki.xyz/water-level-service/pkg/http"
	"waleki.xyz/water-level-service/pkg/telemetry"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	dbType := os.Getenv(common.EnvKeyWalekiDBType)
	switch dbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown WALEKI_DB_TYPE: " + dbType)
	}

	// seed before the listener starts so first requests never race it
	if err := dbInstance.Seed(); err != nil {
		log.Fatal("Failed to seed database: ", err)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyWalekiHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyWalekiDefaultRate), 64); err != nil {
		log.Fatal("Invalid WALEKI_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyWalekiDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid WALEKI_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	sessionTTL := auth.DefaultSessionTTL
	if raw := os.Getenv(common.EnvKeyWalekiSessionTTLHours); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			log.Fatal("Invalid WALEKI_SESSION_TTL_HOURS, should be a positive int value")
		}
		sessionTTL = time.Duration(hours) * time.Hour
	}

	logger := common.GetLogger()

	core := telemetry.Telemetry{
		Db:      *dbInstance,
		Changes: telemetry.NewChangeFeed(),
	}
	core.WithServices(telemetry.ServiceOpts{
		Reading: core.GetIReading(),
		Device:  core.GetIDevice(),
		Stats:   core.GetIStats(),
		Ingest:  core.GetIIngest(),
	})

	sessions := auth.NewMemorySessionStore()
	stopSweeper := sessions.StartSweeper(time.Hour)
	defer stopSweeper()

	authService := &auth.Auth{
		Db:         *dbInstance,
		Sessions:   sessions,
		SessionTTL: sessionTTL,
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &walekiHttp.RestfulServer{
		Server:           gin.Default(),
		Core:             &core,
		Auth:             authService,
		RateLimiterStore: telemetry.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", defaultRate),
		zap.Int64("default_burst", defaultBurst),
		zap.Duration("session_ttl", sessionTTL))

	// the dashboard UI runs on another origin
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(rs.Server)

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := http.ListenAndServe(httpHostPort, corsHandler); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
