package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"plantita.mx/soil-log-service/pkg/common"
	"plantita.mx/soil-log-service/pkg/db"
	soilHttp "plantita.mx/soil-log-service/pkg/http"
	"plantita.mx/soil-log-service/pkg/soil"
)

func tierRate(envKey string, fallback rate.Limit) rate.Limit {
	v := strings.TrimSpace(os.Getenv(envKey))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("Invalid %s, should be a float64 value (requests per second)", envKey)
	}
	return rate.Limit(parsed)
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	soilDbType := os.Getenv(common.EnvKeySoilDBType)
	switch soilDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown SOIL_DB_TYPE: " + soilDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeySoilHttpHostPort))
	if httpHostPort == "" {
		httpHostPort = ":1080"
	}

	burst := 10
	if v := strings.TrimSpace(os.Getenv(common.EnvKeySoilBurst)); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatal("Invalid SOIL_BURST, should be an int value")
		}
		burst = int(parsed)
	}

	logger := common.GetLogger()

	soilCore := soil.Soil{
		Db: *dbInstance,
	}
	soilCore.WithServices(soil.ServiceOpts{
		Registry: soilCore.GetIRegistry(),
		Sharing:  soilCore.GetISharing(),
		Ingest:   soilCore.GetIIngest(),
		Query:    soilCore.GetIQuery(),
	})

	rs := &soilHttp.RestfulServer{
		Server:           gin.Default(),
		Soil:             &soilCore,
		RateLimiterStore: soil.NewRateLimiterStore(),
		Mild:             soilHttp.Tier{Name: "mild", Rate: tierRate(common.EnvKeySoilMildRate, soilHttp.TierMild.Rate), Burst: burst},
		Medium:           soilHttp.Tier{Name: "medium", Rate: tierRate(common.EnvKeySoilMediumRate, soilHttp.TierMedium.Rate), Burst: burst},
		Strict:           soilHttp.Tier{Name: "strict", Rate: tierRate(common.EnvKeySoilStrictRate, soilHttp.TierStrict.Rate), Burst: burst},
	}
	rs.Setup()

	logger.Info("http server created with tiers:",
		zap.Float64("mild_rate", float64(rs.Mild.Rate)),
		zap.Float64("medium_rate", float64(rs.Medium.Rate)),
		zap.Float64("strict_rate", float64(rs.Strict.Rate)),
		zap.Int("burst", burst))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
