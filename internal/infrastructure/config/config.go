package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultReservationsTable = "reservation"
	defaultReviewsTable      = "review"
)

// DynamoDB holds the document store settings.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires them,
// hence the "local" defaults.
type DynamoDB struct {
	Region            string
	Endpoint          string
	AccessKeyID       string
	SecretAccessKey   string
	ReservationsTable string
	ReviewsTable      string
	CreateTables      bool
}

type Config struct {
	AppEnv          string
	Port            int
	MetricsAddr     string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	DynamoDB        DynamoDB
}

func (c Config) HTTPAddr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads the configuration from the environment.
func Load() Config {
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		Port:            atoi("PORT", 8080),
		MetricsAddr:     os.Getenv("METRICS_ADDR"),
		CORSOrigins:     list("CORS_ALLOWED_ORIGINS"),
		ShutdownTimeout: time.Duration(atoi("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		DynamoDB: DynamoDB{
			Region:            env("AWS_REGION", "us-east-1"),
			Endpoint:          os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:       env("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:   env("AWS_SECRET_ACCESS_KEY", "local"),
			ReservationsTable: env("RESERVATIONS_TABLE", defaultReservationsTable),
			ReviewsTable:      env("REVIEWS_TABLE", defaultReviewsTable),
			CreateTables:      boolean("DYNAMODB_CREATE_TABLES"),
		},
	}
	if c.DynamoDB.Endpoint == "" {
		log.Info().Str("region", c.DynamoDB.Region).Msg("DYNAMODB_ENDPOINT not set, using AWS regional endpoint")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("invalid integer env var, using default")
	}
	return def
}

// list splits a comma separated variable, dropping blanks.
func list(k string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(k), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func boolean(k string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(k))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
