package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds every environment-driven setting of the console API.
type Config struct {
	Port        string
	Environment string
	LogLevel    string
	ServiceName string

	// Location used to stamp sale dates (dd/mm/yyyy) and times (HH:mm:ss).
	Location *time.Location

	DynamoDB DynamoDB
	Tables   Tables

	RedisAddr  string
	SessionTTL time.Duration

	JWTSecret   string
	AdminAPIKey string
	TokenTTL    time.Duration

	MercadoPagoAccessToken    string
	MercadoPagoTestPayerEmail string
	PaymentGatewayMock        bool

	OTLPEndpoint string
}

type DynamoDB struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type Tables struct {
	Catalog      string
	Appointments string
	Clients      string
	Employees    string
	Sales        string
}

// Load reads the configuration from the environment.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		ServiceName: getEnv("SERVICE_NAME", "barbearia-api"),
		Location:    loadLocation(getEnv("APP_TIMEZONE", "America/Sao_Paulo")),

		DynamoDB: DynamoDB{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Tables: Tables{
			Catalog:      getEnv("CATALOG_TABLE", "catalog_items"),
			Appointments: getEnv("APPOINTMENTS_TABLE", "appointments"),
			Clients:      getEnv("CLIENTS_TABLE", "clients"),
			Employees:    getEnv("EMPLOYEES_TABLE", "employees"),
			Sales:        getEnv("SALES_TABLE", "sales"),
		},

		RedisAddr:  os.Getenv("REDIS_ADDR"),
		SessionTTL: time.Duration(getIntEnv("CHECKOUT_SESSION_TTL_MIN", 720)) * time.Minute,

		JWTSecret:   os.Getenv("AUTH_JWT_SECRET"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),
		TokenTTL:    time.Duration(getIntEnv("AUTH_TOKEN_TTL_MIN", 480)) * time.Minute,

		MercadoPagoAccessToken:    os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		MercadoPagoTestPayerEmail: os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"),
		PaymentGatewayMock:        getBoolEnv("PAYMENT_GATEWAY_MOCK") || getBoolEnv("MERCADOPAGO_MOCK"),

		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
	return cfg
}

// AuthEnabled reports whether admin routes require a bearer token.
func (c Config) AuthEnabled() bool {
	return strings.TrimSpace(c.JWTSecret) != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Int("default", def).Msg("invalid integer env var, using default")
		return def
	}
	return v
}

func getBoolEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("tz", name).Msg("unknown APP_TIMEZONE, falling back to local time")
		return time.Local
	}
	return loc
}
