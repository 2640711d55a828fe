package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port                string
	Env                 string
	LogLevel            string
	CORSOrigins         []string
	ExternalCallTimeout time.Duration
	MaxUploadBytes      int64

	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string

	UseMemoryStore bool
	LeadsTable     string
	UploadsBucket  string

	EmailProvider   string
	SendGridAPIKey  string
	NotifyToEmail   string
	NotifyFromEmail string
	NotifyFromName  string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		CORSOrigins:         splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
		ExternalCallTimeout: getEnvAsDuration("EXTERNAL_CALL_TIMEOUT", 10*time.Second),
		MaxUploadBytes:      int64(getEnvAsInt("MAX_UPLOAD_MB", 32)) << 20,

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),

		UseMemoryStore: getEnvAsBool("USE_MEMORY_STORE", false),
		LeadsTable:     getEnv("LEADS_TABLE", "leads"),
		UploadsBucket:  getEnv("UPLOADS_BUCKET", ""),

		EmailProvider:   strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "auto"))),
		SendGridAPIKey:  getEnv("SENDGRID_API_KEY", ""),
		NotifyToEmail:   getEnv("NOTIFICATION_EMAIL", "quinnytrott@gmail.com"),
		NotifyFromEmail: getEnv("LEAD_NOTIFICATION_FROM", "leads@quickandqualified.ca"),
		NotifyFromName:  getEnv("LEAD_NOTIFICATION_FROM_NAME", "Q2 Leads"),
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
