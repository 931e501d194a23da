package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset or
// malformed variables leave the current value untouched.
//
// Recognized variables:
//
//	ADDRESS                       HTTP bind address
//	DATABASE_DSN                  PostgreSQL DSN
//	SECRET_KEY                    JWT HMAC secret
//	ACCESS_TOKEN_EXPIRE_MINUTES   access token validity, minutes
//	REFRESH_TOKEN_EXPIRE_DAYS     refresh token validity, days
//	S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT
//	GEMINI_API_KEY, AI_BASE_URL, AI_MODEL
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_EXPIRE_MINUTES"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(n) * time.Minute
		}
	}
	if v, ok := os.LookupEnv("REFRESH_TOKEN_EXPIRE_DAYS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.RefreshTokenValidityDuration = time.Duration(n) * 24 * time.Hour
		}
	}
	if v, ok := os.LookupEnv("S3_ROOT_USER"); ok {
		config.S3RootUser = v
	}
	if v, ok := os.LookupEnv("S3_ROOT_PASSWORD"); ok {
		config.S3RootPassword = v
	}
	if v, ok := os.LookupEnv("S3_BUCKET"); ok {
		config.S3Bucket = v
	}
	if v, ok := os.LookupEnv("S3_REGION"); ok {
		config.S3Region = v
	}
	if v, ok := os.LookupEnv("S3_BASE_ENDPOINT"); ok {
		config.S3BaseEndpoint = v
	}
	if v, ok := os.LookupEnv("GEMINI_API_KEY"); ok {
		config.AIAPIKey = v
	}
	if v, ok := os.LookupEnv("AI_BASE_URL"); ok {
		config.AIBaseURL = v
	}
	if v, ok := os.LookupEnv("AI_MODEL"); ok {
		config.AIModel = v
	}
}
