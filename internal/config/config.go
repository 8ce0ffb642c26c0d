package config

import (
	"os"
	"strconv"

	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/joho/godotenv"
)

// Load reads the .env file specified by VERITAS_ENV (or .env by default).
// All config is flat env vars read via os.Getenv after loading; every value
// has a code default, so a missing file is not an error.
func Load() error {
	envFile := os.Getenv("VERITAS_ENV")
	if envFile == "" {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)
	return nil
}

// LogLevel returns the zap log level name. Defaults to "info".
func LogLevel() string {
	l := os.Getenv("LOG_LEVEL")
	if l == "" {
		return "info"
	}
	return l
}

// FusionRule returns the configured default combination rule.
// Valid values: dempster, yager, dubois_prade, average.
func FusionRule() string {
	r := os.Getenv("VERITAS_FUSION_RULE")
	if !domain.ValidFusionRule(r) {
		return string(domain.DefaultRule)
	}
	return r
}

// Tolerance returns the floating-point tolerance for mass validation.
func Tolerance() float64 {
	return floatEnv("VERITAS_TOLERANCE", domain.DefaultTolerance)
}

// HighConflictThreshold returns the conflict level that triggers the
// advisory warning during fusion.
func HighConflictThreshold() float64 {
	return floatEnv("VERITAS_HIGH_CONFLICT_THRESHOLD", domain.HighConflictThreshold)
}

// PublishThreshold returns the belief level required for a publish verdict.
func PublishThreshold() float64 {
	return floatEnv("VERITAS_PUBLISH_THRESHOLD", 0.85)
}

// Workers returns the worker count for parallel combination.
func Workers() int {
	n, err := strconv.Atoi(os.Getenv("VERITAS_WORKERS"))
	if err != nil || n < 1 {
		return 4
	}
	return n
}

func floatEnv(key string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
