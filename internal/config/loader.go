package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load builds the configuration from all sources, lowest to highest
// priority: defaults, config/base.yaml, config/<environment>.yaml,
// environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()
	sources := []string{"defaults"}

	env := environmentFromEnv()
	cfg.Environment = env

	dir := os.Getenv("CONFIG_DIR")
	if dir == "" {
		dir = "config"
	}

	for _, name := range []string{"base", strings.ToLower(string(env))} {
		loaded, err := loadFile(filepath.Join(dir, name+".yaml"), cfg)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", name, err)
		}
		if loaded {
			sources = append(sources, name+".yaml")
		}
	}

	applyEnvOverrides(cfg)
	sources = append(sources, "environment")
	cfg.LoadedFrom = sources

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Environment: Development,
		Server: ServerConfig{
			Address:         ":8000",
			RequestTimeout:  15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			MaxBodyBytes:    1 << 20, // 1 MiB of JSON is a very large pipeline
		},
		CORS: CORSConfig{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowCredentials: true,
			MaxAge:           300,
		},
		Breaker: CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      5,
			Interval:         30 * time.Second,
			Timeout:          60 * time.Second,
			FailureThreshold: 0.8,
			MinRequests:      5,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "pipeline_backend",
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "pipeline-backend",
		},
	}
}

func environmentFromEnv() Environment {
	switch strings.ToLower(os.Getenv("ENVIRONMENT")) {
	case "production", "prod":
		return Production
	case "staging":
		return Staging
	default:
		return Development
	}
}

// loadFile overlays one YAML file onto cfg. A missing file is not an error.
func loadFile(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// applyEnvOverrides applies environment variables, the highest-priority
// source. Only variables that are set override anything.
func applyEnvOverrides(cfg *Config) {
	if os.Getenv("ENVIRONMENT") != "" {
		cfg.Environment = environmentFromEnv()
	}
	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Address = ":" + v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.RequestTimeout = d
		}
	}
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Server.MaxBodyBytes = n
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("CIRCUIT_BREAKER_ENABLED"); v != "" {
		cfg.Breaker.Enabled = v == "true"
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = v == "true"
	}
	if v := os.Getenv("METRICS_NAMESPACE"); v != "" {
		cfg.Metrics.Namespace = v
	}
	if v := os.Getenv("TRACING_ENABLED"); v != "" {
		cfg.Tracing.Enabled = v == "true"
	}
	if v := os.Getenv("TRACING_ENDPOINT"); v != "" {
		cfg.Tracing.Endpoint = v
	}
	if v := os.Getenv("TRACING_SERVICE_NAME"); v != "" {
		cfg.Tracing.ServiceName = v
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
