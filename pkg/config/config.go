package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database DatabaseConfig
	Uploads  UploadsConfig
	GenAI    GenAIConfig
	Seed     SeedConfig
	CORS     CORSConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Path        string
	BusyTimeout time.Duration
}

// UploadsConfig controls where note files land and how they are served.
type UploadsConfig struct {
	Dir       string
	PublicURL string
}

// GenAIConfig configures the generative-text fallback for the chatbot.
// An empty URL leaves the fallback disabled; the chatbot then answers
// with its canned reply.
type GenAIConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// SeedConfig describes the default admin account created on first start.
type SeedConfig struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Path:        v.GetString("DB_PATH"),
		BusyTimeout: parseDuration(v.GetString("DB_BUSY_TIMEOUT"), 5*time.Second),
	}

	cfg.Uploads = UploadsConfig{
		Dir:       v.GetString("UPLOAD_DIR"),
		PublicURL: v.GetString("UPLOAD_PUBLIC_URL"),
	}

	cfg.GenAI = GenAIConfig{
		URL:     v.GetString("GENAI_API_URL"),
		APIKey:  v.GetString("GENAI_API_KEY"),
		Timeout: parseDuration(v.GetString("GENAI_TIMEOUT"), 10*time.Second),
	}

	cfg.Seed = SeedConfig{
		AdminName:     v.GetString("SEED_ADMIN_NAME"),
		AdminEmail:    v.GetString("SEED_ADMIN_EMAIL"),
		AdminPassword: v.GetString("SEED_ADMIN_PASSWORD"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3000)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("DB_PATH", "./db.sqlite")
	v.SetDefault("DB_BUSY_TIMEOUT", "5s")

	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("UPLOAD_PUBLIC_URL", "/uploads")

	v.SetDefault("GENAI_API_URL", "")
	v.SetDefault("GENAI_API_KEY", "")
	v.SetDefault("GENAI_TIMEOUT", "10s")

	v.SetDefault("SEED_ADMIN_NAME", "Admin User")
	v.SetDefault("SEED_ADMIN_EMAIL", "admin@campus.com")
	v.SetDefault("SEED_ADMIN_PASSWORD", "admin123")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
