package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/utils"
)

// Config holds process-level settings. A YAML file (CONFIG_PATH) supplies
// defaults; environment variables override it.
type Config struct {
	Port     string `yaml:"port"`
	LogMode  string `yaml:"log_mode"`
	DBDriver string `yaml:"db_driver"`
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		Port:     "8080",
		LogMode:  "development",
		DBDriver: "postgres",
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		log.Info("Config file loaded", "path", path)
	}

	cfg.Port = utils.GetEnv("PORT", cfg.Port, log)
	cfg.LogMode = utils.GetEnv("LOG_MODE", cfg.LogMode, log)
	cfg.DBDriver = utils.GetEnv("DB_DRIVER", cfg.DBDriver, log)
	return cfg, nil
}
