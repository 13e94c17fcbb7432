package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ugaemi/islet-server/internal/game"
)

type Config struct {
	Port            int
	LogLevel        string
	LogFormat       string
	DatabaseURL     string
	StoreDriver     string
	SaveDir         string
	TuningFile      string
	WorldSeed       int64
	AutosaveSeconds int
}

func Load() *Config {
	return &Config{
		Port:            getEnvInt("PORT", 8080),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		DatabaseURL:     getEnv("DATABASE_URL", "postgres://localhost:5432/islet?sslmode=disable"),
		StoreDriver:     getEnv("STORE_DRIVER", "file"),
		SaveDir:         getEnv("SAVE_DIR", "saves"),
		TuningFile:      getEnv("TUNING_FILE", ""),
		WorldSeed:       int64(getEnvInt("WORLD_SEED", 1)),
		AutosaveSeconds: getEnvInt("AUTOSAVE_SECONDS", 30),
	}
}

// LoadTuning returns the default tuning overridden by the YAML file at path.
// An empty path yields the defaults. Unknown keys are rejected so a typo does
// not silently keep a default.
func LoadTuning(path string) (game.Tuning, error) {
	t := game.DefaultTuning()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return game.DefaultTuning(), fmt.Errorf("parse tuning %s: %w", path, err)
	}
	return t, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
