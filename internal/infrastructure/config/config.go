package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Question bank source: BankURL wins when both are set.
	BankURL  string
	BankPath string

	// Durable store
	DBPath      string
	StateKey    string // session state namespace
	SelectedKey string // selection set namespace
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		BankURL:         os.Getenv("BANK_URL"),
		BankPath:        getenvDefault("BANK_PATH", "questions.json"),
		DBPath:          getenvDefault("DB_PATH", "torqueprep.db"),
		StateKey:        getenvDefault("STATE_KEY", "tp_state_v1"),
		SelectedKey:     getenvDefault("SELECTED_KEY", "tp_selected_ids"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
