package config

import (
	"fmt"
	"os"
)

// LambdaConfig holds Lambda-specific configuration
type LambdaConfig struct {
	Store    StoreConfig
	LogLevel string
	// Aurora Serverless specific settings
	AuroraEndpoint   string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
}

// LoadLambdaConfig loads configuration for the Lambda environment.
// DATABASE_URL wins; otherwise the URL is composed from the Aurora variables.
func LoadLambdaConfig() (*LambdaConfig, error) {
	cfg := &LambdaConfig{
		Store: StoreConfig{
			Backend:      BackendMemory,
			DatabaseURL:  defaultDatabaseURL,
			SeedFixtures: true,
		},
		LogLevel: "info",
	}

	auroraEndpoint := os.Getenv("AURORA_ENDPOINT")
	databaseName := os.Getenv("DATABASE_NAME")
	databaseUser := os.Getenv("DATABASE_USER")
	databasePassword := os.Getenv("DATABASE_PASSWORD")
	if auroraEndpoint != "" && databaseName != "" && databaseUser != "" && databasePassword != "" {
		cfg.Store.DatabaseURL = fmt.Sprintf("postgresql://%s:%s@%s:5432/%s",
			databaseUser, databasePassword, auroraEndpoint, databaseName)
		cfg.AuroraEndpoint = auroraEndpoint
		cfg.DatabaseName = databaseName
		cfg.DatabaseUser = databaseUser
		cfg.DatabasePassword = databasePassword
	}

	if err := applyStoreEnv(&cfg.Store); err != nil {
		return nil, err
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Store.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
