package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	DATA_DIR=./data
//	OUTPUT_FILE=accumulation_results.csv
//	SCAN_LOG_ENABLED=false
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=postgres
//	POSTGRES_DB=nsepulse
//	POSTGRES_SSLMODE=disable
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Scanner  ScannerConfig  // input/output locations for the screen
	ScanLog  ScanLogConfig  // optional scan-run audit trail
	Postgres PostgresConfig // PostgreSQL connection settings (scan log only)
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string // TCP port the HTTP server listens on (e.g., "8080")
}

// ScannerConfig locates the screen's input and output.
//
// Fields:
//   - DataDir: directory scanned for the first *.csv input file.
//   - File: explicit input path; when set, discovery is skipped.
//   - OutputFile: where scan mode writes the results CSV.
type ScannerConfig struct {
	DataDir    string
	File       string
	OutputFile string
}

// ScanLogConfig controls the optional Postgres audit of scan runs.
type ScanLogConfig struct {
	Enabled bool
}

// PostgresConfig defines connection details for the scan-log database.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string // computed DSN used by database/sql
}

// AppConfig is the globally accessible configuration instance, populated
// once via LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (lowest to highest):
//  1. Defaults set in this function.
//  2. Values from a .env file (if present).
//  3. Environment variables.
//
// Fatal exit: validateConfig() terminates the app when required variables
// are missing.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("INPUT_FILE", "")
	viper.SetDefault("OUTPUT_FILE", "accumulation_results.csv")

	viper.SetDefault("SCAN_LOG_ENABLED", false)
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "nsepulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Scanner: ScannerConfig{
			DataDir:    viper.GetString("DATA_DIR"),
			File:       viper.GetString("INPUT_FILE"),
			OutputFile: viper.GetString("OUTPUT_FILE"),
		},
		ScanLog: ScanLogConfig{
			Enabled: viper.GetBool("SCAN_LOG_ENABLED"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing. Postgres settings are only required
// when the scan log is enabled.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Scanner.DataDir == "" && AppConfig.Scanner.File == "" {
		missing = append(missing, "DATA_DIR")
	}
	if AppConfig.Scanner.OutputFile == "" {
		missing = append(missing, "OUTPUT_FILE")
	}

	if AppConfig.ScanLog.Enabled {
		if AppConfig.Postgres.Host == "" {
			missing = append(missing, "POSTGRES_HOST")
		}
		if AppConfig.Postgres.Port == 0 {
			missing = append(missing, "POSTGRES_PORT")
		}
		if AppConfig.Postgres.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if AppConfig.Postgres.Password == "" {
			missing = append(missing, "POSTGRES_PASSWORD")
		}
		if AppConfig.Postgres.DBName == "" {
			missing = append(missing, "POSTGRES_DB")
		}
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
