// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Generation defaults
const (
	DefaultOutputPath = "generated"
	DefaultPackage    = "com.example.model"
)

// Processing safety cap defaults
const (
	DefaultWriteWorkersValue   = 8
	DefaultMaxInputBytesValue  = 64 << 20
	DefaultResultCacheMaxItems = 128
)

// Config holds all configuration for the CLI and the MCP server.
// Command-line flags override these values.
type Config struct {
	OutputPath string // JACKGEN_OUTPUT, default "generated"
	Package    string // JACKGEN_PACKAGE, default "com.example.model"
	Access     string // JACKGEN_ACCESS, default "" (no access attribute)
	Getters    bool   // JACKGEN_GETTERS, default false
	Setters    bool   // JACKGEN_SETTERS, default false

	WriteWorkers        int           // WRITE_WORKERS, default 8
	MaxInputBytes       int           // MAX_INPUT_BYTES, default 64MB
	ResultCacheMaxItems int           // RESULT_CACHE_MAX_ITEMS, default 128
	ToolTimeout         time.Duration // TOOL_TIMEOUT_MS, default 30000ms (30s)

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFormat     string // LOG_FORMAT, default "text"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		OutputPath: getEnvString("JACKGEN_OUTPUT", DefaultOutputPath),
		Package:    getEnvString("JACKGEN_PACKAGE", DefaultPackage),
		Access:     getEnvString("JACKGEN_ACCESS", ""),
		Getters:    getEnvBool("JACKGEN_GETTERS", false),
		Setters:    getEnvBool("JACKGEN_SETTERS", false),

		WriteWorkers:        getEnvInt("WRITE_WORKERS", DefaultWriteWorkersValue),
		MaxInputBytes:       getEnvInt("MAX_INPUT_BYTES", DefaultMaxInputBytesValue),
		ResultCacheMaxItems: getEnvInt("RESULT_CACHE_MAX_ITEMS", DefaultResultCacheMaxItems),
		ToolTimeout:         getEnvDurationMs("TOOL_TIMEOUT_MS", 30000),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFormat:     getEnvString("LOG_FORMAT", "text"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
