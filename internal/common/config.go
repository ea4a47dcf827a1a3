package common

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all pipeline configuration.
type Config struct {
	Database DatabaseConfig
	Batch    BatchConfig
	Geocode  GeocodeConfig
	Extract  ExtractConfig
	Dedup    DedupConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// BatchConfig holds per-run batch settings.
type BatchConfig struct {
	RawRoot      string // data/raw
	OutRoot      string // data/parsed
	Workers      int    // attachment extraction pool size
	BatchTimeout time.Duration
}

// GeocodeConfig holds the geocoding collaborator settings.
type GeocodeConfig struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	MaxAttempts int
	BackoffBase time.Duration
}

// ExtractConfig holds attachment text extraction settings.
type ExtractConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	Soffice       string // HWP/legacy office -> PDF converter
	TesseractLang string
	DPI           int
	MaxPages      int
	// MinCharsPerPage is the near-empty heuristic: below this many
	// extracted characters per page the chain falls through to OCR.
	MinCharsPerPage  int
	ArtifactCacheDir string
}

// DedupConfig holds the near-duplicate pass thresholds.
type DedupConfig struct {
	TitleThreshold float64
	DateWindowDays int
}

// LoadConfig loads configuration from the environment. A .env file next
// to the working directory is honored when present.
func LoadConfig(logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.Default()
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("skipping .env", "error", err)
	}
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Batch: BatchConfig{
			RawRoot:      getEnv("RAW_ROOT", "data/raw"),
			OutRoot:      getEnv("OUT_ROOT", "data/parsed"),
			Workers:      getEnvAsInt("EXTRACT_WORKERS", 4),
			BatchTimeout: getEnvAsDuration("BATCH_TIMEOUT", 2*time.Hour),
		},
		Geocode: GeocodeConfig{
			BaseURL:     getEnv("GEOCODE_BASE_URL", "https://dapi.kakao.com/v2/local/search/address.json"),
			APIKey:      getEnv("GEOCODE_API_KEY", ""),
			Timeout:     getEnvAsDuration("GEOCODE_TIMEOUT", 10*time.Second),
			MaxAttempts: getEnvAsInt("GEOCODE_MAX_ATTEMPTS", 3),
			BackoffBase: getEnvAsDuration("GEOCODE_BACKOFF_BASE", 500*time.Millisecond),
		},
		Extract: ExtractConfig{
			Pdftotext:        getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:         getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:        getEnv("TESSERACT_BIN", "tesseract"),
			Soffice:          getEnv("SOFFICE_BIN", "soffice"),
			TesseractLang:    getEnv("TESSERACT_LANG", "kor+eng"),
			DPI:              getEnvAsInt("EXTRACT_DPI", 300),
			MaxPages:         getEnvAsInt("EXTRACT_MAX_PAGES", 0),
			MinCharsPerPage:  getEnvAsInt("EXTRACT_MIN_CHARS_PER_PAGE", 64),
			ArtifactCacheDir: getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
		},
		Dedup: DedupConfig{
			TitleThreshold: getEnvAsFloat64("DEDUP_TITLE_THRESHOLD", 0.90),
			DateWindowDays: getEnvAsInt("DEDUP_DATE_WINDOW", 7),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Batch.RawRoot == "" {
		return NewAppError("CONFIG_ERROR", "RAW_ROOT is required", ErrInvalidInput)
	}
	if c.Batch.OutRoot == "" {
		return NewAppError("CONFIG_ERROR", "OUT_ROOT is required", ErrInvalidInput)
	}
	if c.Batch.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "EXTRACT_WORKERS must be positive", ErrInvalidInput)
	}
	if c.Dedup.TitleThreshold <= 0 || c.Dedup.TitleThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "DEDUP_TITLE_THRESHOLD must be in (0,1]", ErrInvalidInput)
	}
	return nil
}
