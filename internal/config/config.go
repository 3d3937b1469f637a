// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file, with environment variables as fallback. All fields are optional;
// missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Job search providers
	AdzunaAppID  string `json:"adzuna_app_id,omitempty"`
	AdzunaAppKey string `json:"adzuna_app_key,omitempty"`
	JoobleAPIKey string `json:"jooble_api_key,omitempty"`
	RapidAPIKey  string `json:"rapidapi_key,omitempty"`
	RapidAPIHost string `json:"rapidapi_host,omitempty"`

	// Search behavior
	MaxJobsPerRole int    `json:"max_jobs_per_role,omitempty" validate:"min=0"`
	Country        string `json:"country,omitempty" validate:"omitempty,len=2,alpha"`
	PostingHours   int    `json:"posting_hours,omitempty" validate:"min=0"`
	EmploymentType string `json:"employment_type,omitempty" validate:"omitempty,oneof=FULLTIME PARTTIME CONTRACTOR INTERN"`

	// Optional language model augmentation
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	GeminiModel  string `json:"gemini_model,omitempty"`

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"`

	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Callers typically
// load a .env file first.
func FromEnv() Config {
	return Config{
		AdzunaAppID:    os.Getenv("ADZUNA_APP_ID"),
		AdzunaAppKey:   os.Getenv("ADZUNA_APP_KEY"),
		JoobleAPIKey:   os.Getenv("JOOBLE_API_KEY"),
		RapidAPIKey:    os.Getenv("RAPIDAPI_KEY"),
		RapidAPIHost:   os.Getenv("RAPIDAPI_HOST"),
		MaxJobsPerRole: envInt("MAX_JOBS_PER_ROLE"),
		Country:        os.Getenv("DEFAULT_COUNTRY"),
		PostingHours:   envInt("DEFAULT_POSTING_HOURS"),
		EmploymentType: os.Getenv("EMPLOYMENT_TYPE"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    os.Getenv("GEMINI_MODEL"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
	}
}

func envInt(key string) int {
	var v int
	if raw := os.Getenv(key); raw != "" {
		_, _ = fmt.Sscanf(raw, "%d", &v)
	}
	return v
}

var validate = validator.New()

// Validate checks that the configuration has valid values, per the
// struct's validate tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Config file values win over environment values this way.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.AdzunaAppID == "" {
		result.AdzunaAppID = defaults.AdzunaAppID
	}
	if result.AdzunaAppKey == "" {
		result.AdzunaAppKey = defaults.AdzunaAppKey
	}
	if result.JoobleAPIKey == "" {
		result.JoobleAPIKey = defaults.JoobleAPIKey
	}
	if result.RapidAPIKey == "" {
		result.RapidAPIKey = defaults.RapidAPIKey
	}
	if result.RapidAPIHost == "" {
		result.RapidAPIHost = defaults.RapidAPIHost
	}
	if result.Country == "" {
		result.Country = defaults.Country
	}
	if result.EmploymentType == "" {
		result.EmploymentType = defaults.EmploymentType
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.MaxJobsPerRole == 0 {
		result.MaxJobsPerRole = defaults.MaxJobsPerRole
	}
	if result.PostingHours == 0 {
		result.PostingHours = defaults.PostingHours
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
