package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Policy assistant specifics
	Assistant AssistantConfig
	Qdrant    QdrantConfig
	Voyage    VoyageConfig
	Sheets    SheetsConfig
	Ingest    IngestConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// HTTP edge
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AssistantConfig holds the query-pipeline knobs.
type AssistantConfig struct {
	HRContact        string
	SearchK          int
	MinLeaveDays     float64
	MaxLeaveDays     float64
	RerankEnabled    bool
	LLMTemperature   float64
	DirectoryTimeout string
	RetrievalTimeout string
	LLMTimeout       string
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey      string
	EmbedModel  string
	RerankModel string
}

type SheetsConfig struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsPath string
}

type IngestConfig struct {
	ChunkSize    int
	ChunkOverlap int
	SourcePath   string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

// Load loads configuration using Viper.
// CONFIG_PATH points at an explicit file; otherwise config.yaml is
// searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/app/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Assistant pipeline
	cfg.Assistant.HRContact = viper.GetString("assistant.hr_contact")
	cfg.Assistant.SearchK = viper.GetInt("assistant.search_k")
	cfg.Assistant.MinLeaveDays = viper.GetFloat64("assistant.min_leave_days")
	cfg.Assistant.MaxLeaveDays = viper.GetFloat64("assistant.max_leave_days")
	cfg.Assistant.RerankEnabled = viper.GetBool("assistant.rerank_enabled")
	cfg.Assistant.LLMTemperature = viper.GetFloat64("assistant.llm_temperature")
	cfg.Assistant.DirectoryTimeout = viper.GetString("assistant.directory_timeout")
	cfg.Assistant.RetrievalTimeout = viper.GetString("assistant.retrieval_timeout")
	cfg.Assistant.LLMTimeout = viper.GetString("assistant.llm_timeout")

	// Qdrant
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.APIKey = expandEnvVar(viper.GetString("qdrant.api_key"))
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	// Voyage AI
	cfg.Voyage.APIKey = expandEnvVar(viper.GetString("voyage.api_key"))
	cfg.Voyage.EmbedModel = viper.GetString("voyage.embed_model")
	cfg.Voyage.RerankModel = viper.GetString("voyage.rerank_model")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Google Sheets user directory
	cfg.Sheets.SpreadsheetID = expandEnvVar(viper.GetString("sheets.spreadsheet_id"))
	cfg.Sheets.SheetName = viper.GetString("sheets.sheet_name")
	cfg.Sheets.CredentialsPath = viper.GetString("sheets.credentials_path")
	if sheetsID := viper.GetString("google_sheets_id"); sheetsID != "" {
		cfg.Sheets.SpreadsheetID = sheetsID
	}
	if sheetsCreds := viper.GetString("google_sheets_credentials"); sheetsCreds != "" {
		cfg.Sheets.CredentialsPath = sheetsCreds
	}

	// Ingest
	cfg.Ingest.ChunkSize = viper.GetInt("ingest.chunk_size")
	cfg.Ingest.ChunkOverlap = viper.GetInt("ingest.chunk_overlap")
	cfg.Ingest.SourcePath = viper.GetString("ingest.source_path")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Assistant defaults mirror the legacy deployment values
	viper.SetDefault("assistant.hr_contact", "hr@bankname.com")
	viper.SetDefault("assistant.search_k", 3)
	viper.SetDefault("assistant.min_leave_days", 0.5)
	viper.SetDefault("assistant.max_leave_days", 30)
	viper.SetDefault("assistant.rerank_enabled", true)
	viper.SetDefault("assistant.llm_temperature", 0.3)
	viper.SetDefault("assistant.directory_timeout", "10s")
	viper.SetDefault("assistant.retrieval_timeout", "15s")
	viper.SetDefault("assistant.llm_timeout", "30s")

	viper.SetDefault("qdrant.collection_name", "bank_policies")
	viper.SetDefault("qdrant.vector_size", 1024)

	viper.SetDefault("voyage.embed_model", "voyage-3")
	viper.SetDefault("voyage.rerank_model", "rerank-2")

	viper.SetDefault("sheets.sheet_name", "Sheet1")
	viper.SetDefault("sheets.credentials_path", "credentials.json")

	viper.SetDefault("ingest.chunk_size", 500)
	viper.SetDefault("ingest.chunk_overlap", 200)
	viper.SetDefault("ingest.source_path", "./data/policy_manual.txt")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "90s")

	viper.SetDefault("rate_limit.requests_per_minute", 20)
	viper.SetDefault("rate_limit.burst", 5)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			// Check priority is valid
			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			// Check for duplicate priorities
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true

			// Check API key is set (warning only)
			if provider.APIKey == "" {
				fmt.Printf("Warning: provider %s has no API key configured\n", provider.Name)
			}
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
