package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	Keys APIKeys
	Ai   AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	EventsTopic        string
	OtelEnabled        bool
}

type APIKeys struct {
	GoogleGemini string
	LLM          string // OpenAI-compatible providers
}

type AIConfig struct {
	LLMProvider    string // "gemini", "ollama" or "openai"
	LLMModel       string // empty selects the provider's own default
	LLMBaseURL     string
	OllamaBaseURL  string
	Temperature    float64 // 0 keeps the contract's 0.3; anything else departs from it
	TimeoutSeconds int
	MaxInputChars  int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			EventsTopic:        getEnv("ASSISTANT_EVENTS_TOPIC", "ASSISTANT_REQUEST_PROCESSED"),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			LLM:          getEnv("LLM_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:       getEnv("LLM_MODEL", ""),
			LLMBaseURL:     getEnv("LLM_BASE_URL", ""),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Temperature:    getEnvAsFloat("LLM_TEMPERATURE", 0),
			TimeoutSeconds: getEnvAsInt("LLM_TIMEOUT_SECONDS", 120),
			MaxInputChars:  getEnvAsInt("MAX_INPUT_CHARS", 20000),
		},
	}
}

// APIKey returns the credential for the configured provider.
func (c AIConfig) APIKey(keys APIKeys) string {
	if c.LLMProvider == "gemini" || c.LLMProvider == "" {
		return keys.GoogleGemini
	}
	return keys.LLM
}

// BaseURL returns the endpoint override for the configured provider.
func (c AIConfig) BaseURL() string {
	if c.LLMProvider == "ollama" {
		return c.OllamaBaseURL
	}
	return c.LLMBaseURL
}

// Timeout is zero when the model call should not be bounded.
func (c AIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
