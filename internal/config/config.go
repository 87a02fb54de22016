package config

import "os"

// Config carries every setting the service reads. The environment is the only
// source; optional credentials are empty strings checked at the consuming
// adapter rather than implicit nilable globals.
type Config struct {
	Port         string
	LogLevel     string
	ContactEmail string

	// OpenRouteService credential. Empty means every prediction request fails
	// with a configuration error until the operator sets it.
	ORSAPIKey string

	// Language-model settings. An empty token degrades the traffic-context
	// generator to its default feature set without failing requests.
	LLMToken   string
	LLMBaseURL string
	LLMModel   string

	// Travel-time-index regression service endpoint.
	EstimatorURL string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		ContactEmail: os.Getenv("APP_CONTACT_EMAIL"),
		ORSAPIKey:    os.Getenv("ORS_API_KEY"),
		LLMToken:     os.Getenv("HUGGINGFACE_API_TOKEN"),
		LLMBaseURL:   getEnv("LLM_BASE_URL", "https://router.huggingface.co/v1"),
		LLMModel:     getEnv("LLM_MODEL", "meta-llama/Llama-3.1-8B-Instruct:novita"),
		EstimatorURL: getEnv("ML_SERVICE_URL", "http://localhost:5000/predict"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
