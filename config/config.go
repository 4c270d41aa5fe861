package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from its environment.
// The AI and translation credentials are optional at startup; the
// services fall back to safe defaults when a call cannot be made.
type Config struct {
	Port string

	DBPath string

	// Vision/analysis model (OpenAI-compatible chat completions endpoint).
	HuggingFaceToken string
	QwenModel        string
	QwenAPIURL       string

	// Translation service.
	SarvamAPIKey   string
	SarvamEndpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	return &Config{
		Port:             getEnv("PORT", "8000"),
		DBPath:           getEnv("DB_PATH", "nutrition_tracker.db"),
		HuggingFaceToken: os.Getenv("HUGGINGFACE_TOKEN"),
		QwenModel:        os.Getenv("QWEN_MODEL"),
		QwenAPIURL:       os.Getenv("QWEN_API_URL"),
		SarvamAPIKey:     os.Getenv("SARVAM_API_KEY"),
		SarvamEndpoint:   os.Getenv("SARVAM_ENDPOINT"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
