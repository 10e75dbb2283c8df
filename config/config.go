package config

import (
	"os"
	"path/filepath"
	"time"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Itinerary cache config
const ITINERARY_CACHE_TTL = 24 * time.Hour

// Gemini API config
const GEMINI_ENDPOINT_BASE = "https://generativelanguage.googleapis.com/v1beta"
const GEMINI_GENERATE_CONTENT_PATH = "/models/gemini-2.5-flash:generateContent"
const GEMINI_API_KEY_ENV_VAR = "GEMINI_API_KEY"
const GEMINI_API_KEY_PLACEHOLDER = "your-gemini-api-key-here"

// Outbound HTTP config
const HTTP_REQUEST_TIMEOUT_SECONDS = 30

// Generation parameters. Low temperature keeps the itinerary JSON stable
// across retries; a single candidate is all we ever read.
const GEMINI_TEMPERATURE = 0.3
const GEMINI_TOP_K = 20
const GEMINI_TOP_P = 0.8
const GEMINI_MAX_OUTPUT_TOKENS = 16384
const GEMINI_CANDIDATE_COUNT = 1

// Retry policy for transient (503) failures only.
const GEMINI_MAX_ATTEMPTS = 3
const GEMINI_RETRY_BASE_DELAY = 1 * time.Second

// Server config
const SERVER_ADDRESS = ":8080"
const GENERATE_RATE_LIMIT_PER_SECOND = 1
const GENERATE_RATE_LIMIT_BURST = 3

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const GEMINI_RESPONSE_RESOURCE = "gemini_response.json"
const ITINERARY_RESULT_RESOURCE = "itinerary_result.json"

// GeminiAPIKey reads the Gemini credential from the environment. An empty
// value is returned as-is; the service layer decides what counts as invalid.
func GeminiAPIKey() string {
	return os.Getenv(GEMINI_API_KEY_ENV_VAR)
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
