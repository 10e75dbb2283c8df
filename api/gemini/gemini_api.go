package gemini

import (
	"tp-server/models"
)

// GeminiAPI defines the interface for interacting with the Gemini
// generateContent API.
type GeminiAPI interface {
	GenerateContent(prompt string) (*models.GeminiOutput, error)
	SetAPIKey(apiKey string)
}
