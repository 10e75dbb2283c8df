package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"tp-server/models"
)

// ReadGeminiResponseFromJSON loads a GeminiResponse fixture from JSON on disk.
func ReadGeminiResponseFromJSON(filePath string) (*models.GeminiResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}

	var response models.GeminiResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gemini response %q: %w", filePath, err)
	}
	return &response, nil
}

// ReadItineraryResultFromJSON loads an ItineraryResult from JSON on disk.
func ReadItineraryResultFromJSON(filePath string) (*models.ItineraryResult, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}

	var result models.ItineraryResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal itinerary result %q: %w", filePath, err)
	}
	return &result, nil
}
