package gemini

import (
	"fmt"

	"tp-server/config"
	"tp-server/models"
	"tp-server/util"
)

// GeminiApiClientMock serves a canned completion from a JSON fixture so the
// rest of the pipeline can run without network access or a credential.
type GeminiApiClientMock struct {
}

// NewGeminiApiClientMock creates a new instance of GeminiApiClientMock
func NewGeminiApiClientMock() *GeminiApiClientMock {
	return &GeminiApiClientMock{}
}

func (c *GeminiApiClientMock) SetAPIKey(apiKey string) {
	// nothing to configure on the mock
}

// GenerateContent returns the first candidate of the fixture response.
func (c *GeminiApiClientMock) GenerateContent(prompt string) (*models.GeminiOutput, error) {
	response, err := util.ReadGeminiResponseFromJSON(config.GetResourcePath(config.GEMINI_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read gemini response from json")
		return nil, err
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return nil, models.NewLLMError(models.ERROR_KIND_MALFORMED_RESPONSE, 0, "fixture has no candidate text")
	}

	return &models.GeminiOutput{
		Text:         response.Candidates[0].Content.Parts[0].Text,
		FinishReason: response.Candidates[0].FinishReason,
	}, nil
}
