package gemini

import (
	"errors"
	"net/url"

	"tp-server/api"
	"tp-server/config"
	"tp-server/models"
)

const ERROR_SNIPPET_MAX_LEN = 200

// GeminiApiClient embeds the common HTTPClient
type GeminiApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewGeminiApiClient creates a new instance of GeminiApiClient
func NewGeminiApiClient(httpClient *api.HTTPClient) *GeminiApiClient {
	return &GeminiApiClient{
		HTTPClient: httpClient,
	}
}

func (c *GeminiApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// GenerateContent posts the prompt to the generateContent endpoint and
// returns the first candidate's text with its finish reason. Failures come
// back classified as *models.LLMError.
func (c *GeminiApiClient) GenerateContent(prompt string) (*models.GeminiOutput, error) {
	request := models.GeminiRequest{
		Contents: []models.GeminiContent{
			{
				Parts: []models.GeminiPart{
					{Text: prompt},
				},
			},
		},
		GenerationConfig: models.GenerationConfig{
			Temperature:     config.GEMINI_TEMPERATURE,
			TopK:            config.GEMINI_TOP_K,
			TopP:            config.GEMINI_TOP_P,
			MaxOutputTokens: config.GEMINI_MAX_OUTPUT_TOKENS,
			CandidateCount:  config.GEMINI_CANDIDATE_COUNT,
		},
	}

	endpoint := config.GEMINI_GENERATE_CONTENT_PATH + "?key=" + url.QueryEscape(c.apiKey)

	var response models.GeminiResponse
	if err := c.Request("POST", endpoint, nil, request, &response); err != nil {
		return nil, classifyRequestError(err)
	}

	// The API can report an error inside a 2xx body.
	if response.Error != nil {
		return nil, models.NewLLMError(
			models.ERROR_KIND_GENERIC_REQUEST_FAILURE,
			response.Error.Code,
			response.Error.Message,
		)
	}

	if len(response.Candidates) == 0 {
		return nil, models.NewLLMError(models.ERROR_KIND_MALFORMED_RESPONSE, 0, "no candidates in response")
	}

	candidate := response.Candidates[0]
	if len(candidate.Content.Parts) == 0 {
		return nil, models.NewLLMError(models.ERROR_KIND_MALFORMED_RESPONSE, 0, "no parts in candidate content")
	}

	return &models.GeminiOutput{
		Text:         candidate.Content.Parts[0].Text,
		FinishReason: candidate.FinishReason,
	}, nil
}

// classifyRequestError maps transport failures onto the error taxonomy:
// 503 is the only retryable kind, 429 and 401 are terminal with a notice,
// everything else is a generic failure.
func classifyRequestError(err error) *models.LLMError {
	var httpErr *api.HTTPError
	if !errors.As(err, &httpErr) {
		return models.NewLLMError(models.ERROR_KIND_GENERIC_REQUEST_FAILURE, 0, err.Error())
	}

	snippet := bodySnippet(httpErr.Body)
	switch httpErr.StatusCode {
	case 503:
		return models.NewLLMError(models.ERROR_KIND_SERVICE_UNAVAILABLE, httpErr.StatusCode, snippet)
	case 429:
		return models.NewLLMError(models.ERROR_KIND_RATE_LIMIT_EXCEEDED, httpErr.StatusCode, snippet)
	case 401:
		return models.NewLLMError(models.ERROR_KIND_CREDENTIAL_INVALID, httpErr.StatusCode, snippet)
	default:
		return models.NewLLMError(models.ERROR_KIND_GENERIC_REQUEST_FAILURE, httpErr.StatusCode, snippet)
	}
}

func bodySnippet(body []byte) string {
	if len(body) > ERROR_SNIPPET_MAX_LEN {
		return string(body[:ERROR_SNIPPET_MAX_LEN])
	}
	return string(body)
}
