package models

// Finish reasons reported by the Gemini API.
const (
	FINISH_REASON_STOP       = "STOP"
	FINISH_REASON_MAX_TOKENS = "MAX_TOKENS"
)

// GeminiRequest is the generateContent request body.
type GeminiRequest struct {
	Contents         []GeminiContent  `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	CandidateCount  int     `json:"candidateCount"`
}

// GeminiResponse is the generateContent response body.
type GeminiResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
	Error      *GeminiAPIError   `json:"error,omitempty"`
}

type GeminiCandidate struct {
	Content      GeminiContent `json:"content"`
	FinishReason string        `json:"finishReason"`
}

type GeminiAPIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GeminiOutput is the usable part of a completion: the first candidate's
// text plus why the model stopped.
type GeminiOutput struct {
	Text         string
	FinishReason string
}

// Truncated reports whether the model was cut off by the output token limit.
func (o *GeminiOutput) Truncated() bool {
	return o.FinishReason == FINISH_REASON_MAX_TOKENS
}
