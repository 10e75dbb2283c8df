package models

// Generation outcome kinds.
const (
	GENERATION_KIND_OK       = "ok"
	GENERATION_KIND_FALLBACK = "fallback"
)

// GenerationResult is the discriminated outcome of one generation attempt.
// Data is always a valid ItineraryResult; Reason is set only on fallback so
// the caller can decide whether to show a notice.
type GenerationResult struct {
	Kind   string           `json:"kind"`
	Reason ErrorKind        `json:"reason,omitempty"`
	Data   *ItineraryResult `json:"data"`
}

func NewOKResult(data *ItineraryResult) *GenerationResult {
	return &GenerationResult{Kind: GENERATION_KIND_OK, Data: data}
}

func NewFallbackResult(reason ErrorKind, data *ItineraryResult) *GenerationResult {
	return &GenerationResult{Kind: GENERATION_KIND_FALLBACK, Reason: reason, Data: data}
}
