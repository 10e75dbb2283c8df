// Package parser turns raw model output into a validated ItineraryResult.
// The model is asked for bare JSON but routinely wraps it in markdown fences
// or gets cut off at the token limit, so extraction and repair are
// best-effort before the strict parse.
package parser

import (
	"encoding/json"
	"strconv"
	"strings"

	"tp-server/models"
)

// ExtractJSONObject strips markdown code fences and returns the first-`{`
// through last-`}` span of the text. Fails when no object span exists.
func ExtractJSONObject(text string) (string, error) {
	cleanText := strings.TrimSpace(text)

	// Remove markdown code blocks, with or without a language tag.
	if strings.HasPrefix(cleanText, "```json") {
		cleanText = strings.TrimPrefix(cleanText, "```json")
	} else if strings.HasPrefix(cleanText, "```") {
		cleanText = strings.TrimPrefix(cleanText, "```")
	}
	cleanText = strings.TrimSpace(cleanText)
	cleanText = strings.TrimSuffix(cleanText, "```")
	cleanText = strings.TrimSpace(cleanText)

	start := strings.Index(cleanText, "{")
	end := strings.LastIndex(cleanText, "}")
	if start == -1 || end <= start {
		return "", models.NewLLMError(models.ERROR_KIND_UNUSABLE_CONTENT, 0, "no JSON object found in response text")
	}

	return cleanText[start : end+1], nil
}

// RepairTruncatedJSON appends the deficit of closing brackets, then closing
// braces, to heuristically close arrays and objects left open by a token
// cutoff. Counting ignores string context, so the result may still fail to
// parse; callers must treat this as best-effort.
func RepairTruncatedJSON(rawJSON string) string {
	openBraces := strings.Count(rawJSON, "{")
	closeBraces := strings.Count(rawJSON, "}")
	openBrackets := strings.Count(rawJSON, "[")
	closeBrackets := strings.Count(rawJSON, "]")

	repaired := rawJSON
	for i := 0; i < openBrackets-closeBrackets; i++ {
		repaired += "]"
	}
	for i := 0; i < openBraces-closeBraces; i++ {
		repaired += "}"
	}
	return repaired
}

// ParseItinerary extracts, optionally repairs, parses and validates an
// ItineraryResult from model output. Every failure collapses into a single
// unusable-content error; the caller only needs the fallback trigger.
func ParseItinerary(text string, wasTruncated bool) (*models.ItineraryResult, error) {
	rawJSON, err := ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}

	if wasTruncated {
		rawJSON = RepairTruncatedJSON(rawJSON)
	}

	var result models.ItineraryResult
	if err := json.Unmarshal([]byte(rawJSON), &result); err != nil {
		return nil, models.NewLLMError(models.ERROR_KIND_UNUSABLE_CONTENT, 0, "response JSON failed to parse: "+err.Error())
	}

	// A syntactically valid reply without activities is still unusable.
	if len(result.Activities) == 0 {
		return nil, models.NewLLMError(models.ERROR_KIND_UNUSABLE_CONTENT, 0, "response JSON missing required activities array")
	}

	normalizeActivities(result.Activities)
	return &result, nil
}

// normalizeActivities fills in ids and categories the model left out: ids
// become 1-based positional strings, categories default to "activities".
func normalizeActivities(activities []models.Activity) {
	for i := range activities {
		if activities[i].ID == "" {
			activities[i].ID = strconv.Itoa(i + 1)
		}
		if activities[i].Category == "" {
			activities[i].Category = models.CATEGORY_ACTIVITIES
		}
	}
}
