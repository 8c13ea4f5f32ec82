package pairing

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"pairing-generator/internal/pkg/common"
)

// errorRecord is the single-element failure shape the prompt dictates.
type errorRecord struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

const fallbackValidationMessage = "유효하지 않은 입력입니다."

// decodeRecommendations turns raw model text into either a validated
// 3-item recommendation list or a ValidationError. A non-nil error means
// this model attempt failed and the caller should try the next backend.
func decodeRecommendations(text string) ([]Recommendation, *ValidationError, error) {
	raw, err := common.ExtractJSONArray(text)
	if err != nil {
		return nil, nil, err
	}

	var elements []json.RawMessage
	if err := common.ParseJSON(raw, &elements); err != nil {
		// models occasionally emit bare keys; quote them and retry once
		quoted := common.QuoteJSONKeys(raw)
		if err2 := common.ParseJSON(quoted, &elements); err2 != nil {
			return nil, nil, fmt.Errorf("failed to parse response array: %w", err)
		}
		raw = quoted
	}

	// a single element is only legal as the error shape
	if len(elements) == 1 {
		var record errorRecord
		if err := common.ParseJSON(string(elements[0]), &record); err == nil && record.Error {
			msg := strings.TrimSpace(record.Message)
			if msg == "" {
				msg = fallbackValidationMessage
			}
			return nil, common.NewValidationError(msg), nil
		}
		return nil, nil, fmt.Errorf("single-element response without error marker")
	}

	var items []Recommendation
	if err := common.ParseJSON(raw, &items); err != nil {
		return nil, nil, fmt.Errorf("failed to parse recommendations: %w", err)
	}

	if err := validateItems(items); err != nil {
		return nil, nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Rank < items[j].Rank
	})

	return items, nil, nil
}

// validateItems enforces the success shape: exactly 3 items, ranks 1..3
// each appearing once, grades from the fixed scale, non-empty names.
func validateItems(items []Recommendation) error {
	if len(items) != common.RecommendationCount {
		return fmt.Errorf("expected %d recommendations, got %d", common.RecommendationCount, len(items))
	}

	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if item.Rank < 1 || item.Rank > common.RecommendationCount {
			return fmt.Errorf("rank %d out of range", item.Rank)
		}
		if seen[item.Rank] {
			return fmt.Errorf("duplicate rank %d", item.Rank)
		}
		seen[item.Rank] = true

		if !common.ValidGrade(item.Grade) {
			return fmt.Errorf("invalid grade %q", item.Grade)
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("recommendation with rank %d has no name", item.Rank)
		}
	}

	return nil
}
