package ai

import (
	"encoding/json"
	"strings"
)

// CategorizationResult is the parsed output of a categorization call
type CategorizationResult struct {
	CategoryName *string `json:"categoryName"`
	Reasoning    string  `json:"reasoning"`
}

// InsightItem is one parsed item of the dashboard insight contract
type InsightItem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority,omitempty"`
}

// LegacyInsightItem is one parsed item of the persisted insight contract
type LegacyInsightItem struct {
	InsightText string  `json:"insight_text"`
	ActionPlan  *string `json:"action_plan"`
	CategoryID  *string `json:"category_id"`
}

const unavailableInsightText = "Unable to generate structured insights at this time."

// ParseCategorization parses the raw model text into a CategorizationResult.
// Malformed output degrades to the documented fallback instead of an error -
// an unparseable model response must never fail the request.
func ParseCategorization(raw string) CategorizationResult {
	var result CategorizationResult
	if err := json.Unmarshal([]byte(extractJSON(raw, '{', '}')), &result); err != nil {
		return CategorizationResult{
			CategoryName: nil,
			Reasoning:    "Could not parse AI response",
		}
	}
	return result
}

// ParseInsightItems parses the raw model text as a dashboard insight list.
// Malformed output degrades to a single unavailable item of the requested kind.
func ParseInsightItems(raw string, kind TaskKind) []InsightItem {
	var items []InsightItem
	if err := json.Unmarshal([]byte(extractJSON(raw, '[', ']')), &items); err != nil {
		items = nil
	}

	// Drop items with no content, the model occasionally pads the list
	valid := items[:0]
	for _, item := range items {
		if strings.TrimSpace(item.Content) != "" {
			valid = append(valid, item)
		}
	}

	if len(valid) == 0 {
		return []InsightItem{{
			Type:    ItemType(kind),
			Title:   "Insights unavailable",
			Content: unavailableInsightText,
		}}
	}
	return valid
}

// ParseLegacyInsights parses the raw model text as a persisted insight list,
// degrading to a single unavailable item on malformed output.
func ParseLegacyInsights(raw string) []LegacyInsightItem {
	var items []LegacyInsightItem
	if err := json.Unmarshal([]byte(extractJSON(raw, '[', ']')), &items); err != nil || len(items) == 0 {
		return []LegacyInsightItem{{
			InsightText: unavailableInsightText,
			ActionPlan:  nil,
			CategoryID:  nil,
		}}
	}
	return items
}

// extractJSON strips markdown code fences and slices the text between the
// outermost delimiters, models often wrap JSON in prose or fences.
func extractJSON(raw string, open, closing byte) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	text = strings.TrimSpace(text)

	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, closing)
	if start != -1 && end != -1 && end > start {
		text = text[start : end+1]
	}

	return text
}
