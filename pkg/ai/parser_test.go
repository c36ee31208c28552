package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategorization_Valid(t *testing.T) {
	raw := `{"categoryName": "Fitness", "reasoning": "relates to exercise"}`

	result := ParseCategorization(raw)

	require.NotNil(t, result.CategoryName)
	assert.Equal(t, "Fitness", *result.CategoryName)
	assert.Equal(t, "relates to exercise", result.Reasoning)
}

func TestParseCategorization_NullCategory(t *testing.T) {
	raw := `{"categoryName": null, "reasoning": "no clear theme"}`

	result := ParseCategorization(raw)

	assert.Nil(t, result.CategoryName)
	assert.Equal(t, "no clear theme", result.Reasoning)
}

func TestParseCategorization_MalformedFallsBack(t *testing.T) {
	for _, raw := range []string{
		"I think this is about fitness",
		"",
		`{"categoryName": `,
	} {
		result := ParseCategorization(raw)

		assert.Nil(t, result.CategoryName)
		assert.Equal(t, "Could not parse AI response", result.Reasoning)
	}
}

func TestParseCategorization_CodeFence(t *testing.T) {
	raw := "```json\n{\"categoryName\": \"Work\", \"reasoning\": \"mentions a deadline\"}\n```"

	result := ParseCategorization(raw)

	require.NotNil(t, result.CategoryName)
	assert.Equal(t, "Work", *result.CategoryName)
}

func TestParseCategorization_SurroundingProse(t *testing.T) {
	raw := `Sure! Here is the JSON: {"categoryName": "Travel Ideas", "reasoning": "trip planning"} Hope that helps.`

	result := ParseCategorization(raw)

	require.NotNil(t, result.CategoryName)
	assert.Equal(t, "Travel Ideas", *result.CategoryName)
}

func TestParseInsightItems_Valid(t *testing.T) {
	raw := `[
		{"type": "habit", "title": "Morning runs", "content": "You run most mornings.", "priority": "high"},
		{"type": "habit", "title": "Late nights", "content": "Entries cluster after midnight.", "priority": "low"}
	]`

	items := ParseInsightItems(raw, KindHabits)

	require.Len(t, items, 2)
	assert.Equal(t, "Morning runs", items[0].Title)
	assert.Equal(t, "high", items[0].Priority)
}

func TestParseInsightItems_MalformedFallsBack(t *testing.T) {
	items := ParseInsightItems("the model rambled instead of emitting JSON", KindActions)

	require.Len(t, items, 1)
	assert.Equal(t, "action", items[0].Type)
	assert.Equal(t, "Unable to generate structured insights at this time.", items[0].Content)
}

func TestParseInsightItems_DropsEmptyContent(t *testing.T) {
	raw := `[
		{"type": "insight", "title": "Real one", "content": "Something observed."},
		{"type": "insight", "title": "Padding", "content": "   "}
	]`

	items := ParseInsightItems(raw, KindInsights)

	require.Len(t, items, 1)
	assert.Equal(t, "Real one", items[0].Title)
}

func TestParseInsightItems_AllEmptyFallsBack(t *testing.T) {
	items := ParseInsightItems(`[{"type": "insight", "title": "x", "content": ""}]`, KindPatterns)

	require.Len(t, items, 1)
	assert.Equal(t, "pattern", items[0].Type)
}

func TestParseLegacyInsights_Valid(t *testing.T) {
	raw := `[
		{"insight_text": "You journal more on weekends.", "action_plan": "Block weekday time.", "category_id": null}
	]`

	items := ParseLegacyInsights(raw)

	require.Len(t, items, 1)
	assert.Equal(t, "You journal more on weekends.", items[0].InsightText)
	require.NotNil(t, items[0].ActionPlan)
	assert.Equal(t, "Block weekday time.", *items[0].ActionPlan)
	assert.Nil(t, items[0].CategoryID)
}

func TestParseLegacyInsights_MalformedFallsBack(t *testing.T) {
	items := ParseLegacyInsights("not json at all")

	require.Len(t, items, 1)
	assert.Equal(t, "Unable to generate structured insights at this time.", items[0].InsightText)
	assert.Nil(t, items[0].ActionPlan)
	assert.Nil(t, items[0].CategoryID)
}

func TestParseLegacyInsights_EmptyListFallsBack(t *testing.T) {
	items := ParseLegacyInsights("[]")

	require.Len(t, items, 1)
	assert.Equal(t, "Unable to generate structured insights at this time.", items[0].InsightText)
}
