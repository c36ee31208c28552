package ai

import (
	"fmt"
	"strings"
	"time"
)

// TaskKind selects the insight generation flavor requested by the dashboard
type TaskKind string

const (
	KindInsights    TaskKind = "insights"
	KindActions     TaskKind = "actions"
	KindSuggestions TaskKind = "suggestions"
	KindHabits      TaskKind = "habits"
	KindPatterns    TaskKind = "patterns"
	KindGeneral     TaskKind = "general"
)

// MaxPromptEntries caps how many recent entries are rendered into a prompt
const MaxPromptEntries = 50

// NormalizeKind maps a raw kind string to a known TaskKind.
// Unrecognized kinds fall back to the general instruction rather than failing.
func NormalizeKind(raw string) TaskKind {
	switch TaskKind(raw) {
	case KindInsights, KindActions, KindSuggestions, KindHabits, KindPatterns:
		return TaskKind(raw)
	default:
		return KindGeneral
	}
}

// ItemType returns the item type the dashboard expects for a task kind
func ItemType(kind TaskKind) string {
	switch kind {
	case KindInsights:
		return "insight"
	case KindActions:
		return "action"
	case KindSuggestions:
		return "suggestion"
	case KindHabits:
		return "habit"
	case KindPatterns:
		return "pattern"
	default:
		return "insight"
	}
}

// CategorizeOptions returns the generation settings for categorization.
// Low temperature keeps category naming deterministic.
func CategorizeOptions() CallOptions {
	return CallOptions{Temperature: 0.3, MaxTokens: 1000}
}

// InsightOptions returns the generation settings for insight generation.
// Higher temperature suits the open-ended analysis.
func InsightOptions() CallOptions {
	return CallOptions{Temperature: 0.7, MaxTokens: 2000}
}

// CategorizeInstruction is the system instruction for entry categorization
func CategorizeInstruction() string {
	return `You are an intelligent categorization assistant. Analyze the user's thought/entry and suggest the most appropriate category. Categories should be simple, broad themes like: Gym, Job Hunt, Travel Ideas, Personal Growth, Health, Work, Relationships, Hobbies, Goals, etc.

Return a JSON response with:
- categoryName: A short, descriptive category name (or null if unclear)
- reasoning: Brief explanation of why this category was chosen

Keep categories general and reusable. If the content doesn't fit any clear category, return null for categoryName.`
}

// insight kind -> instruction focus
var kindFocus = map[TaskKind]string{
	KindInsights:    `Focus on behavioral and emotional patterns across the entries: recurring moods, motivation shifts, progress toward goals, and opportunities for personal growth.`,
	KindActions:     `Focus on concrete next steps: specific, time-bound actions the user should take based on what they wrote. Every item should be something they can start this week.`,
	KindSuggestions: `Focus on lifestyle, habit, and resource recommendations: routines to adopt, things to read or try, and adjustments that would support what the user is working toward.`,
	KindHabits:      `Focus on habit formation: habits worth building or breaking, habit stacking opportunities on existing routines, and simple ways to track consistency.`,
	KindPatterns:    `Focus on temporal and recurring themes: time-of-day and day-of-week patterns, recurring topics, and cycles that show up across the entries.`,
	KindGeneral:     `Focus on meaningful observations: patterns, trends, and recommendations drawn from the entries as a whole.`,
}

// InsightInstruction builds the system instruction for one of the dashboard
// insight kinds. Unrecognized kinds get the general focus.
func InsightInstruction(kind TaskKind) string {
	focus, ok := kindFocus[kind]
	if !ok {
		focus = kindFocus[KindGeneral]
	}

	return fmt.Sprintf(`You are an insightful AI analyst. Analyze these personal journal entries and provide meaningful insights.

%s

Generate 3-5 items in this exact JSON format:
[
  {
    "type": "%s",
    "title": "A short headline for this item",
    "content": "The observation or recommendation, specific to these entries",
    "priority": "high | medium | low"
  }
]

Be encouraging, constructive, and specific. Return ONLY the JSON array, no other text.`, focus, ItemType(kind))
}

// LegacyInsightInstruction builds the system instruction for the persisted
// insight contract (insight_text / action_plan / category_id items).
func LegacyInsightInstruction() string {
	return `You are an insightful AI analyst. Analyze these personal journal entries and provide meaningful insights about patterns, trends, or recommendations.

Generate 3-5 insights in JSON format:
[
  {
    "insight_text": "A meaningful observation or pattern you noticed",
    "action_plan": "Specific, actionable suggestions based on this insight",
    "category_id": null
  }
]

Focus on:
- Behavioral patterns
- Goal progress
- Emotional trends
- Life balance
- Growth opportunities

Be encouraging, constructive, and specific.`
}

// EntryContext is one journal entry rendered into an insight prompt
type EntryContext struct {
	CreatedAt    time.Time
	CategoryName string
	Content      string
}

// RenderEntries formats entries for the insight prompt payload, newest first,
// capped at MaxPromptEntries. Each line is "[timestamp] (category) content".
func RenderEntries(entries []EntryContext) string {
	if len(entries) > MaxPromptEntries {
		entries = entries[:MaxPromptEntries]
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := "[" + e.CreatedAt.Format(time.RFC3339) + "] "
		if e.CategoryName != "" {
			line += "(" + e.CategoryName + ") "
		}
		line += e.Content
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n\n")
}

// InsightPayload wraps rendered entries into the user message
func InsightPayload(entriesText string) string {
	return "Here are my recent journal entries:\n\n" + entriesText
}
