package prompt

import (
	"testing"

	"github.com/wardacoder/COMPAIR/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonSystemPromptWinnerVariants(t *testing.T) {
	withPrefs := ComparisonSystemPrompt(true)
	assert.Contains(t, withPrefs, "The user HAS provided preferences.")
	assert.Contains(t, withPrefs, `"personalized_winner": The actual item name`)

	withoutPrefs := ComparisonSystemPrompt(false)
	assert.Contains(t, withoutPrefs, "The user has NOT provided any preferences.")
	assert.Contains(t, withoutPrefs, `Set "personalized_winner": null`)
}

func TestComparisonUserPrompt(t *testing.T) {
	userPrompt := ComparisonUserPrompt("Gadgets", []string{"iPhone 15", "Samsung S24"}, "User Preferences:\nBudget: $800", "SEARCH BLOCK")
	assert.Contains(t, userPrompt, "Category: Gadgets")
	assert.Contains(t, userPrompt, "Items to compare: iPhone 15, Samsung S24")
	assert.Contains(t, userPrompt, "Budget: $800")
	assert.Contains(t, userPrompt, "SEARCH BLOCK")
}

func TestPreferencesText(t *testing.T) {
	text, has := PreferencesText(nil)
	assert.False(t, has)
	assert.Empty(t, text)

	text, has = PreferencesText(&model.UserPreferences{})
	assert.False(t, has)
	assert.Empty(t, text)

	text, has = PreferencesText(&model.UserPreferences{
		Priorities: []string{"camera", "battery"},
		Budget:     "under $900",
		UseCase:    "travel photos",
	})
	require.True(t, has)
	assert.Contains(t, text, "Priorities: camera, battery")
	assert.Contains(t, text, "Budget: under $900")
	assert.Contains(t, text, "Use case: travel photos")
}

func TestFollowUpSystemPrompt(t *testing.T) {
	systemPrompt := FollowUpSystemPrompt([]string{"iPhone 15", "Samsung S24"}, "Gadgets", `{"introduction": "x"}`)
	assert.Contains(t, systemPrompt, "compared iPhone 15, Samsung S24 in the Gadgets category")
	assert.Contains(t, systemPrompt, `{"introduction": "x"}`)
}
