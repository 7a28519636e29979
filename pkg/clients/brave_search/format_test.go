package brave_search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatForPromptEmpty(t *testing.T) {
	assert.Empty(t, FormatForPrompt(nil, nil))
	// 所有条目都搜不到结果时提示词里不出现搜索段落
	assert.Empty(t, FormatForPrompt([]string{"a1", "b2"}, map[string]*SearchData{"a1": nil, "b2": nil}))
}

func TestFormatForPrompt(t *testing.T) {
	results := map[string]*SearchData{
		"iPhone 15": {
			Query:   "iPhone 15 Gadgets",
			Summary: "The iPhone 15 has a 6.1 inch display.",
			Results: []SearchResult{
				{Title: "iPhone 15 review", URL: "https://example.com/iphone"},
			},
		},
		"Samsung S24": nil,
	}

	text := FormatForPrompt([]string{"iPhone 15", "Samsung S24"}, results)
	assert.Contains(t, text, "REAL-TIME SEARCH RESULTS:")
	assert.Contains(t, text, "**iPhone 15:**")
	assert.Contains(t, text, "The iPhone 15 has a 6.1 inch display.")
	assert.Contains(t, text, "Source: https://example.com/iphone")
	assert.Contains(t, text, "**Samsung S24:**")
	assert.Contains(t, text, "No search results found for this item.")
}
