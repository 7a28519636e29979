package brave_search

import (
	"strings"
)

// FormatForPrompt 把搜索结果拼成提示词片段。items 决定输出顺序，
// 所有条目都没有结果时返回空串（提示词里就不出现搜索段落）。
func FormatForPrompt(items []string, searchResults map[string]*SearchData) string {
	if len(searchResults) == 0 {
		return ""
	}

	allEmpty := true
	for _, v := range searchResults {
		if v != nil {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return ""
	}

	var sections []string
	sections = append(sections,
		"",
		"REAL-TIME SEARCH RESULTS:",
		"Use the following search results as the PRIMARY source of information.",
		"Only use facts from these results. If information is not found, explicitly state that.",
		"")

	for _, itemName := range items {
		result := searchResults[itemName]
		sections = append(sections, "**"+itemName+":**")
		if result == nil {
			sections = append(sections, "No search results found for this item.", "")
			continue
		}

		if result.Summary != "" {
			sections = append(sections, result.Summary)
		} else {
			sections = append(sections, "No search results summary available.")
		}

		for _, res := range result.Results {
			if res.URL != "" {
				sections = append(sections, "  Source: "+res.URL)
			}
		}

		sections = append(sections, "")
	}

	return strings.Join(sections, "\n")
}
