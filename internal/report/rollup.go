package report

import (
	"strings"

	"github.com/svanharmelen/jira/pkg/types"
)

// Flatten renders one display column for a top-level issue. If the issue has
// subtasks, the extractor is applied to each subtask and the results are
// joined with newlines, giving one line per subtask inside a single table
// cell. Otherwise the extractor is applied to the issue itself.
func Flatten(subtasks Subtasks, issue types.Issue, extract func(types.Issue) string) string {
	group, ok := subtasks[issue.Key]
	if !ok {
		return extract(issue)
	}

	lines := make([]string, 0, len(group))
	for _, sub := range group {
		lines = append(lines, extract(sub))
	}
	return strings.Join(lines, "\n")
}

// Clip truncates text to percent% of the given terminal width, appending an
// ellipsis when content was removed. A width of 0 disables truncation.
func Clip(text string, width, percent float64) string {
	if width == 0 {
		return text
	}

	limit := int(width / 100 * percent)
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
