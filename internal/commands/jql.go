package commands

import (
	"fmt"
	"strings"
)

// issuesJQL builds the server-side filter for the issues command. A specific
// issue disables the status and type filters so subtasks of done issues can
// still be inspected.
func issuesJQL(issueKey string, all, noSubtasks bool, sprintID int) string {
	var filter []string
	switch {
	case issueKey == "" && !all && !noSubtasks:
		filter = []string{"status!=Done"}
	case issueKey == "" && all && noSubtasks:
		filter = []string{"issuetype!=Sub-Task"}
	case issueKey == "" && !all && noSubtasks:
		filter = []string{"status!=Done", "issuetype!=Sub-Task"}
	}

	if sprintID != 0 {
		filter = append(filter, fmt.Sprintf("sprint=%d", sprintID))
	}

	return fmt.Sprintf("%s ORDER BY issuekey", strings.Join(filter, " AND "))
}

// reportJQL builds the server-side filter for the report command. Planning
// mode ignores issues that are already done.
func reportJQL(planning bool, sprintID int) string {
	var filter []string
	if planning {
		filter = []string{"status!=Done"}
	}

	if sprintID != 0 {
		filter = append(filter, fmt.Sprintf("sprint=%d", sprintID))
	}

	return fmt.Sprintf("%s ORDER BY assignee", strings.Join(filter, " AND "))
}
