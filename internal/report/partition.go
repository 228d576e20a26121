// Package report implements the issue grouping and per-assignee rollup logic
// behind the issues and report commands.
package report

import "github.com/svanharmelen/jira/pkg/types"

// Subtasks maps a parent issue key to its subtasks, in input order.
type Subtasks map[string][]types.Issue

// Partition splits a flat issue list into top-level issues and a map from
// parent key to subtasks. Input order is preserved on both sides.
//
// The assignee and issue key filters (empty string means unset) apply to
// subtasks only; top-level issues are always kept here and filtered later
// with MatchesAssignee and MatchesKey. A subtask without a resolvable parent
// key is dropped entirely.
func Partition(issues []types.Issue, assignee, issueKey string) ([]types.Issue, Subtasks) {
	var topLevel []types.Issue
	subtasks := make(Subtasks)

	for _, issue := range issues {
		if !issue.IsSubtask() {
			topLevel = append(topLevel, issue)
			continue
		}

		parent := issue.ParentKey()
		if parent == "" {
			continue
		}
		if assignee != "" && issue.AssigneeName() != assignee {
			continue
		}
		if issueKey != "" && issue.Key != issueKey && parent != issueKey {
			continue
		}

		subtasks[parent] = append(subtasks[parent], issue)
	}

	return topLevel, subtasks
}

// MatchesAssignee reports whether a top-level issue should be shown for the
// given assignee filter: either the issue itself or one of its grouped
// subtasks is assigned to them. An empty filter matches everything.
func MatchesAssignee(subtasks Subtasks, issue types.Issue, assignee string) bool {
	if assignee == "" {
		return true
	}
	if issue.AssigneeName() == assignee {
		return true
	}
	for _, sub := range subtasks[issue.Key] {
		if sub.AssigneeName() == assignee {
			return true
		}
	}
	return false
}

// MatchesKey reports whether a top-level issue should be shown for the given
// issue key filter: its own key matches or one of its grouped subtasks has
// that key. An empty filter matches everything.
func MatchesKey(subtasks Subtasks, issue types.Issue, issueKey string) bool {
	if issueKey == "" {
		return true
	}
	if issue.Key == issueKey {
		return true
	}
	for _, sub := range subtasks[issue.Key] {
		if sub.Key == issueKey {
			return true
		}
	}
	return false
}
