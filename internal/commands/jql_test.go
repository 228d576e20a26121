package commands

import "testing"

func TestIssuesJQL(t *testing.T) {
	tests := []struct {
		name       string
		issueKey   string
		all        bool
		noSubtasks bool
		sprintID   int
		want       string
	}{
		{
			name: "default hides done issues",
			want: "status!=Done ORDER BY issuekey",
		},
		{
			name:       "all without subtasks",
			all:        true,
			noSubtasks: true,
			want:       "issuetype!=Sub-Task ORDER BY issuekey",
		},
		{
			name:       "open issues without subtasks",
			noSubtasks: true,
			want:       "status!=Done AND issuetype!=Sub-Task ORDER BY issuekey",
		},
		{
			name: "all alone disables every filter",
			all:  true,
			want: " ORDER BY issuekey",
		},
		{
			name:     "specific issue disables every filter",
			issueKey: "KEY-1",
			want:     " ORDER BY issuekey",
		},
		{
			name:     "sprint selection narrows the query",
			sprintID: 37,
			want:     "status!=Done AND sprint=37 ORDER BY issuekey",
		},
		{
			name:     "specific issue in a sprint",
			issueKey: "KEY-1",
			sprintID: 37,
			want:     "sprint=37 ORDER BY issuekey",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := issuesJQL(tt.issueKey, tt.all, tt.noSubtasks, tt.sprintID); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestReportJQL(t *testing.T) {
	if got := reportJQL(false, 0); got != " ORDER BY assignee" {
		t.Fatalf("unexpected default query %q", got)
	}
	if got := reportJQL(true, 0); got != "status!=Done ORDER BY assignee" {
		t.Fatalf("unexpected planning query %q", got)
	}
	if got := reportJQL(true, 37); got != "status!=Done AND sprint=37 ORDER BY assignee" {
		t.Fatalf("unexpected sprint query %q", got)
	}
}
