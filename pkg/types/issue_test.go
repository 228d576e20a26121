package types

import (
	"encoding/json"
	"testing"
)

func TestAccessorsApplySentinels(t *testing.T) {
	var issue Issue

	if got := issue.TypeName(); got != Unknown {
		t.Fatalf("expected %q, got %q", Unknown, got)
	}
	if got := issue.AssigneeName(); got != Unassigned {
		t.Fatalf("expected %q, got %q", Unassigned, got)
	}
	if got := issue.StatusName(); got != NotAvailable {
		t.Fatalf("expected %q, got %q", NotAvailable, got)
	}
	if got := issue.SummaryText(); got != NotAvailable {
		t.Fatalf("expected %q, got %q", NotAvailable, got)
	}
	if got := issue.OriginalEstimate(); got != NotAvailable {
		t.Fatalf("expected %q, got %q", NotAvailable, got)
	}
	if got := issue.RemainingEstimate(); got != NotAvailable {
		t.Fatalf("expected %q, got %q", NotAvailable, got)
	}
	if got := issue.TimeSpent(); got != NotAvailable {
		t.Fatalf("expected %q, got %q", NotAvailable, got)
	}
}

func TestAccessorsReturnPresentValues(t *testing.T) {
	issue := Issue{
		Key: "KEY-1",
		Fields: Fields{
			Type:     &IssueType{Name: "Story"},
			Assignee: &User{DisplayName: "Alice"},
			Status:   &Status{Name: "In Progress"},
			Summary:  "Do the thing",
			TimeTracking: &TimeTracking{
				OriginalEstimate:  "1d",
				RemainingEstimate: "4h",
				TimeSpent:         "4h",
			},
		},
	}

	if got := issue.TypeName(); got != "Story" {
		t.Fatalf("unexpected type: %q", got)
	}
	if got := issue.AssigneeName(); got != "Alice" {
		t.Fatalf("unexpected assignee: %q", got)
	}
	if got := issue.StatusName(); got != "In Progress" {
		t.Fatalf("unexpected status: %q", got)
	}
	if got := issue.OriginalEstimate(); got != "1d" {
		t.Fatalf("unexpected estimate: %q", got)
	}
}

func TestIsSubtaskAndParentKey(t *testing.T) {
	var issue Issue
	if issue.IsSubtask() {
		t.Fatal("issue without type metadata must not be a subtask")
	}
	if issue.ParentKey() != "" {
		t.Fatal("issue without parent must have an empty parent key")
	}

	issue.Fields.Type = &IssueType{Name: "Sub-Task", Subtask: true}
	issue.Fields.Parent = &Parent{Key: "KEY-1"}
	if !issue.IsSubtask() {
		t.Fatal("subtask flag was not honored")
	}
	if issue.ParentKey() != "KEY-1" {
		t.Fatalf("unexpected parent key %q", issue.ParentKey())
	}
}

func TestDecodeKeepsAbsentSecondsNil(t *testing.T) {
	raw := `{
		"id": "10000",
		"key": "KEY-1",
		"fields": {
			"issuetype": {"name": "Story", "subtask": false},
			"timetracking": {"originalEstimateSeconds": 0}
		}
	}`

	var issue Issue
	if err := json.Unmarshal([]byte(raw), &issue); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := issue.OriginalEstimateSeconds(); got == nil || *got != 0 {
		t.Fatalf("an explicit 0 must decode as present, got %v", got)
	}
	if issue.RemainingEstimateSeconds() != nil {
		t.Fatal("absent remaining estimate must stay nil")
	}
	if issue.TimeSpentSeconds() != nil {
		t.Fatal("absent time spent must stay nil")
	}
}

func TestSecondsAccessorsHandleMissingTimeTracking(t *testing.T) {
	var issue Issue
	if issue.OriginalEstimateSeconds() != nil ||
		issue.RemainingEstimateSeconds() != nil ||
		issue.TimeSpentSeconds() != nil {
		t.Fatal("missing timetracking must read as absent, not zero")
	}
}
