package types

// Sentinel strings used whenever an optional field is absent. Keeping them in
// one place makes the rendering policy easy to assert on.
const (
	Unknown      = "Unknown"
	Unassigned   = "Unassigned"
	NotAvailable = "n/a"
)

// Issue is the slice of a Jira issue this tool cares about.
type Issue struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Fields Fields `json:"fields"`
}

// Fields holds the projected issue fields. Optional fields are pointers so
// that absence is distinguishable from a zero value.
type Fields struct {
	Type         *IssueType    `json:"issuetype,omitempty"`
	Parent       *Parent       `json:"parent,omitempty"`
	Assignee     *User         `json:"assignee,omitempty"`
	Status       *Status       `json:"status,omitempty"`
	Summary      string        `json:"summary,omitempty"`
	TimeTracking *TimeTracking `json:"timetracking,omitempty"`
}

// IssueType carries the type name and the subtask flag.
type IssueType struct {
	Name    string `json:"name"`
	Subtask bool   `json:"subtask"`
}

// Parent references the parent issue of a subtask.
type Parent struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// User is a Jira user reference.
type User struct {
	DisplayName string `json:"displayName"`
}

// Status is the workflow status of an issue.
type Status struct {
	Name string `json:"name"`
}

// TimeTracking holds the provider-formatted display strings and the raw
// seconds values. The seconds fields are pointers because Jira omits them
// when no estimate was ever set, which is not the same as an estimate of 0.
type TimeTracking struct {
	OriginalEstimate         string `json:"originalEstimate,omitempty"`
	RemainingEstimate        string `json:"remainingEstimate,omitempty"`
	TimeSpent                string `json:"timeSpent,omitempty"`
	OriginalEstimateSeconds  *int64 `json:"originalEstimateSeconds,omitempty"`
	RemainingEstimateSeconds *int64 `json:"remainingEstimateSeconds,omitempty"`
	TimeSpentSeconds         *int64 `json:"timeSpentSeconds,omitempty"`
}

// SearchResult is one page of an issue search response.
type SearchResult struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// IsSubtask reports whether the issue type flags this issue as a subtask.
func (i Issue) IsSubtask() bool {
	return i.Fields.Type != nil && i.Fields.Type.Subtask
}

// ParentKey returns the key of the parent issue, or "" if there is none.
func (i Issue) ParentKey() string {
	if i.Fields.Parent == nil {
		return ""
	}
	return i.Fields.Parent.Key
}

// TypeName returns the issue type name, or "Unknown" if absent.
func (i Issue) TypeName() string {
	if i.Fields.Type == nil {
		return Unknown
	}
	return i.Fields.Type.Name
}

// AssigneeName returns the assignee display name, or "Unassigned" if the
// issue has no assignee. Unassigned issues group under that literal name.
func (i Issue) AssigneeName() string {
	if i.Fields.Assignee == nil {
		return Unassigned
	}
	return i.Fields.Assignee.DisplayName
}

// StatusName returns the status name, or "n/a" if absent.
func (i Issue) StatusName() string {
	if i.Fields.Status == nil {
		return NotAvailable
	}
	return i.Fields.Status.Name
}

// SummaryText returns the summary, or "n/a" if absent.
func (i Issue) SummaryText() string {
	if i.Fields.Summary == "" {
		return NotAvailable
	}
	return i.Fields.Summary
}

// OriginalEstimate returns the provider-formatted original estimate string,
// or "n/a" if absent.
func (i Issue) OriginalEstimate() string {
	if i.Fields.TimeTracking == nil || i.Fields.TimeTracking.OriginalEstimate == "" {
		return NotAvailable
	}
	return i.Fields.TimeTracking.OriginalEstimate
}

// RemainingEstimate returns the provider-formatted remaining estimate string,
// or "n/a" if absent.
func (i Issue) RemainingEstimate() string {
	if i.Fields.TimeTracking == nil || i.Fields.TimeTracking.RemainingEstimate == "" {
		return NotAvailable
	}
	return i.Fields.TimeTracking.RemainingEstimate
}

// TimeSpent returns the provider-formatted time spent string, or "n/a" if
// absent.
func (i Issue) TimeSpent() string {
	if i.Fields.TimeTracking == nil || i.Fields.TimeTracking.TimeSpent == "" {
		return NotAvailable
	}
	return i.Fields.TimeTracking.TimeSpent
}

// OriginalEstimateSeconds returns the raw original estimate, or nil if the
// issue carries no time tracking or no estimate.
func (i Issue) OriginalEstimateSeconds() *int64 {
	if i.Fields.TimeTracking == nil {
		return nil
	}
	return i.Fields.TimeTracking.OriginalEstimateSeconds
}

// RemainingEstimateSeconds returns the raw remaining estimate, or nil.
func (i Issue) RemainingEstimateSeconds() *int64 {
	if i.Fields.TimeTracking == nil {
		return nil
	}
	return i.Fields.TimeTracking.RemainingEstimateSeconds
}

// TimeSpentSeconds returns the raw time spent, or nil.
func (i Issue) TimeSpentSeconds() *int64 {
	if i.Fields.TimeTracking == nil {
		return nil
	}
	return i.Fields.TimeTracking.TimeSpentSeconds
}
