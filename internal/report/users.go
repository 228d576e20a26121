package report

import (
	"sort"

	"github.com/svanharmelen/jira/pkg/types"
)

// Seconds in an 8-hour workday.
const secondsPerDay = 8 * 60 * 60

// Field selects which time-tracking value an operation works on.
type Field int

const (
	FieldEstimate Field = iota
	FieldRemaining
	FieldSpent
)

// User accumulates per-assignee totals across one report run.
type User struct {
	issues    int
	estimate  float64
	remaining float64
	spent     float64
}

// Assignments returns the number of recorded estimate contributions. Each
// subtask (or bare issue) with an original estimate counts once.
func (u *User) Assignments() int {
	return u.issues
}

// OriginalEstimateDays returns the estimate total in 8-hour workdays.
func (u *User) OriginalEstimateDays() float64 {
	return u.estimate / secondsPerDay
}

// RemainingEstimateDays returns the remaining total in 8-hour workdays.
func (u *User) RemainingEstimateDays() float64 {
	return u.remaining / secondsPerDay
}

// TimeSpentDays returns the time spent total in 8-hour workdays.
func (u *User) TimeSpentDays() float64 {
	return u.spent / secondsPerDay
}

// Users is the per-assignee accumulator for a single report run. It is
// always passed explicitly; there is no shared state between runs.
type Users struct {
	byName map[string]*User
}

// NewUsers returns an empty accumulator.
func NewUsers() *Users {
	return &Users{byName: make(map[string]*User)}
}

// Record adds seconds to the assignee's total for the given field and
// returns the value unchanged so callers can sum while recording. A nil
// value leaves the accumulator untouched and is not counted: absence is not
// zero. Only estimate contributions count towards Assignments.
func (u *Users) Record(assignee string, field Field, seconds *int64) *int64 {
	if seconds == nil {
		return nil
	}

	user, ok := u.byName[assignee]
	if !ok {
		user = &User{}
		u.byName[assignee] = user
	}

	switch field {
	case FieldEstimate:
		user.issues++
		user.estimate += float64(*seconds)
	case FieldRemaining:
		user.remaining += float64(*seconds)
	case FieldSpent:
		user.spent += float64(*seconds)
	}
	return seconds
}

// Drain visits every accumulated user in ascending assignee order and then
// empties the accumulator. It is meant to be consumed exactly once, when the
// report table is built.
func (u *Users) Drain(fn func(assignee string, user *User)) {
	names := make([]string, 0, len(u.byName))
	for name := range u.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fn(name, u.byName[name])
	}
	u.byName = make(map[string]*User)
}

// Aggregate records the given field for a top-level issue, flattened over
// its subtasks, and returns the summed seconds. When the issue has subtasks
// only their values contribute, each recorded under the subtask's own
// effective assignee; otherwise the issue's own value is recorded. Absent
// values contribute 0 to the sum and leave the accumulator alone.
func Aggregate(subtasks Subtasks, issue types.Issue, users *Users, field Field) int64 {
	group, ok := subtasks[issue.Key]
	if !ok {
		if v := users.Record(issue.AssigneeName(), field, fieldSeconds(issue, field)); v != nil {
			return *v
		}
		return 0
	}

	var total int64
	for _, sub := range group {
		if v := users.Record(sub.AssigneeName(), field, fieldSeconds(sub, field)); v != nil {
			total += *v
		}
	}
	return total
}

func fieldSeconds(issue types.Issue, field Field) *int64 {
	switch field {
	case FieldEstimate:
		return issue.OriginalEstimateSeconds()
	case FieldRemaining:
		return issue.RemainingEstimateSeconds()
	default:
		return issue.TimeSpentSeconds()
	}
}
