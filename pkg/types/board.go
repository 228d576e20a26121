package types

import "time"

// Board is a Jira board.
type Board struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Sprint is a Jira sprint. StartDate and EndDate are nil for sprints that
// have not been scheduled yet.
type Sprint struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	State         string     `json:"state"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	OriginBoardID int        `json:"originBoardId,omitempty"`
}
