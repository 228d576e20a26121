package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/svanharmelen/jira/internal/render"
	"github.com/svanharmelen/jira/internal/report"
	"github.com/svanharmelen/jira/pkg/types"
)

var (
	reportBoardID  int
	reportSprintID int
	reportPlanning bool
	reportUpdate   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show and update original estimates and time logged",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().IntVarP(&reportBoardID, "board-id", "b", 0, "Board ID from which to fetch issues")
	reportCmd.Flags().IntVarP(&reportSprintID, "sprint-id", "s", 0, "Sprint ID from which to fetch issues")
	reportCmd.Flags().BoolVarP(&reportPlanning, "planning", "p", false, "Ignore issues that are done")
	reportCmd.Flags().BoolVarP(&reportUpdate, "update", "U", false, "Update estimates and time logged")
	reportCmd.MarkFlagsOneRequired("board-id", "sprint-id")
	reportCmd.MarkFlagsMutuallyExclusive("board-id", "sprint-id")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	client, logger, err := newClient()
	if err != nil {
		return err
	}
	defer logger.Sync()
	ctx := cmd.Context()

	boardID, err := resolveBoardID(ctx, client, reportBoardID, reportSprintID)
	if err != nil {
		return err
	}
	if _, err := client.Board(ctx, boardID); err != nil {
		return err
	}

	jql := reportJQL(reportPlanning, reportSprintID)
	fields := []string{"assignee", "issuetype", "key", "parent", "timetracking"}
	fetched, err := client.SearchBoardIssues(ctx, boardID, jql, fields)
	if err != nil {
		return err
	}

	issues, subtasks := report.Partition(fetched, "", "")

	users := report.NewUsers()
	if err := aggregateIssues(ctx, client, issues, subtasks, users, reportUpdate); err != nil {
		return err
	}

	table := render.NewTable("Assignee", "Issues", "Estimated", "Remaining", "Time Spent")
	users.Drain(func(assignee string, user *report.User) {
		row := []string{
			assignee,
			strconv.Itoa(user.Assignments()),
			fmt.Sprintf("%.1fd", user.OriginalEstimateDays()),
		}
		if !reportPlanning {
			row = append(row,
				fmt.Sprintf("%.1fd", user.RemainingEstimateDays()),
				fmt.Sprintf("%.1fd", user.TimeSpentDays()),
			)
		}
		table.AddRow(row...)
	})
	table.Print("No issues were found to match your search")

	return nil
}

// estimateUpdater is the slice of the Jira client the report loop writes
// through.
type estimateUpdater interface {
	UpdateEstimates(ctx context.Context, issueID string, estimate, remaining int64) error
}

// aggregateIssues folds the per-assignee totals over the top-level issues,
// one field at a time. With update set, each issue's summed estimates are
// written back in whole minutes before its time spent is recorded; a failed
// update aborts the loop immediately, leaving earlier updates applied.
func aggregateIssues(ctx context.Context, updater estimateUpdater, issues []types.Issue, subtasks report.Subtasks, users *report.Users, update bool) error {
	for _, issue := range issues {
		estimate := report.Aggregate(subtasks, issue, users, report.FieldEstimate)
		remaining := report.Aggregate(subtasks, issue, users, report.FieldRemaining)

		if update {
			if err := updater.UpdateEstimates(ctx, issue.ID, estimate/60, remaining/60); err != nil {
				return err
			}
		}

		// Recorded for the per-assignee totals only.
		report.Aggregate(subtasks, issue, users, report.FieldSpent)
	}
	return nil
}
