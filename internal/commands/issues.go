package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/svanharmelen/jira/internal/render"
	"github.com/svanharmelen/jira/internal/report"
	"github.com/svanharmelen/jira/pkg/types"
)

var (
	issuesBoardID    int
	issuesSprintID   int
	issuesAssignee   string
	issuesIssue      string
	issuesAll        bool
	issuesNoSubtasks bool
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "List, filter and search issues from a given board",
	Args:  cobra.NoArgs,
	RunE:  runIssues,
}

func init() {
	issuesCmd.Flags().IntVarP(&issuesBoardID, "board-id", "b", 0, "Board ID from which to fetch issues")
	issuesCmd.Flags().IntVarP(&issuesSprintID, "sprint-id", "s", 0, "Sprint ID from which to fetch issues")
	issuesCmd.Flags().StringVarP(&issuesAssignee, "assignee", "a", "", "Only show issues for a given assignee")
	issuesCmd.Flags().StringVarP(&issuesIssue, "issue", "i", "", "Show details from a specific issue")
	issuesCmd.Flags().BoolVarP(&issuesAll, "all", "A", false, "Also show issues that are done")
	issuesCmd.Flags().BoolVarP(&issuesNoSubtasks, "no-subtasks", "S", false, "Only show stories, tasks and bugs")
	issuesCmd.MarkFlagsOneRequired("board-id", "sprint-id")
	issuesCmd.MarkFlagsMutuallyExclusive("board-id", "sprint-id")
	issuesCmd.MarkFlagsMutuallyExclusive("assignee", "issue")
	rootCmd.AddCommand(issuesCmd)
}

func runIssues(cmd *cobra.Command, args []string) error {
	client, logger, err := newClient()
	if err != nil {
		return err
	}
	defer logger.Sync()
	ctx := cmd.Context()

	boardID, err := resolveBoardID(ctx, client, issuesBoardID, issuesSprintID)
	if err != nil {
		return err
	}
	if _, err := client.Board(ctx, boardID); err != nil {
		return err
	}

	jql := issuesJQL(issuesIssue, issuesAll, issuesNoSubtasks, issuesSprintID)
	fields := []string{"assignee", "issuetype", "key", "parent", "status", "summary", "timetracking"}
	fetched, err := client.SearchBoardIssues(ctx, boardID, jql, fields)
	if err != nil {
		return err
	}

	issues, subtasks := report.Partition(fetched, issuesAssignee, issuesIssue)
	width := render.Width()

	table := render.NewTable(
		"Key",
		"Type",
		"Summary",
		"Sub-Tasks",
		"Status",
		"Assignee",
		"Estimated",
		"Remaining",
		"Time Spent",
	)

	for _, issue := range issues {
		if !report.MatchesAssignee(subtasks, issue, issuesAssignee) {
			continue
		}
		if !report.MatchesKey(subtasks, issue, issuesIssue) {
			continue
		}

		table.AddRow(
			issue.Key,
			issue.TypeName(),
			report.Clip(issue.SummaryText(), width, 40),
			subtaskSummaries(subtasks, issue, width),
			report.Flatten(subtasks, issue, types.Issue.StatusName),
			report.Flatten(subtasks, issue, types.Issue.AssigneeName),
			report.Flatten(subtasks, issue, types.Issue.OriginalEstimate),
			report.Flatten(subtasks, issue, types.Issue.RemainingEstimate),
			report.Flatten(subtasks, issue, types.Issue.TimeSpent),
		)
	}
	table.Print("No issues were found to match your search")

	return nil
}

// subtaskSummaries renders the Sub-Tasks cell: one "key: summary" line per
// subtask, or "-" when the issue has none.
func subtaskSummaries(subtasks report.Subtasks, issue types.Issue, width float64) string {
	group, ok := subtasks[issue.Key]
	if !ok {
		return "-"
	}

	lines := make([]string, 0, len(group))
	for _, sub := range group {
		lines = append(lines, report.Clip(fmt.Sprintf("%s: %s", sub.Key, sub.SummaryText()), width, 60))
	}
	return strings.Join(lines, "\n")
}
