package commands

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/svanharmelen/jira/internal/render"
)

var (
	sprintsBoardID int
	sprintsAll     bool
	sprintsActive  bool
	sprintsFuture  bool
)

var sprintsCmd = &cobra.Command{
	Use:   "sprints",
	Short: "List and filter sprints from a given board",
	Args:  cobra.NoArgs,
	RunE:  runSprints,
}

func init() {
	sprintsCmd.Flags().IntVarP(&sprintsBoardID, "board-id", "b", 0, "Board ID from which to fetch sprints")
	sprintsCmd.Flags().BoolVarP(&sprintsAll, "all", "A", false, "Also show closed sprints")
	sprintsCmd.Flags().BoolVarP(&sprintsActive, "active", "a", false, "Only show active sprints")
	sprintsCmd.Flags().BoolVarP(&sprintsFuture, "future", "f", false, "Only show future sprints")
	sprintsCmd.MarkFlagRequired("board-id")
	sprintsCmd.MarkFlagsMutuallyExclusive("all", "active", "future")
	rootCmd.AddCommand(sprintsCmd)
}

func runSprints(cmd *cobra.Command, args []string) error {
	client, logger, err := newClient()
	if err != nil {
		return err
	}
	defer logger.Sync()
	ctx := cmd.Context()

	if _, err := client.Board(ctx, sprintsBoardID); err != nil {
		return err
	}

	state := "active,future"
	switch {
	case sprintsAll:
		state = ""
	case sprintsActive:
		state = "active"
	case sprintsFuture:
		state = "future"
	}

	sprints, err := client.Sprints(ctx, sprintsBoardID, state)
	if err != nil {
		return err
	}
	sort.Slice(sprints, func(i, j int) bool { return sprints[i].ID > sprints[j].ID })

	table := render.NewTable("ID", "Name", "State", "Start", "End")
	for _, sprint := range sprints {
		sprintState := sprint.State
		if sprintState == "" {
			sprintState = "unknown"
		}
		table.AddRow(
			strconv.Itoa(sprint.ID),
			sprint.Name,
			sprintState,
			render.FormatDate(sprint.StartDate),
			render.FormatDate(sprint.EndDate),
		)
	}
	table.Print("No sprints were found for this board")

	return nil
}
