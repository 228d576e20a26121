package commands

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/svanharmelen/jira/internal/render"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List all boards you have access to",
	Args:  cobra.NoArgs,
	RunE:  runBoards,
}

func init() {
	rootCmd.AddCommand(boardsCmd)
}

func runBoards(cmd *cobra.Command, args []string) error {
	client, logger, err := newClient()
	if err != nil {
		return err
	}
	defer logger.Sync()

	boards, err := client.Boards(cmd.Context())
	if err != nil {
		return err
	}
	sort.Slice(boards, func(i, j int) bool { return boards[i].ID < boards[j].ID })

	table := render.NewTable("ID", "Name", "Type")
	for _, board := range boards {
		table.AddRow(strconv.Itoa(board.ID), board.Name, board.Type)
	}
	table.Print("No boards were found which you have access to")

	return nil
}
