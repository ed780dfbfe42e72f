package main

import (
	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/diadi/internal/board"
)

var statusCmd = &cobra.Command{
	Use:     "status [file]",
	Short:   "Show session counts by group and status",
	GroupID: "sessions",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := loadSessions(args, 0)
		if err != nil {
			return err
		}
		b, err := board.Build(sessions, boardOptions())
		if err != nil {
			return err
		}
		byStatus := board.CountByStatus(sessions)

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"groups":   b.Counts(),
				"statuses": byStatus,
				"total":    b.Total(),
			})
		}
		printCounts(cmd.OutOrStdout(), b.Counts(), byStatus, b.Total())
		return nil
	},
}
