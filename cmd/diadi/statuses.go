package main

import (
	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/diadi/internal/board"
)

var statusesCmd = &cobra.Command{
	Use:     "statuses",
	Short:   "Show the status taxonomy and what each status means",
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			rows []board.StatusRow
			err  error
		)
		if c := remoteClient(); c != nil {
			defer c.Close()
			rows, err = c.ListStatuses(cmd.Context())
		} else {
			rows, err = board.StatusTable()
		}
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), rows)
		}
		printStatusTable(cmd.OutOrStdout(), rows)
		return nil
	},
}
