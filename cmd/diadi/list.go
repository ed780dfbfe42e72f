package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/diadi/internal/board"
	"github.com/alfredjeanlab/diadi/internal/client"
	"github.com/alfredjeanlab/diadi/internal/model"
)

var listCmd = &cobra.Command{
	Use:     "list [file]",
	Short:   "List sessions grouped into active, upcoming and past",
	Long:    "List sessions from a feed file (JSON array, {\"sessions\": [...]} envelope or JSONL). Reads stdin when no file or \"-\" is given.",
	GroupID: "sessions",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, _ := cmd.Flags().GetStringSlice("group")
		statuses, _ := cmd.Flags().GetStringSlice("status")

		filter, err := parseFilter(groups, statuses)
		if err != nil {
			return err
		}

		sessions, err := loadSessions(args, 0)
		if err != nil {
			return err
		}

		var b *board.Board
		if c := remoteClient(); c != nil {
			defer c.Close()
			resp, err := c.BuildBoard(cmd.Context(), &client.BuildBoardRequest{
				Sessions: sessions,
				Groups:   filter.Groups,
				Statuses: filter.Statuses,
				Variant:  cfg.Display.Variant,
			})
			if err != nil {
				return err
			}
			b = &resp.Board
		} else {
			if b, err = board.Build(sessions, boardOptions()); err != nil {
				return err
			}
			b = b.Apply(filter)
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), b)
		}
		printBoardTable(cmd.OutOrStdout(), b)
		return nil
	},
}

func parseFilter(groups, statuses []string) (board.Filter, error) {
	var f board.Filter
	for _, g := range groups {
		group := model.Group(g)
		if !group.IsValid() {
			return board.Filter{}, fmt.Errorf("invalid --group %q (must be active, upcoming or past)", g)
		}
		f.Groups = append(f.Groups, group)
	}
	for _, raw := range statuses {
		s, err := model.ParseStatus(raw)
		if err != nil {
			return board.Filter{}, fmt.Errorf("--status: %w", err)
		}
		f.Statuses = append(f.Statuses, s)
	}
	return f, nil
}

func init() {
	listCmd.Flags().StringSliceP("group", "g", nil, "filter by group (repeatable)")
	listCmd.Flags().StringSliceP("status", "s", nil, "filter by status (repeatable)")
}
