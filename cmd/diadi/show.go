package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/diadi/internal/board"
	"github.com/alfredjeanlab/diadi/internal/model"
)

func resolveCard(cmd *cobra.Command, s model.Session) (board.Card, error) {
	c := remoteClient()
	if c == nil {
		return board.NewCard(s, boardOptions())
	}
	defer c.Close()
	card, err := c.ResolveSession(cmd.Context(), s, cfg.Display.Variant)
	if err != nil {
		return board.Card{}, err
	}
	return *card, nil
}

var showCmd = &cobra.Command{
	Use:     "show <id> [file]",
	Short:   "Show the card for one session",
	GroupID: "sessions",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		sessions, err := loadSessions(args, 1)
		if err != nil {
			return err
		}
		for _, s := range sessions {
			if s.ID != id {
				continue
			}
			card, err := resolveCard(cmd, s)
			if err != nil {
				return fmt.Errorf("session %q: %w", id, err)
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), card)
			}
			printCard(cmd.OutOrStdout(), card)
			return nil
		}
		return fmt.Errorf("session %q not found", id)
	},
}
