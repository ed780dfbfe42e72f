package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/diadi/internal/idgen"
	"github.com/alfredjeanlab/diadi/internal/model"
	"github.com/alfredjeanlab/diadi/internal/sessionfile"
)

// newSessionInput carries the flag values for a draft session.
type newSessionInput struct {
	Goal        string
	Title       string
	Creator     string
	Partner     string
	ScheduledAt string
}

// buildDraft assembles and validates a draft session.
func buildDraft(in newSessionInput, now time.Time) (model.Session, error) {
	id, err := idgen.Generate()
	if err != nil {
		return model.Session{}, err
	}

	s := model.Session{
		ID:        id,
		Title:     strings.TrimSpace(in.Title),
		Goal:      strings.TrimSpace(in.Goal),
		Status:    model.StatusDraft,
		CreatedAt: now.UTC(),
	}
	if in.Creator != "" {
		s.Participants = append(s.Participants, model.Participant{Name: in.Creator, Role: model.RoleCreator, Consented: true})
	}
	if in.Partner != "" {
		s.Participants = append(s.Participants, model.Participant{Name: in.Partner, Role: model.RoleInvitee})
	}
	if in.ScheduledAt != "" {
		t, err := time.Parse(time.RFC3339, in.ScheduledAt)
		if err != nil {
			return model.Session{}, fmt.Errorf("invalid --scheduled-at %q (want RFC3339, e.g. 2026-11-02T15:00:00Z): %w", in.ScheduledAt, err)
		}
		s.ScheduledAt = &t
	}

	if err := model.ValidateSession(&s); err != nil {
		return model.Session{}, err
	}
	return s, nil
}

var newCmd = &cobra.Command{
	Use:     "new",
	Short:   "Print a new draft session for appending to a feed",
	GroupID: "sessions",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var in newSessionInput
		in.Goal, _ = cmd.Flags().GetString("goal")
		in.Title, _ = cmd.Flags().GetString("title")
		in.Creator, _ = cmd.Flags().GetString("creator")
		in.Partner, _ = cmd.Flags().GetString("partner")
		in.ScheduledAt, _ = cmd.Flags().GetString("scheduled-at")

		s, err := buildDraft(in, time.Now())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), s)
		}
		return sessionfile.Write(cmd.OutOrStdout(), []model.Session{s})
	},
}

func init() {
	newCmd.Flags().String("goal", "", "what the session should accomplish (required)")
	newCmd.Flags().String("title", "", "session title (defaults to the goal on display)")
	newCmd.Flags().String("creator", "", "creator display name")
	newCmd.Flags().String("partner", "", "invited partner display name")
	newCmd.Flags().String("scheduled-at", "", "scheduled start time (RFC3339)")
	_ = newCmd.MarkFlagRequired("goal")
}
