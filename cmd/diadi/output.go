package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alfredjeanlab/diadi/internal/board"
	"github.com/alfredjeanlab/diadi/internal/model"
	"github.com/alfredjeanlab/diadi/internal/ui"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBoardTable prints one section per non-empty lane. The status badge is
// the last column because its escape codes would skew tabwriter alignment.
func printBoardTable(w io.Writer, b *board.Board) {
	for _, g := range model.Groups() {
		cards := b.Lane(g)
		if len(cards) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s (%d)\n", ui.RenderAccent(strings.ToUpper(g.String())), len(cards))
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tPARTNER\tDATE\tACTION\tROUTE\tSTATUS")
		for _, c := range cards {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				c.ID,
				truncate(c.Title, 40),
				c.Partner,
				c.DisplayDateText,
				c.Action.CTAText,
				c.Action.Destination,
				ui.RenderBadge(c.Label, c.Category),
			)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d sessions\n", b.Total())
}

// printCard prints one card as labelled lines.
func printCard(w io.Writer, c board.Card) {
	fmt.Fprintf(w, "ID:       %s\n", c.ID)
	fmt.Fprintf(w, "Title:    %s\n", c.Title)
	if c.Goal != c.Title {
		fmt.Fprintf(w, "Goal:     %s\n", c.Goal)
	}
	fmt.Fprintf(w, "Status:   %s (%s)\n", ui.RenderBadge(c.Label, c.Category), c.Status)
	fmt.Fprintf(w, "Group:    %s\n", c.Group)
	fmt.Fprintf(w, "Partner:  %s\n", c.Partner)
	if c.Scheduled {
		fmt.Fprintf(w, "Date:     %s (scheduled)\n", c.DisplayDateText)
	} else {
		fmt.Fprintf(w, "Date:     %s (created)\n", c.DisplayDateText)
	}
	fmt.Fprintf(w, "Action:   %s -> %s\n", c.Action.CTAText, c.Action.Destination)
	if c.Action.ShowSecondaryDetailLink && c.Action.Destination != c.Action.DetailRoute {
		fmt.Fprintf(w, "Details:  %s\n", c.Action.DetailRoute)
	}
	if next := model.NextStatuses(c.Status); len(next) > 0 {
		names := make([]string, len(next))
		for i, s := range next {
			names[i] = s.String()
		}
		fmt.Fprintf(w, "Next:     %s\n", strings.Join(names, ", "))
	}
}

// printStatusTable prints the taxonomy with each status's derivations.
func printStatusTable(w io.Writer, rows []board.StatusRow) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSTATUS\tGROUP\tLABEL\tCOMPACT\tCATEGORY\tCTA\tNEXT")
	for _, r := range rows {
		next := "-"
		if len(r.Next) > 0 {
			names := make([]string, len(r.Next))
			for i, s := range r.Next {
				names[i] = s.String()
			}
			next = strings.Join(names, ",")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Order, r.Status, r.Group, r.Label, r.Compact, r.Category, r.CTAText, next)
	}
	tw.Flush()
}

// printCounts prints per-group and per-status counts.
func printCounts(w io.Writer, byGroup map[model.Group]int, byStatus map[model.Status]int, total int) {
	fmt.Fprintln(w, "Sessions")
	for _, g := range model.Groups() {
		fmt.Fprintf(w, "  %-9s %d\n", strings.ToUpper(g.String()[:1])+g.String()[1:]+":", byGroup[g])
	}
	fmt.Fprintf(w, "  %-9s %d\n", "Total:", total)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "By status")
	for _, s := range model.Statuses() {
		fmt.Fprintf(w, "  %-16s %d\n", s.String()+":", byStatus[s])
	}
}
