package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parables-of-the-word-api/internal/browse"
	"github.com/parables-of-the-word-api/internal/models"
)

func newListCmd() *cobra.Command {
	var query, gospel, selected string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List parables matching a search and gospel filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := browse.NewEngine(parables)
			engine.SetQuery(query)
			engine.SetGospelFilter(gospel)
			engine.Select(selected)

			visible := engine.VisibleRecords()
			current := engine.SelectedRecord()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d Parables Found\n", len(visible))
			if len(visible) == 0 {
				fmt.Fprintln(out, "No parables found. Try a different search term or filter.")
				return nil
			}
			for _, p := range visible {
				marker := " "
				if p.ID == current.ID {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %2d. %-36s %-18s %s\n",
					marker, p.Order, p.Title, p.Reference, strings.Join(p.Gospels, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search text matched against title and reference")
	cmd.Flags().StringVarP(&gospel, "gospel", "g", browse.AllGospels, "gospel filter")
	cmd.Flags().StringVar(&selected, "selected", "", "id of the parable to mark as selected")
	return cmd
}

func newGospelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gospels",
		Short: "List the gospel filter values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), browse.AllGospels)
			for _, g := range parables.Gospels() {
				fmt.Fprintln(cmd.OutOrStdout(), g)
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a parable and its neighbours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookup(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", p.Title, p.Reference)
			fmt.Fprintf(out, "Gospels: %s\n", strings.Join(p.Gospels, ", "))
			fmt.Fprintf(out, "%s\n", p.ShortDescription)

			prev, next := parables.Neighbors(p.ID)
			if prev != nil {
				fmt.Fprintf(out, "Previous: %s [%s]\n", prev.Title, prev.ID)
			}
			if next != nil {
				fmt.Fprintf(out, "Next: %s [%s]\n", next.Title, next.ID)
			}
			return nil
		},
	}
}

func lookup(id string) (models.Parable, error) {
	p, ok := parables.Get(id)
	if !ok {
		return models.Parable{}, fmt.Errorf("unknown parable %q", id)
	}
	return p, nil
}
