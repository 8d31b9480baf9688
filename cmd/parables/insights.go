package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/parables-of-the-word-api/internal/models"
	"github.com/parables-of-the-word-api/internal/services"
)

func newInsightsCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "insights <id>",
		Short: "Generate scripture, interpretation, context and a modern example",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookup(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			model, err := newModel(ctx)
			if err != nil {
				return err
			}
			defer model.Close()

			svc := services.NewInsightService(model, retryPolicy(), logger)
			insights, err := svc.FetchInsights(ctx, p)
			if err != nil {
				return err
			}

			doc := insightsMarkdown(p, insights)
			if !plain {
				doc, err = renderMarkdown(doc)
				if err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), doc)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print markdown without terminal styling")
	return cmd
}

func insightsMarkdown(p models.Parable, in *models.Insights) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n*%s*\n\n", p.Title, p.Reference)
	fmt.Fprintf(&sb, "## Scripture\n\n%s\n\n", in.ScriptureText)
	fmt.Fprintf(&sb, "## Interpretation\n\n%s\n\n", in.Interpretation)
	fmt.Fprintf(&sb, "## Historical Context\n\n%s\n\n", in.Clarification)
	fmt.Fprintf(&sb, "## In Life Today\n\n%s\n", in.ModernExample)
	return sb.String()
}

func renderMarkdown(doc string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(88),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	return r.Render(doc)
}
