package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parables-of-the-word-api/internal/services"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <id>",
		Short: "Ask questions about a parable, one per line",
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

			svc := services.NewChatService(model, parables, retryPolicy(), logger)
			session := svc.OpenSession(p)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ask about %s (%s). End input to quit.\n", p.Title, p.Reference)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}
				question := strings.TrimSpace(scanner.Text())
				if question == "" {
					continue
				}

				reply, err := svc.SendMessage(ctx, session, question)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\n\n", reply)
			}
		},
	}
}
