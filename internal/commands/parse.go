package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/txnotify-dev/txnotify/internal/ingest"
	"github.com/txnotify-dev/txnotify/internal/parser"
	"github.com/txnotify-dev/txnotify/internal/report"
)

func newParseCommand() *cobra.Command {
	var appName string
	var title string
	var content string
	var output string

	cmd := &cobra.Command{
		Use:   "parse [file.txt]",
		Short: "Parse a single notification into a JSON record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := ingest.Notification{AppName: appName, Title: title, Content: content}
			if len(args) > 0 {
				var err error
				n, err = ingest.ReadFile(args[0])
				if err != nil {
					return err
				}
			} else if content == "" {
				return fmt.Errorf("either a file argument or --content is required")
			}

			rec, err := parser.Parse(n.Content, n.AppName, n.Title)
			if err != nil {
				return fmt.Errorf("parsing notification: %w", err)
			}

			if err := report.Write(cmd.OutOrStdout(), rec); err != nil {
				return err
			}
			if output != "" {
				if err := report.WriteFile(output, rec); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved to %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app-name", "", "bank app identifier")
	cmd.Flags().StringVar(&title, "title", "", "notification title")
	cmd.Flags().StringVar(&content, "content", "", "notification text (instead of a file)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the JSON record to this path")

	return cmd
}
