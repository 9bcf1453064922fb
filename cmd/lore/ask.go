// Ask command creates a new question.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	askTitle string
	askBody  string
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask a new question",
	Long: `Ask creates a new question with a title and body. The question's
token set is computed immediately and used by the search command.

Example:
  lore ask --title "Widget crashes on startup" --body "Stack trace attached." --author 1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, backend, err := openService()
		if err != nil {
			fatalSys("ask", err)
		}
		defer backend.Detach()

		q, err := svc.AskQuestion(askTitle, askBody, flagAuthor)
		if err != nil {
			fatalUser("ask: %s", err)
		}

		if flagJSON {
			printJSON(q)
		} else {
			fmt.Printf("Created question: %d\n", q.QuestionID)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().StringVar(&askTitle, "title", "", "question title (required)")
	askCmd.Flags().StringVar(&askBody, "body", "", "question body")
	askCmd.MarkFlagRequired("title")
}
