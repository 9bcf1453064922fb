// Edit command rewrites question or answer content.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lore/pkg/types"
)

var (
	editTitle string
	editBody  string
	editText  string
)

var editCmd = &cobra.Command{
	Use:   "edit <question|answer> <id>",
	Short: "Edit a question or answer",
	Long: `Edit replaces a question's title and body, or an answer's text.
Editing a question recomputes its search token set.

Example:
  lore edit question 3 --title "Better title" --body "Clarified body."
  lore edit answer 7 --text "Corrected answer."`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := args[0]
		id := parseID(args[1], kind+" ID")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("edit", err)
		}
		defer backend.Detach()

		switch kind {
		case "question":
			q, err := svc.EditQuestion(id, editTitle, editBody)
			if err != nil {
				if isEntityNotFound(err) {
					fatalUser("edit: question %d not found", id)
				}
				if errors.Is(err, types.ErrInvalidTitle) {
					fatalUser("edit: title must not be empty")
				}
				fatalSys("edit", err)
			}
			if flagJSON {
				printJSON(q)
			} else {
				fmt.Printf("Updated question: %d\n", q.QuestionID)
			}
		case "answer":
			a, err := svc.EditAnswer(id, editText)
			if err != nil {
				if isEntityNotFound(err) {
					fatalUser("edit: answer %d not found", id)
				}
				fatalSys("edit", err)
			}
			if flagJSON {
				printJSON(a)
			} else {
				fmt.Printf("Updated answer: %d\n", a.AnswerID)
			}
		default:
			fatalUser("edit: unknown kind %q (valid: question, answer)", kind)
		}
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "new question title")
	editCmd.Flags().StringVar(&editBody, "body", "", "new question body")
	editCmd.Flags().StringVar(&editText, "text", "", "new answer text")
}
