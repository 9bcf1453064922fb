// Delete command removes questions and answers.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <question|answer> <id>",
	Short: "Delete a question or answer",
	Long: `Delete removes a question or answer.

Deleting a question also deletes its directly linked answers. Follow-up
answers threaded under those answers are kept; only their links vanish.
Deleting an answer removes it from every list it appears in but never
touches other answers.

Example:
  lore delete question 3
  lore delete answer 7`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := args[0]
		id := parseID(args[1], kind+" ID")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("delete", err)
		}
		defer backend.Detach()

		switch kind {
		case "question":
			result, err := svc.DeleteQuestion(id)
			if err != nil {
				if isEntityNotFound(err) {
					fatalUser("delete: question %d not found", id)
				}
				fatalSys("delete", err)
			}
			fmt.Printf("Deleted question %d and %d linked answer(s)\n", id, len(result.DeletedAnswerIDs))
			for answerID, ferr := range result.Failed {
				fmt.Printf("  answer %d could not be deleted: %s\n", answerID, ferr)
			}
		case "answer":
			if err := svc.DeleteAnswer(id); err != nil {
				if isEntityNotFound(err) {
					fatalUser("delete: answer %d not found", id)
				}
				fatalSys("delete", err)
			}
			fmt.Printf("Deleted answer %d\n", id)
		default:
			fatalUser("delete: unknown kind %q (valid: question, answer)", kind)
		}
		return nil
	},
}
