// Prefer and unprefer commands manage a question's preferred answer.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lore/pkg/types"
)

var preferCmd = &cobra.Command{
	Use:   "prefer <question-id> <answer-id>",
	Short: "Mark an answer as the question's preferred answer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		questionID := parseID(args[0], "question ID")
		answerID := parseID(args[1], "answer ID")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("prefer", err)
		}
		defer backend.Detach()

		if err := svc.SetPreferredAnswer(questionID, answerID); err != nil {
			if isEntityNotFound(err) {
				fatalUser("prefer: question %d not found", questionID)
			}
			if errors.Is(err, types.ErrNotLinked) {
				fatalUser("prefer: answer %d is not linked to question %d", answerID, questionID)
			}
			fatalSys("prefer", err)
		}

		fmt.Printf("Preferred answer for question %d is now %d\n", questionID, answerID)
		return nil
	},
}

var unpreferCmd = &cobra.Command{
	Use:   "unprefer <question-id>",
	Short: "Clear the question's preferred answer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questionID := parseID(args[0], "question ID")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("unprefer", err)
		}
		defer backend.Detach()

		if err := svc.ClearPreferredAnswer(questionID); err != nil {
			if isEntityNotFound(err) {
				fatalUser("unprefer: question %d not found", questionID)
			}
			fatalSys("unprefer", err)
		}

		fmt.Printf("Cleared preferred answer for question %d\n", questionID)
		return nil
	},
}
