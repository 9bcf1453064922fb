// Answer and reply commands create answers.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lore/pkg/types"
)

var answerText string

var answerCmd = &cobra.Command{
	Use:   "answer <question-id>",
	Short: "Answer a question",
	Long: `Answer creates an answer under a question. If the question already
has a linked answer with the same text, nothing is created and the
duplicate is reported.

Example:
  lore answer 3 --text "Restart the daemon." --author 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questionID := parseID(args[0], "question ID")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("answer", err)
		}
		defer backend.Detach()

		a, err := svc.AnswerQuestion(answerText, flagAuthor, questionID)
		if err != nil {
			if errors.Is(err, types.ErrDuplicateAnswer) {
				fatalUser("answer: question %d already has an answer with that text", questionID)
			}
			if isEntityNotFound(err) {
				fatalUser("answer: question %d not found", questionID)
			}
			fatalSys("answer", err)
		}

		if flagJSON {
			printJSON(a)
		} else {
			fmt.Printf("Created answer: %d\n", a.AnswerID)
		}
		return nil
	},
}

var replyText string

var replyCmd = &cobra.Command{
	Use:   "reply <answer-id>",
	Short: "Reply to an answer with a follow-up answer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parentID := parseID(args[0], "answer ID")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("reply", err)
		}
		defer backend.Detach()

		a, err := svc.ReplyToAnswer(replyText, flagAuthor, parentID)
		if err != nil {
			if isEntityNotFound(err) {
				fatalUser("reply: answer %d not found", parentID)
			}
			fatalSys("reply", err)
		}

		if flagJSON {
			printJSON(a)
		} else {
			fmt.Printf("Created answer: %d\n", a.AnswerID)
		}
		return nil
	},
}

func init() {
	answerCmd.Flags().StringVar(&answerText, "text", "", "answer text (required)")
	answerCmd.MarkFlagRequired("text")

	replyCmd.Flags().StringVar(&replyText, "text", "", "answer text (required)")
	replyCmd.MarkFlagRequired("text")
}
