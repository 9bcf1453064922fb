// Show command displays a question or answer with full details.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lore/internal/qa"
)

var showCmd = &cobra.Command{
	Use:   "show <question|answer> <id>",
	Short: "Display a question or answer with its linked answers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := args[0]
		id := parseID(args[1], kind+" ID")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("show", err)
		}
		defer backend.Detach()

		switch kind {
		case "question":
			showQuestion(svc, id)
		case "answer":
			showAnswer(svc, id)
		default:
			fatalUser("show: unknown kind %q (valid: question, answer)", kind)
		}
		return nil
	},
}

func showQuestion(svc *qa.Service, id int64) {
	q, err := svc.GetQuestion(id)
	if err != nil {
		if isEntityNotFound(err) {
			fatalUser("question %d not found", id)
		}
		fatalSys("show", err)
	}

	if flagJSON {
		printJSON(q)
		return
	}

	fmt.Printf("Question:  %d\n", q.QuestionID)
	fmt.Printf("Title:     %s\n", q.Title)
	fmt.Printf("Body:      %s\n", q.Body)
	fmt.Printf("Author:    %s\n", svc.AuthorName(q.AuthorID))
	fmt.Printf("Created:   %s\n", q.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:   %s\n", q.UpdatedAt.Format("2006-01-02 15:04:05"))

	if len(q.LinkedAnswerIDs) > 0 {
		fmt.Println("\nAnswers:")
		for _, answerID := range q.LinkedAnswerIDs {
			marker := " "
			if q.PreferredAnswerID != nil && *q.PreferredAnswerID == answerID {
				marker = "*"
			}
			a, err := svc.GetAnswer(answerID)
			if err != nil {
				fmt.Printf(" %s [%d] (unavailable)\n", marker, answerID)
				continue
			}
			fmt.Printf(" %s [%d] %s (%s)\n", marker, a.AnswerID, a.Text, svc.AuthorName(a.AuthorID))
		}
	}
}

func showAnswer(svc *qa.Service, id int64) {
	a, err := svc.GetAnswer(id)
	if err != nil {
		if isEntityNotFound(err) {
			fatalUser("answer %d not found", id)
		}
		fatalSys("show", err)
	}

	if flagJSON {
		printJSON(a)
		return
	}

	fmt.Printf("Answer:    %d\n", a.AnswerID)
	fmt.Printf("Text:      %s\n", a.Text)
	fmt.Printf("Author:    %s\n", svc.AuthorName(a.AuthorID))
	fmt.Printf("Created:   %s\n", a.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:   %s\n", a.UpdatedAt.Format("2006-01-02 15:04:05"))

	if len(a.LinkedAnswerIDs) > 0 {
		fmt.Println("\nFollow-ups:")
		for _, childID := range a.LinkedAnswerIDs {
			child, err := svc.GetAnswer(childID)
			if err != nil {
				fmt.Printf("  [%d] (unavailable)\n", childID)
				continue
			}
			fmt.Printf("  [%d] %s (%s)\n", child.AnswerID, child.Text, svc.AuthorName(child.AuthorID))
		}
	}
}
