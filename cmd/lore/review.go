// Review and vote commands manage reviews.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reviewText string

var reviewCmd = &cobra.Command{
	Use:   "review <question|answer> <id>",
	Short: "Post a review on a question or answer",
	Long: `Review attaches review text to a question or answer. Reviews start
with a vote total of zero; use the vote command to change it.

Example:
  lore review question 3 --text "Needs a reproducible example." --author 2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := args[0]
		if kind != "question" && kind != "answer" {
			fatalUser("review: unknown kind %q (valid: question, answer)", kind)
		}
		id := parseID(args[1], kind+" ID")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("review", err)
		}
		defer backend.Detach()

		r, err := svc.PostReview(reviewText, flagAuthor, id, kind == "question")
		if err != nil {
			if isEntityNotFound(err) {
				fatalUser("review: %s %d not found", kind, id)
			}
			fatalSys("review", err)
		}

		if flagJSON {
			printJSON(r)
		} else {
			fmt.Printf("Created review: %d\n", r.ReviewID)
		}
		return nil
	},
}

var voteCmd = &cobra.Command{
	Use:   "vote <review-id> <up|down>",
	Short: "Vote on a review",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reviewID := parseID(args[0], "review ID")
		direction := args[1]
		if direction != "up" && direction != "down" {
			fatalUser("vote: unknown direction %q (valid: up, down)", direction)
		}

		svc, backend, err := openService()
		if err != nil {
			fatalSys("vote", err)
		}
		defer backend.Detach()

		r, err := svc.RegisterVote(reviewID, direction == "up")
		if err != nil {
			if isEntityNotFound(err) {
				fatalUser("vote: review %d not found", reviewID)
			}
			fatalSys("vote", err)
		}

		fmt.Printf("Review %d vote total: %d\n", r.ReviewID, r.VoteTotal)
		return nil
	},
}

func init() {
	reviewCmd.Flags().StringVar(&reviewText, "text", "", "review text (required)")
	reviewCmd.MarkFlagRequired("text")
}
