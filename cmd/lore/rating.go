// Rating command reports a reviewer's aggregate standing.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ratingCmd = &cobra.Command{
	Use:   "rating <reviewer-id>",
	Short: "Show a reviewer's aggregate rating",
	Long: `Rating reports the integer mean of the vote totals across all of a
reviewer's reviews. A reviewer with no reviews rates zero.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reviewerID := parseID(args[0], "reviewer ID")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("rating", err)
		}
		defer backend.Detach()

		rating, err := svc.ReviewerRating(reviewerID)
		if err != nil {
			fatalSys("rating", err)
		}

		fmt.Printf("Reviewer %s (%d) rating: %d\n", svc.AuthorName(reviewerID), reviewerID, rating)
		return nil
	},
}
