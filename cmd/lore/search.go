// Search command ranks questions by similarity to a query.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Find questions similar to a query",
	Long: `Search ranks all stored questions by token overlap with the query,
most similar first. Questions sharing no tokens with the query are
omitted.

Example:
  lore search widget crashes startup`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("search", err)
		}
		defer backend.Detach()

		results, err := svc.Search(query)
		if err != nil {
			fatalSys("search", err)
		}

		if flagJSON {
			printJSON(results)
			return nil
		}

		if len(results) == 0 {
			fmt.Println("No matching questions")
			return nil
		}
		for _, q := range results {
			fmt.Printf("[%d] %s (%s)\n", q.QuestionID, q.Title, svc.AuthorName(q.AuthorID))
		}
		return nil
	},
}
