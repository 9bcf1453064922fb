// List command queries entities from a table with optional filtering.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lore/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list <table> [filter...]",
	Short: "List entities with optional filter",
	Long: `List queries entities from the specified table with optional filters.

Filters are specified as key=value pairs. Multiple filters are ANDed together.
An empty filter returns all entities in the table.

Valid table names: questions, answers, answer_links, reviews, trust_lists

Example:
  lore list questions
  lore list questions author_id=1
  lore list reviews for_question=true
  lore list answer_links parent_kind=question parent_id=3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tableName := args[0]
		filterArgs := args[1:]

		backend, err := attachBackend()
		if err != nil {
			fatalSys("list", err)
		}
		defer backend.Detach()

		table, err := backend.GetTable(tableName)
		if err != nil {
			fatalUser("unknown table %q (valid: %s)", tableName, validTableNamesStr)
		}

		filter := make(types.Filter)
		for _, arg := range filterArgs {
			parts := strings.SplitN(arg, "=", 2)
			if len(parts) != 2 {
				fatalUser("invalid filter %q (expected key=value)", arg)
			}
			key := parts[0]
			value := parts[1]

			// Try to parse as JSON for numeric and boolean values,
			// otherwise use as string.
			var parsed any
			if err := json.Unmarshal([]byte(value), &parsed); err != nil {
				parsed = value
			}
			filter[key] = parsed
		}

		entities, err := table.Fetch(filter)
		if err != nil {
			fatalSys("fetch entities", err)
		}

		out, err := json.MarshalIndent(entities, "", "  ")
		if err != nil {
			fatalSys("marshal entities", err)
		}
		fmt.Println(string(out))
		return nil
	},
}
