// Link and unlink commands manage the answer adjacency relation.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lore/pkg/types"
)

var linkCmd = &cobra.Command{
	Use:   "link <question|answer> <parent-id> <answer-id>",
	Short: "Link an answer under a question or answer",
	Long: `Link appends an answer to the parent's answer list. Linking an
already linked answer is a no-op; the list never gains duplicates.

Example:
  lore link question 3 7
  lore link answer 7 9`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		parentKind := args[0]
		parentID := parseID(args[1], "parent ID")
		childID := parseID(args[2], "answer ID")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("link", err)
		}
		defer backend.Detach()

		if err := svc.AddRelation(parentKind, parentID, childID); err != nil {
			if errors.Is(err, types.ErrInvalidData) {
				fatalUser("link: unknown kind %q (valid: question, answer)", parentKind)
			}
			if isEntityNotFound(err) {
				fatalUser("link: %s %d or answer %d not found", parentKind, parentID, childID)
			}
			fatalSys("link", err)
		}

		fmt.Printf("Linked answer %d under %s %d\n", childID, parentKind, parentID)
		return nil
	},
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink <question|answer> <parent-id> <answer-id>",
	Short: "Remove an answer from a question's or answer's list",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		parentKind := args[0]
		parentID := parseID(args[1], "parent ID")
		childID := parseID(args[2], "answer ID")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("unlink", err)
		}
		defer backend.Detach()

		removed, err := svc.RemoveRelation(parentKind, parentID, childID)
		if err != nil {
			if errors.Is(err, types.ErrInvalidData) {
				fatalUser("unlink: unknown kind %q (valid: question, answer)", parentKind)
			}
			fatalSys("unlink", err)
		}

		if removed {
			fmt.Printf("Unlinked answer %d from %s %d\n", childID, parentKind, parentID)
		} else {
			fmt.Printf("Answer %d was not linked under %s %d\n", childID, parentKind, parentID)
		}
		return nil
	},
}
