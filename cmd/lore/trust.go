// Trust commands manage per-user reviewer trust lists.
package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lore/pkg/types"
)

var trustCmd = &cobra.Command{
	Use:   "trust <truster-id> <reviewer-id> <weight>",
	Short: "Trust a reviewer with a weight",
	Long: `Trust adds a reviewer to the truster's trust list with the given
weight (0 to 10). Trusting an already trusted reviewer replaces the
weight.

Example:
  lore trust 1 2 7`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		trusterID := parseID(args[0], "truster ID")
		reviewerID := parseID(args[1], "reviewer ID")
		weight, err := strconv.Atoi(args[2])
		if err != nil {
			fatalUser("trust: invalid weight %q (expected integer)", args[2])
		}

		svc, backend, err := openService()
		if err != nil {
			fatalSys("trust", err)
		}
		defer backend.Detach()

		if err := svc.TrustReviewer(trusterID, reviewerID, weight); err != nil {
			if errors.Is(err, types.ErrInvalidWeight) {
				fatalUser("trust: weight %d out of range (%d to %d)", weight, types.MinTrustWeight, types.MaxTrustWeight)
			}
			fatalSys("trust", err)
		}

		fmt.Printf("User %d now trusts reviewer %d with weight %d\n", trusterID, reviewerID, weight)
		return nil
	},
}

var untrustCmd = &cobra.Command{
	Use:   "untrust <truster-id> <reviewer-id>",
	Short: "Remove a reviewer from a trust list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		trusterID := parseID(args[0], "truster ID")
		reviewerID := parseID(args[1], "reviewer ID")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("untrust", err)
		}
		defer backend.Detach()

		removed, err := svc.UntrustReviewer(trusterID, reviewerID)
		if err != nil {
			fatalSys("untrust", err)
		}

		if removed {
			fmt.Printf("User %d no longer trusts reviewer %d\n", trusterID, reviewerID)
		} else {
			fmt.Printf("User %d did not trust reviewer %d\n", trusterID, reviewerID)
		}
		return nil
	},
}

var trustedCmd = &cobra.Command{
	Use:   "trusted <truster-id>",
	Short: "List a user's trusted reviewers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trusterID := parseID(args[0], "truster ID")

		svc, backend, err := openService()
		if err != nil {
			fatalSys("trusted", err)
		}
		defer backend.Detach()

		weights, err := svc.TrustedReviewers(trusterID)
		if err != nil {
			fatalSys("trusted", err)
		}

		if flagJSON {
			printJSON(weights)
			return nil
		}

		if len(weights) == 0 {
			fmt.Printf("User %d trusts no reviewers\n", trusterID)
			return nil
		}

		reviewers := make([]int64, 0, len(weights))
		for reviewer := range weights {
			reviewers = append(reviewers, reviewer)
		}
		sort.Slice(reviewers, func(i, j int) bool { return reviewers[i] < reviewers[j] })
		for _, reviewer := range reviewers {
			fmt.Printf("  %s (%d): weight %d\n", svc.AuthorName(reviewer), reviewer, weights[reviewer])
		}
		return nil
	},
}
