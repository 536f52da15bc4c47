package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowcut/matching"
)

// newMatchCmd creates the match command computing a maximum bipartite matching.
func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match [instance.toml]",
		Short: "Compute a maximum bipartite matching",
		Long: `Compute a maximum matching between the two groups of a bipartite
instance read from a TOML file, by reduction to maximum flow.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupA, groupB, pairs, err := loadMatching(args[0])
			if err != nil {
				return err
			}

			matched, err := matching.MaximumMatching(groupA, groupB, pairs)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("matching done",
				"group_a", len(groupA), "group_b", len(groupB), "pairs", len(pairs))

			fmt.Fprintf(cmd.OutOrStdout(), "matching size: %d\n", len(matched))
			for _, p := range matched {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s ↔ %s\n", p.A, p.B)
			}

			return nil
		},
	}
}
