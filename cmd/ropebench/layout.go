package main

import (
	"fmt"

	"github.com/dshills/cartesian/internal/bench"
	"github.com/spf13/cobra"
)

func newLayoutCmd(root *rootOptions) *cobra.Command {
	var (
		threshold int
		pieces    int
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show how small ropes are chunked",
		Long: `Concatenate copies of [1 2 3] under a small direct copy threshold and
print the resulting chunk sizes and content.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if threshold < 0 || pieces < 1 {
				return fmt.Errorf("%w: threshold %d, pieces %d", bench.ErrInvalidConfig, threshold, pieces)
			}

			layout := bench.ChunkLayout(threshold, pieces, []int{1, 2, 3})
			root.logger.Debug("layout built", "threshold", threshold, "pieces", pieces, "stats", layout.Stats.String())

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "Chunks: %v\n", layout.ChunkSizes); err != nil {
				return err
			}
			_, err := fmt.Fprintf(out, "Content: %v\n", layout.Content)
			return err
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", 6, "Direct copy threshold")
	cmd.Flags().IntVar(&pieces, "pieces", 5, "Number of copies to concatenate")
	return cmd
}
