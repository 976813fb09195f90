package commands

import (
	"github.com/fivetwenty-io/rmcli/internal/constants"
	"github.com/fivetwenty-io/rmcli/internal/metrics"
	"github.com/spf13/cobra"
)

// NewMetricsCommand creates the metrics command.
func NewMetricsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Rank characters by episode appearances",
		Long: `Rank every character by the number of episodes they appear in, most
first. Characters with equal counts keep the API's order.`,
		Example: "  rmcli metrics --limit 10 --table",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return constants.ErrInvalidLimit
			}

			_, err := outputFormat()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			entries, err := metrics.TopCharactersByEpisodeCount(ctx, client.Characters(), limit)
			if err != nil {
				return err
			}

			return renderRecords(cmd, metrics.Records(entries), false)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "number of characters to show (0 shows all)")

	return cmd
}
