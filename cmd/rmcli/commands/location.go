package commands

import (
	"github.com/fivetwenty-io/rmcli/internal/search"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
	"github.com/spf13/cobra"
)

// NewLocationCommand creates the location command.
func NewLocationCommand() *cobra.Command {
	var (
		query search.LocationQuery
		id    int
	)

	cmd := &cobra.Command{
		Use:     "location",
		Aliases: []string{"locations", "loc"},
		Short:   "Search locations",
		Long:    "Search locations by name, type and dimension, or fetch one by id",
		Example: `  rmcli location --type Planet --dimension "C-137"
  rmcli location --id 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query.ID = optionalInt(cmd, "id", id)

			_, err := runQuery(cmd, rmapi.ResourceLocation, query)

			return err
		},
	}

	cmd.Flags().StringVarP(&query.Name, "name", "n", "", "filter by name (partial match)")
	cmd.Flags().StringVarP(&query.Type, "type", "t", "", "filter by type")
	cmd.Flags().StringVarP(&query.Dimension, "dimension", "d", "", "filter by dimension")
	cmd.Flags().IntVarP(&id, "id", "i", 0, "fetch a single location by id")

	return cmd
}
