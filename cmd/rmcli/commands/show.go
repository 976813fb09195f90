package commands

import (
	"github.com/fivetwenty-io/rmcli/internal/search"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	var characters, locations, episodes bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show every record of the selected kinds",
		Long: `Fetch every character, location and episode, or only the selected kinds,
and print them as one list in that order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := outputFormat()
			if err != nil {
				return err
			}

			var resources []rmapi.Resource
			if characters {
				resources = append(resources, rmapi.ResourceCharacter)
			}

			if locations {
				resources = append(resources, rmapi.ResourceLocation)
			}

			if episodes {
				resources = append(resources, rmapi.ResourceEpisode)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			result, err := search.All(ctx, client, resources)
			if err != nil {
				return err
			}

			return renderRecords(cmd, result.Records, false)
		},
	}

	cmd.Flags().BoolVarP(&characters, "characters", "c", false, "include characters")
	cmd.Flags().BoolVarP(&locations, "locations", "l", false, "include locations")
	cmd.Flags().BoolVarP(&episodes, "episodes", "e", false, "include episodes")

	return cmd
}
