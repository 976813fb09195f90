package commands

import (
	"fmt"

	"github.com/fivetwenty-io/rmcli/internal/constants"
	"github.com/fivetwenty-io/rmcli/internal/search"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
	"github.com/spf13/cobra"
)

// NewCharacterCommand creates the character command.
func NewCharacterCommand() *cobra.Command {
	var (
		query search.CharacterQuery
		id    int
		image bool
	)

	cmd := &cobra.Command{
		Use:     "character",
		Aliases: []string{"characters", "char"},
		Short:   "Search characters",
		Long: `Search characters. Name, status, species, type and gender are filtered by
the API; origin and location are matched exactly on the client. --id fetches a
single character and ignores every other filter.`,
		Example: `  rmcli character --name rick --status alive
  rmcli character --origin "Earth (C-137)" --table
  rmcli character --id 1 --image`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query.ID = optionalInt(cmd, "id", id)
			if image && query.ID == nil {
				return constants.ErrImageNeedsID
			}

			result, err := runQuery(cmd, rmapi.ResourceCharacter, query)
			if err != nil {
				return err
			}

			if image {
				url, ok := result.Records[0].Image()
				if !ok {
					url = constants.NotAvailable
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Image:", url)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&query.Name, "name", "n", "", "filter by name (partial match)")
	cmd.Flags().StringVar(&query.Status, "status", "", "filter by status (alive, dead, unknown)")
	cmd.Flags().StringVar(&query.Species, "species", "", "filter by species")
	cmd.Flags().StringVarP(&query.Type, "type", "t", "", "filter by type")
	cmd.Flags().StringVarP(&query.Gender, "gender", "g", "", "filter by gender (female, male, genderless, unknown)")
	cmd.Flags().StringVarP(&query.Location, "location", "l", "", "filter by exact location name")
	cmd.Flags().StringVarP(&query.Origin, "origin", "o", "", "filter by exact origin name")
	cmd.Flags().IntVarP(&id, "id", "i", 0, "fetch a single character by id")
	cmd.Flags().BoolVar(&image, "image", false, "print the character image URL (requires --id)")

	return cmd
}
