package commands

import (
	"github.com/fivetwenty-io/rmcli/internal/search"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
	"github.com/spf13/cobra"
)

// NewEpisodeCommand creates the episode command.
func NewEpisodeCommand() *cobra.Command {
	var (
		query      search.EpisodeQuery
		id         int
		season     int
		episodeNum int
	)

	cmd := &cobra.Command{
		Use:     "episode",
		Aliases: []string{"episodes", "ep"},
		Short:   "Search episodes",
		Long: `Search episodes. Name and episode code are filtered by the API; air date
windows, season and episode number are applied on the client in that order.
Dates use the form "January 2, 2006" and both bounds are exclusive.`,
		Example: `  rmcli episode --season 1
  rmcli episode --after "January 1, 2015" --before "January 1, 2018"
  rmcli episode --episode S03E07`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query.ID = optionalInt(cmd, "id", id)
			query.Season = optionalInt(cmd, "season", season)
			query.EpisodeNumber = optionalInt(cmd, "episode-num", episodeNum)

			_, err := runQuery(cmd, rmapi.ResourceEpisode, query)

			return err
		},
	}

	cmd.Flags().StringVarP(&query.Name, "name", "n", "", "filter by name (partial match)")
	cmd.Flags().StringVarP(&query.Episode, "episode", "e", "", "filter by episode code (e.g. S01E03)")
	cmd.Flags().StringVarP(&query.Before, "before", "b", "", `aired before date (e.g. "January 1, 2014")`)
	cmd.Flags().StringVarP(&query.After, "after", "a", "", `aired after date (e.g. "January 1, 2014")`)
	cmd.Flags().IntVarP(&season, "season", "s", 0, "filter by season number")
	cmd.Flags().IntVar(&episodeNum, "episode-num", 0, "filter by episode number within a season")
	cmd.Flags().IntVarP(&id, "id", "i", 0, "fetch a single episode by id")

	return cmd
}
