package commands

import (
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the rmcli CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			versionInfo := rmapi.NewRecord()
			versionInfo.Set("version", version).
				Set("commit", commit).
				Set("built", date)

			return renderRecords(cmd, []rmapi.Record{versionInfo}, true)
		},
	}
}
