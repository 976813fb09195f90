package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/rmcli/internal/constants"
	"github.com/fivetwenty-io/rmcli/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logger is set up before any subcommand runs.
var logger = logging.NewFromZap(nil)

// NewRootCommand creates the rmcli command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rmcli",
		Short: "Rick and Morty API CLI",
		Long: `A command-line interface for the Rick and Morty API.

Search characters, locations and episodes with server-side and client-side
filters and render the results as JSON, YAML, a table or an XLSX workbook.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := initConfig()
			if err != nil {
				return err
			}

			logger, err = logging.New(viper.GetBool("verbose"))
			if err != nil {
				return err
			}

			if file := viper.ConfigFileUsed(); file != "" {
				logger.Debug("Using config file", map[string]interface{}{"path": file})
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.rmcli/config.yml)")
	flags.String("api", "", "API endpoint URL (default is "+defaultAPI()+")")
	flags.String("output", string(defaultFormat), "output format (json, yaml, table, xlsx)")
	flags.Bool("table", false, "shorthand for --output table")
	flags.String("output-file", "", "write output to a file (required for xlsx)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Duration("timeout", constants.DefaultCommandTimeout, "timeout for the whole command")
	flags.Int("retry-max", constants.DefaultRetryMax, "retries for failed requests (5xx, 429, connection errors)")

	// Bind flags to viper
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("api", flags.Lookup("api"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("table", flags.Lookup("table"))
	_ = viper.BindPFlag("output_file", flags.Lookup("output-file"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = viper.BindPFlag("retry_max", flags.Lookup("retry-max"))

	// Add commands
	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewCharacterCommand())
	rootCmd.AddCommand(NewLocationCommand())
	rootCmd.AddCommand(NewEpisodeCommand())
	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewMetricsCommand())

	return rootCmd
}

func initConfig() error {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := configDirectory()
		if err != nil {
			return err
		}

		// Search config in ~/.rmcli/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	// Read in environment variables that match
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

func configDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName), nil
}

// configFilePath is where config set writes: the file in use, the --config
// file, or the default location.
func configFilePath() (string, error) {
	if file := viper.ConfigFileUsed(); file != "" {
		return file, nil
	}

	if file := viper.GetString("config"); file != "" {
		return file, nil
	}

	configDir, err := configDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}
