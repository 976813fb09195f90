package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fivetwenty-io/rmcli/internal/constants"
	"github.com/fivetwenty-io/rmcli/internal/render"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
	"github.com/fivetwenty-io/rmcli/pkg/rmclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the persisted settings.
type Config struct {
	API      string `json:"api,omitempty"       yaml:"api,omitempty"`
	Output   string `json:"output,omitempty"    yaml:"output,omitempty"`
	Timeout  string `json:"timeout,omitempty"   yaml:"timeout,omitempty"`
	RetryMax *int   `json:"retry_max,omitempty" yaml:"retry_max,omitempty"`
}

// configKeys lists the keys config set accepts.
var configKeys = []string{"api", "output", "timeout", "retry_max"}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show effective settings or persist defaults to $HOME/.rmcli/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after flags, environment and config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			settings := rmapi.NewRecord()
			settings.Set("api", rmclient.NormalizeEndpoint(viper.GetString("api"))).
				Set("output", viper.GetString("output")).
				Set("timeout", viper.GetDuration("timeout").String()).
				Set("retry_max", viper.GetInt("retry_max")).
				Set("config_file", configFile)

			return renderRecords(cmd, []rmapi.Record{settings}, true)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Persist a default for one of: api, output, timeout, retry_max",
		Example: `  rmcli config set output table
  rmcli config set retry_max 3`,
		Args: cobra.ExactArgs(constants.ConfigSetArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := loadConfigFile(configFile)
			if err != nil {
				return err
			}

			err = setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			err = saveConfigFile(configFile, config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s in %s\n", key, value, configFile)

			return nil
		},
	}
}

// setConfigValue validates value for key before storing it.
func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "api":
		config.API = value
	case "output":
		format, err := render.ParseFormat(value)
		if err != nil {
			return err
		}

		config.Output = string(format)
	case "timeout":
		timeout, err := time.ParseDuration(value)
		if err != nil || timeout <= 0 {
			return fmt.Errorf("%w: timeout must be a positive duration such as 30s, got %q",
				constants.ErrInvalidConfigValue, value)
		}

		config.Timeout = timeout.String()
	case "retry_max":
		retryMax, err := strconv.Atoi(value)
		if err != nil || retryMax < 0 {
			return fmt.Errorf("%w: retry_max must be a non-negative integer, got %q",
				constants.ErrInvalidConfigValue, value)
		}

		config.RetryMax = &retryMax
	default:
		return fmt.Errorf("%w: %s (valid keys: %v)", constants.ErrUnknownConfigKey, key, configKeys)
	}

	return nil
}

func loadConfigFile(path string) (*Config, error) {
	config := &Config{}

	// path is derived from the user's home directory or their --config flag
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfigFile(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
