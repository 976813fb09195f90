package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is the directory under $HOME holding the config file.
	ConfigDirName = ".rmcli"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file format.
	ConfigFileType = "yml"

	// EnvPrefix prefixes environment variables read by viper.
	EnvPrefix = "RMCLI"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for a single HTTP attempt.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultCommandTimeout bounds a whole command, all pages included.
	DefaultCommandTimeout = 2 * time.Minute

	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "rmcli"
)

// Retry limits. Retries are off unless configured.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusBadRequest is the first client error status.
	HTTPStatusBadRequest = 400
)

// Formats of values found in API records.
const (
	// AirDateLayout parses episode air dates such as "December 2, 2013".
	AirDateLayout = "January 2, 2006"

	// AirDateHint is shown to users who supply a malformed date.
	AirDateHint = "<Month> <day>, <year>, e.g. 'January 1, 2014'"

	// EpisodeCodeHint describes the episode code format.
	EpisodeCodeHint = "S<season>E<episode>, e.g. 'S01E03'"
)

// Table rendering.
const (
	// DefaultMaxCellWidth truncates table cells when the terminal width is unknown.
	DefaultMaxCellWidth = 40

	// MinCellWidth is the narrowest truncation applied on small terminals.
	MinCellWidth = 12

	// CellsPerScreen divides the terminal width into a per-cell budget.
	CellsPerScreen = 4

	// TruncationSuffix marks a truncated table cell.
	TruncationSuffix = "..."
)

// Display constants.
const (
	// NotAvailable is shown for missing values.
	NotAvailable = "N/A"

	// DefaultSheetName names the worksheet of XLSX exports.
	DefaultSheetName = "records"
)

// Command arguments.
const (
	// ConfigSetArgCount is the number of arguments of config set: key and value.
	ConfigSetArgCount = 2
)
