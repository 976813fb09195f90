//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIEndpoint string
	RmcliPath   string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("RMCLI_LIVE_API"),
		RmcliPath:   getRmcliPath(),
		Verbose:     os.Getenv("RMCLI_TEST_VERBOSE") == "true",
	}
}

// getRmcliPath determines the path to the rmcli binary
func getRmcliPath() string {
	if path := os.Getenv("RMCLI_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../rmcli",
		"./rmcli",
		"../rmcli",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "rmcli" // Fallback to PATH
}

// SkipIfMissingConfig skips tests that talk to the live API unless it is
// configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIEndpoint == "" {
		t.Skip("RMCLI_LIVE_API not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips tests that run the CLI binary.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.RmcliPath); err != nil {
		t.Skipf("rmcli binary not found at %s, skipping integration test", config.RmcliPath)
	}
}

// CommandRunner provides utilities for running rmcli commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes an rmcli command against the configured API and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--api", runner.config.APIEndpoint}, args...)

	cmd := exec.Command(runner.config.RmcliPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+runner.t.TempDir())

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.RmcliPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}
