//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Username    string
	Password    string
	LoginURL    string
	DmcPath     string
	AllowWrites bool
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Username:    os.Getenv("DMC_USERNAME"),
		Password:    os.Getenv("DMC_PASSWORD"),
		LoginURL:    os.Getenv("DMC_LOGIN_URL"),
		DmcPath:     getDmcPath(),
		AllowWrites: os.Getenv("DMC_ALLOW_WRITES") == "true",
		Verbose:     os.Getenv("DMC_VERBOSE") == "true",
	}
}

// getDmcPath determines the path to the dmc binary
func getDmcPath() string {
	if path := os.Getenv("DMC_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../dmc",
		"./dmc",
		"../dmc",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "dmc"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Username == "" || config.Password == "" {
		t.Skip("DMC_USERNAME or DMC_PASSWORD not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.DmcPath); err != nil {
		t.Skipf("dmc binary not found at %s, skipping integration test", config.DmcPath)
	}
}

// SkipIfReadOnly skips tests that create or delete resources.
func (config *TestConfig) SkipIfReadOnly(t *testing.T) {
	t.Helper()

	if !config.AllowWrites {
		t.Skip("DMC_ALLOW_WRITES not set, skipping mutating integration test")
	}
}

// CommandRunner provides utilities for running dmc commands
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

// Run executes a dmc command with the test credentials in its environment.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.DmcPath, args...)
	cmd.Env = append(os.Environ(),
		"DMC_USERNAME="+runner.config.Username,
		"DMC_PASSWORD="+runner.config.Password,
	)

	if runner.config.LoginURL != "" {
		cmd.Env = append(cmd.Env, "DMC_LOGIN_URL="+runner.config.LoginURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.DmcPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a dmc command with JSON output and decodes the result.
func (runner *CommandRunner) RunJSON(out interface{}, args ...string) error {
	stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
	if err != nil {
		return fmt.Errorf("%w: %s", err, stderr)
	}

	return json.Unmarshal([]byte(stdout), out)
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupRole attempts to delete a role created by a test
func (runner *CommandRunner) CleanupRole(id string) {
	if id == "" {
		return
	}

	stdout, stderr, err := runner.Run("roles", "delete", id)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for role %s: %s\nStderr: %s", id, stdout, stderr)
	}
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not valid JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var decoded interface{}
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Errorf("Output is not valid YAML: %v\n%s", err, output)
	}
}
