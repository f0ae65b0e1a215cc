package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	logDir     string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	logDir := filepath.Join(base, "logs")
	configPath := filepath.Join(homeDir, ".config", "epitizer", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, testConfigValues{logDir: logDir})

	return &cliTestEnv{baseDir: base, configPath: configPath, logDir: logDir}
}

type testConfigValues struct {
	logDir           string
	maxInputBytes    int
	removeDuplicates bool
}

func writeTestConfig(t *testing.T, path string, values testConfigValues) {
	t.Helper()

	var content strings.Builder
	if values.maxInputBytes > 0 {
		fmt.Fprintf(&content, "[limits]\nmax_input_bytes = %d\n\n", values.maxInputBytes)
	}
	if values.removeDuplicates {
		fmt.Fprintf(&content, "[output]\nremove_duplicates = true\n\n")
	}
	fmt.Fprintf(&content, "[paths]\nlog_dir = %q\n", values.logDir)

	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
