package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"algaid/internal/config"
	"algaid/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	baseDir    string
	configPath string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("ALGAID_CATALOG", "")

	env := &cliTestEnv{
		cfg:        cfg,
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
	}
	env.writeConfig(t)
	return env
}

// writeConfig persists env.cfg; call it again after mutating the config.
func (e *cliTestEnv) writeConfig(t *testing.T) {
	t.Helper()
	testsupport.WriteConfig(t, e.configPath, e.cfg)
}

func (e *cliTestEnv) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return runCLI(t, stdin, append([]string{"--config", e.configPath}, args...))
}

func runCLI(t *testing.T, stdin string, args []string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
