package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandevgo/ragcfg/internal/ragconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The logger is process-global, so these tests do not run in parallel.

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func starterPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, ragconfig.StarterDocument(), 0644))
	return path
}

func TestRoot_Walkthrough(t *testing.T) {
	path := starterPath(t)

	out, _, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "QUICK START: How to Change Your Model")
	assert.Contains(t, out, "Current RAG System Configuration")
	assert.Contains(t, out, "ragcfg examples <name>")
	assert.Less(t, strings.Index(out, "QUICK START"), strings.Index(out, "Current RAG System Configuration"))
}

func TestRoot_MissingConfigStillShowsGuide(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	out, stderr, err := execute(t, "--config", path)
	require.ErrorIs(t, err, ragconfig.ErrConfigurationNotFound)
	assert.Contains(t, out, "QUICK START: How to Change Your Model")
	assert.NotContains(t, out, "Current RAG System Configuration")
	assert.Contains(t, stderr, "Configuration file not found: "+path)
}

func TestShow(t *testing.T) {
	path := starterPath(t)

	out, _, err := execute(t, "show", "-c", path, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"agent_model"`)

	_, _, err = execute(t, "show", "-c", path, "-o", "xml")
	assert.Error(t, err)
}

func TestSet_PersistsAndReports(t *testing.T) {
	path := starterPath(t)

	out, _, err := execute(t, "set", "agent", "Qwen/Qwen2.5-3B-Instruct", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Agent model updated to: Qwen/Qwen2.5-3B-Instruct")

	store, err := ragconfig.Load(path)
	require.NoError(t, err)
	got, err := store.AgentModelPath()
	require.NoError(t, err)
	assert.Equal(t, "Qwen/Qwen2.5-3B-Instruct", got)
}

func TestSet_MissingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, stderr, err := execute(t, "set", "agent", "x", "--config", path)
	require.ErrorIs(t, err, ragconfig.ErrConfigurationNotFound)
	assert.Contains(t, stderr, "Configuration file not found: "+path)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExamples_Apply(t *testing.T) {
	path := starterPath(t)

	out, _, err := execute(t, "examples", "llama", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example 2: Changing to Llama-3.2-1B-Instruct")
	assert.Contains(t, out, "huggingface-cli login")
}

func TestValidate(t *testing.T) {
	path := starterPath(t)
	_, _, err := execute(t, "validate", "--config", path)
	require.NoError(t, err)

	bad := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"models": {}}`), 0644))
	out, _, err := execute(t, "validate", "--config", bad)
	assert.ErrorIs(t, err, ragconfig.ErrSchemaViolation)
	assert.Contains(t, out, "does not match the expected schema")
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	out, _, err := execute(t, "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Starter configuration written to "+path)

	_, _, err = execute(t, "init", "--config", path)
	assert.ErrorIs(t, err, ragconfig.ErrAlreadyExists)

	_, _, err = execute(t, "init", "--force", "--config", path)
	assert.NoError(t, err)
}

func TestGuide_NoConfigNeeded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	out, _, err := execute(t, "guide", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Method A - Edit "+path+" manually:")
}

func TestInit_SaveEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("RAGCFG_CONFIG_PATH", "")
	require.NoError(t, os.Unsetenv("RAGCFG_CONFIG_PATH"))
	path := filepath.Join(dir, "conf.json")

	_, _, err := execute(t, "init", "--save-env", "--config", path)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "RAGCFG_CONFIG_PATH=")
	assert.Contains(t, string(data), "conf.json")

	// later runs find the document without --config
	out, _, err := execute(t, "show", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"agent_model"`)
}
