package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(bytes.NewBufferString(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() { cfgPath = "" })
	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "log:\n  dir: " + filepath.Join(dir, "logs") + "\nclipboard:\n  mirror: false\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestRun_ScriptFile(t *testing.T) {
	cfg := writeConfig(t)
	script := filepath.Join(t.TempDir(), "edit.txt")
	require.NoError(t, os.WriteFile(script, []byte("focus left\nselect 0\ncut\nselect 1\npaste\n"), 0644))

	out, err := execute(t, "", "run", "--config", cfg, script)
	require.NoError(t, err)
	assert.Equal(t, "[\"beta\" \"gamma\" \"alpha\"]\n", out)
}

func TestRun_Stdin(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "add 0 zero\nundo\nredo\n", "run", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "[\"zero\" \"alpha\" \"beta\" \"gamma\"]\n", out)
}

func TestRun_ReportsFailingLine(t *testing.T) {
	cfg := writeConfig(t)

	_, err := execute(t, "focus left\nbogus\n", "run", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRun_MissingConfig(t *testing.T) {
	_, err := execute(t, "", "run", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestInit_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+path)
	assert.FileExists(t, path)

	_, err = execute(t, "", "init", "--config", path)
	require.Error(t, err)
}

func TestSchema_PrintsJSON(t *testing.T) {
	out, err := execute(t, "", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "listedit configuration")
}
