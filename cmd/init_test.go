package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func runInit(t *testing.T) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	err := cmd.Execute()

	return out.String(), err
}

func TestInitCmd_WritesSettings(t *testing.T) {
	dir := chdirTemp(t)

	output, err := runInit(t)
	require.NoError(t, err)
	assert.Contains(t, output, "wrote "+configFileName)

	contents, err := os.ReadFile(filepath.Join(dir, configFileName))
	require.NoError(t, err)

	var settings struct {
		Check struct {
			Parallel int `yaml:"parallel"`
		} `yaml:"check"`
		Log struct {
			Filename string `yaml:"filename"`
		} `yaml:"log"`
	}
	require.NoError(t, yaml.Unmarshal(contents, &settings))

	assert.Positive(t, settings.Check.Parallel)
	assert.Equal(t, defaultLogFilename, settings.Log.Filename)
}

func TestInitCmd_KeepsExistingFile(t *testing.T) {
	dir := chdirTemp(t)

	targetPath := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("check:\n  parallel: 9\n"), 0o644))

	_, err := runInit(t)
	require.Error(t, err)

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "check:\n  parallel: 9\n", string(contents))
}
