package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSeedStatusShowReset_FileBackend(t *testing.T) {
	t.Setenv("GIGADMIN_BACKEND", "file")
	t.Setenv("GIGADMIN_DATA_DIR", t.TempDir())
	t.Setenv("GIGADMIN_NAMESPACE", "cli")

	out, err := run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 5, skipped 0")

	out, err = run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 0, skipped 5")

	out, err = run(t, "status")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "\n"))
	assert.Contains(t, out, "true")

	out, err = run(t, "show", "clientJobs")
	require.NoError(t, err)
	assert.Contains(t, out, "E-commerce Website Development")

	_, err = run(t, "reset")
	require.NoError(t, err)

	_, err = run(t, "show", "clientJobs")
	assert.Error(t, err)
}

func TestShow_UnknownCollection(t *testing.T) {
	t.Setenv("GIGADMIN_BACKEND", "memory")

	_, err := run(t, "show", "users")
	assert.Error(t, err)
}

func TestLoad_InvalidConfigFile(t *testing.T) {
	_, err := run(t, "--config", "/does/not/exist.yaml", "status")
	assert.Error(t, err)
}
