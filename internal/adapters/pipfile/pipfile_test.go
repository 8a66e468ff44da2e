package pipfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nbreq/internal/adapters/pipfile"
	"go.trai.ch/nbreq/internal/core/domain"
)

func TestWrite_Read(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kernel")
	spec := domain.NewRequirementsSpec("3.11").WithPackages(domain.PackageMap{
		"flask": "*",
		"numpy": ">=1.26",
		"":      "",
	})

	require.NoError(t, pipfile.Write(dir, spec))

	data, err := os.ReadFile(filepath.Join(dir, pipfile.Filename))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[source]]")
	assert.Contains(t, string(data), `python_version = "3.11"`)

	got, err := pipfile.Read(dir)
	require.NoError(t, err)
	assert.Equal(t, spec, got)
}

func TestFromSpec_Defaults(t *testing.T) {
	f := pipfile.FromSpec(domain.RequirementsSpec{Packages: domain.PackageMap{"requests": ""}})

	assert.Equal(t, []domain.Source{domain.DefaultSource()}, f.Sources)
	assert.Equal(t, map[string]string{"requests": "*"}, f.Packages)
	assert.Empty(t, f.DevPackages)
}

func TestWriteLock_ReadLock(t *testing.T) {
	dir := t.TempDir()
	lock := pipfile.Lock{
		Meta: []byte(`{"hash":{"sha256":"abc"},"pipfile-spec":6}`),
		Default: domain.LockedRequirements{
			"flask": {Version: "==3.0.0", Hashes: []string{"sha256:1"}, Index: "pypi"},
		},
	}

	require.NoError(t, pipfile.WriteLock(dir, lock))

	got, err := pipfile.ReadLock(dir)
	require.NoError(t, err)
	assert.Equal(t, lock.Default, got.Default)
	assert.Empty(t, got.Develop)
	assert.JSONEq(t, string(lock.Meta), string(got.Meta))
}

func TestReadLock_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := pipfile.ReadLock(dir)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, pipfile.LockFilename), []byte("{"), 0o600))
	_, err = pipfile.ReadLock(dir)
	require.Error(t, err)
}

func TestReadLock_MissingDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, pipfile.LockFilename), []byte(`{"develop":{}}`), 0o600))

	got, err := pipfile.ReadLock(dir)
	require.NoError(t, err)
	assert.NotNil(t, got.Default)
	assert.Empty(t, got.Default)
}
