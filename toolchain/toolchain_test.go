package toolchain

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivikey/rust-analyzer/editor"
	"github.com/vivikey/rust-analyzer/utils/logger"
)

func newTestLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.New(editor.NewOutputChannel("test", &buf), logger.WithDebug(true)), &buf
}

// writeScript drops an executable shell script into a temp dir.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script probes are not portable to windows")
	}
	path := filepath.Join(t.TempDir(), "probe.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestIsValidExecutable_MissingPath(t *testing.T) {
	log, buf := newTestLogger()

	ok := IsValidExecutable(log, filepath.Join(t.TempDir(), "no-such-binary"))

	assert.False(t, ok)
	assert.Zero(t, buf.Len(), "a missing path must not spawn or log")
}

func TestIsValidExecutable_ZeroExit(t *testing.T) {
	log, buf := newTestLogger()
	path := writeScript(t, `echo "rust-analyzer 1.80.0"; exit 0`)

	ok := IsValidExecutable(log, path)

	assert.True(t, ok)
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "rust-analyzer 1.80.0")
}

func TestIsValidExecutable_NonZeroExit(t *testing.T) {
	log, buf := newTestLogger()
	path := writeScript(t, "exit 3")

	ok := IsValidExecutable(log, path)

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "WARN")
}

func TestIsValidExecutable_SpawnFailure(t *testing.T) {
	log, buf := newTestLogger()
	// Exists but is not executable at all.
	path := filepath.Join(t.TempDir(), "not-a-program")
	require.NoError(t, os.WriteFile(path, []byte("just text"), 0o644))

	ok := IsValidExecutable(log, path)

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "WARN")
}

func TestLocate_PrefersConfiguredPath(t *testing.T) {
	log, _ := newTestLogger()
	path := writeScript(t, "exit 0")

	got, err := Locate(log, "rust-analyzer", path)

	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestLocate_BrokenConfiguredPathIsAnError(t *testing.T) {
	log, _ := newTestLogger()
	path := writeScript(t, "exit 1")

	_, err := Locate(log, "rust-analyzer", path)

	assert.Error(t, err)
}

func TestLocate_FallsBackToPATH(t *testing.T) {
	log, _ := newTestLogger()
	dir := filepath.Dir(writeScript(t, "exit 0"))
	require.NoError(t, os.Rename(filepath.Join(dir, "probe.sh"), filepath.Join(dir, "fake-analyzer")))
	t.Setenv("PATH", dir)

	got, err := Locate(log, "fake-analyzer", "")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fake-analyzer"), got)
}

func TestLocate_NotFoundAnywhere(t *testing.T) {
	log, _ := newTestLogger()
	t.Setenv("PATH", t.TempDir())

	_, err := Locate(log, "definitely-not-installed", "")

	assert.Error(t, err)
}
