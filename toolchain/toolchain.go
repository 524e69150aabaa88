// Package toolchain locates and validates the language-server binary.
package toolchain

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/vivikey/rust-analyzer/utils/logger"
)

// versionArg is the single argument used to probe a candidate binary.
const versionArg = "--version"

// IsValidExecutable reports whether path designates a runnable program.
// A missing path returns false without spawning anything. Otherwise the
// program is run synchronously with --version and only a zero exit status
// qualifies. Spawn failures and non-zero exits are absorbed into false;
// this never raises an error to the caller.
func IsValidExecutable(log *logger.Logger, path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}

	out, err := exec.Command(path, versionArg).CombinedOutput()
	if err != nil {
		log.Warn("executable probe failed:", path, "error:", err)
		return false
	}

	log.Debug("probed executable:", path, "output:", strings.TrimSpace(string(out)))
	return true
}

// Locate resolves the server binary to launch. An explicitly configured path
// wins when it probes valid; otherwise the first PATH hit that probes valid
// is used. A configured path that fails the probe is an error, not a
// fallthrough, so a broken user setting never silently picks a different
// binary.
func Locate(log *logger.Logger, name, configured string) (string, error) {
	if configured != "" {
		if !IsValidExecutable(log, configured) {
			return "", fmt.Errorf("configured server path %q is not a valid executable", configured)
		}
		return configured, nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	if !IsValidExecutable(log, path) {
		return "", fmt.Errorf("%s at %q failed the version probe", name, path)
	}
	return path, nil
}
