// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"path/filepath"
	"testing"

	"ubports-qa/internal/types"
)

// TempConfig returns a Config whose registry directories and writable
// marker live under temp dirs, leaving hosts at their defaults.
func TempConfig(t *testing.T) types.Config {
	t.Helper()
	cfg := types.DefaultConfig()
	cfg.SourcesDir = t.TempDir()
	cfg.PrefsDir = t.TempDir()
	cfg.WritableMarker = filepath.Join(t.TempDir(), ".writable_image")
	return cfg
}
