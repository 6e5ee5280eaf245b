// Package shared provides common utility functions used across multiple
// packages in the ubports-qa codebase.
package shared

import (
	"fmt"
	"strings"
)

// StripOrg removes an organizational prefix such as "ubports/" from a
// repository argument, keeping only the final path segment.
func StripOrg(repo string) string {
	trimmed := strings.TrimSpace(repo)
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
