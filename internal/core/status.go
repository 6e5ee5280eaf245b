package core

import (
	"strings"

	"ubports-qa/internal/types"
)

const (
	resultSuccess  = "SUCCESS"
	resultBuilding = "BUILDING"
)

// StatusFromResult maps the raw result field of a Jenkins run to the
// tri-state build status. An empty result means the run has not finished
// and counts as building. Anything unrecognized is conservatively
// treated as failed.
func StatusFromResult(result string) types.BuildStatus {
	switch strings.ToUpper(strings.TrimSpace(result)) {
	case resultSuccess:
		return types.BuildStatusSuccess
	case resultBuilding, "":
		return types.BuildStatusBuilding
	default:
		return types.BuildStatusFailed
	}
}
