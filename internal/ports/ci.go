package ports

import (
	"context"

	"ubports-qa/internal/types"
)

// CIPort queries the continuous-integration system for the latest run of
// a pipeline branch.
type CIPort interface {
	// LatestRunResult returns the raw result field of the latest run for
	// the named repository pipeline and branch reference. An empty string
	// means the run has not produced a result yet.
	LatestRunResult(ctx context.Context, repo string, ref string) (string, error)
}

// GitHubPort retrieves pull-request metadata from the source-control
// hosting API.
type GitHubPort interface {
	FetchPullRequest(ctx context.Context, repo string, number int) (types.PullRequest, error)
}
