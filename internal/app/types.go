package app

import "ubports-qa/internal/types"

type InstallRequest struct {
	Repo        string
	PullRequest int
}

type InstallResult struct {
	ID          string
	RemovalHint string
}

type RemoveRequest struct {
	Repo string
}

type RemoveResult struct {
	ID string
}

type ListRequest struct {
	Format types.OutputFormat
}

type ListResult struct {
	Repositories []string
	Rendered     string
}
