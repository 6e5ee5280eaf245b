package types

import "fmt"

// PullRequest is the subset of the GitHub pull-request document the tool
// consults. Kept as an available primitive; the install path gates on
// Jenkins state instead.
type PullRequest struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	State   string `json:"state"`
	HeadRef string `json:"head_ref"`
}

// RepositoryList is the document rendered by the list command.
type RepositoryList struct {
	Repositories []string `json:"repositories" yaml:"repositories"`
}

// PullRequestID synthesizes the repository identifier for a pull-request
// build: PR_<repo>_<number>.
func PullRequestID(repo string, number int) string {
	return fmt.Sprintf("PR_%s_%d", repo, number)
}

// PullRequestRef is the Jenkins branch name for a pull-request build.
func PullRequestRef(number int) string {
	return fmt.Sprintf("PR-%d", number)
}
