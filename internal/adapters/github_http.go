package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ubports-qa/internal/ports"
	"ubports-qa/internal/shared"
	"ubports-qa/internal/types"
)

const defaultGitHubOrg = "ubports"
const defaultGitHubTimeout = 30 * time.Second

// GitHubAdapter retrieves pull-request metadata. Available primitive;
// the install path gates on Jenkins state instead.
type GitHubAdapter struct {
	Endpoint string
	Org      string
	Timeout  time.Duration
}

func NewGitHubAdapter(endpoint string, timeoutSec int) GitHubAdapter {
	return GitHubAdapter{
		Endpoint: endpoint,
		Org:      defaultGitHubOrg,
		Timeout:  normalizeTimeout(timeoutSec, defaultGitHubTimeout),
	}
}

func (a GitHubAdapter) FetchPullRequest(ctx context.Context, repo string, number int) (types.PullRequest, error) {
	prURL := fmt.Sprintf("%s/repos/%s/%s/pulls/%d",
		strings.TrimRight(a.Endpoint, "/"), a.Org, repo, number)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, prURL, nil)
	if err != nil {
		return types.PullRequest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid github url").
			WithCause(err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	client := &http.Client{Timeout: a.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return types.PullRequest{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("github query failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return types.PullRequest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("Pull-Request not found: %s#%d", repo, number)).
			WithCause(shared.HTTPStatusError(resp.StatusCode, prURL))
	}
	var doc struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
		State  string `json:"state"`
		Head   struct {
			Ref string `json:"ref"`
		} `json:"head"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return types.PullRequest{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to decode github response").
			WithCause(err)
	}
	return types.PullRequest{
		Number:  doc.Number,
		Title:   doc.Title,
		State:   doc.State,
		HeadRef: doc.Head.Ref,
	}, nil
}

var _ ports.GitHubPort = GitHubAdapter{}
