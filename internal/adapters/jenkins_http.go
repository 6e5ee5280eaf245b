package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ubports-qa/internal/ports"
	"ubports-qa/internal/shared"
)

const defaultJenkinsOrg = "ubports"
const defaultJenkinsTimeout = 30 * time.Second

// JenkinsAdapter queries the Blue Ocean REST API for branch build state.
type JenkinsAdapter struct {
	Endpoint string
	Org      string
	Timeout  time.Duration
}

func NewJenkinsAdapter(endpoint string, timeoutSec int) JenkinsAdapter {
	return JenkinsAdapter{
		Endpoint: endpoint,
		Org:      defaultJenkinsOrg,
		Timeout:  normalizeTimeout(timeoutSec, defaultJenkinsTimeout),
	}
}

type jenkinsBranch struct {
	LatestRun struct {
		// null while the run is still in progress
		Result *string `json:"result"`
	} `json:"latestRun"`
}

// LatestRunResult fetches the latest run of the branch ref on the repo's
// pipeline and returns its raw result field. Empty string means the run
// has not produced a result yet.
func (a JenkinsAdapter) LatestRunResult(ctx context.Context, repo string, ref string) (string, error) {
	branchURL := fmt.Sprintf("%s/pipelines/%s/%s/branches/%s/",
		strings.TrimRight(a.Endpoint, "/"), a.Org, url.PathEscape(repo), url.PathEscape(ref))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, branchURL, nil)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid jenkins url").
			WithCause(err)
	}
	client := &http.Client{Timeout: a.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("jenkins query failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("Jenkins build not found: %s %s", repo, ref)).
			WithCause(shared.HTTPStatusError(resp.StatusCode, branchURL))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read jenkins response").
			WithCause(err)
	}
	var branch jenkinsBranch
	if err := json.Unmarshal(body, &branch); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to decode jenkins response").
			WithCause(err)
	}
	if branch.LatestRun.Result == nil {
		return "", nil
	}
	return *branch.LatestRun.Result, nil
}

var _ ports.CIPort = JenkinsAdapter{}
