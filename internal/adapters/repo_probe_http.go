package adapters

import (
	"context"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ubports-qa/internal/ports"
)

const defaultProbeTimeout = 15 * time.Second

// RepoProbeHTTPAdapter checks repository existence with a metadata-only
// HEAD request. Only a 200 counts as existing.
type RepoProbeHTTPAdapter struct {
	Timeout time.Duration
}

func NewRepoProbeHTTPAdapter(timeoutSec int) RepoProbeHTTPAdapter {
	return RepoProbeHTTPAdapter{Timeout: normalizeTimeout(timeoutSec, defaultProbeTimeout)}
}

func (a RepoProbeHTTPAdapter) Exists(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid probe url").
			WithCause(err)
	}
	client := &http.Client{Timeout: a.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("repository probe failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}

func normalizeTimeout(timeoutSec int, fallback time.Duration) time.Duration {
	if timeoutSec <= 0 {
		return fallback
	}
	return time.Duration(timeoutSec) * time.Second
}

var _ ports.RepoProbePort = RepoProbeHTTPAdapter{}
