package ports

import "context"

// RepoProbePort checks whether a repository distribution exists on a
// remote apt host, via a metadata-only request.
type RepoProbePort interface {
	Exists(ctx context.Context, url string) (bool, error)
}
