package ports

import "context"

// AptPort invokes the system package manager. All three calls are
// best-effort from the orchestrator's point of view: a failure is logged
// and the command continues, since a stale package index is recoverable
// on the next run.
type AptPort interface {
	Update(ctx context.Context) error
	Upgrade(ctx context.Context) error
	Autoremove(ctx context.Context) error
}
