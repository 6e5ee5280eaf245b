package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Remove forgets a previously installed testing PPA and refreshes
// packages so pinned versions roll back. Removing an identifier that was
// never installed is an error, checked before the mount guard is touched.
func (s Service) Remove(ctx context.Context, req RemoveRequest) (RemoveResult, error) {
	id := strings.TrimSpace(req.Repo)
	if id == "" {
		return RemoveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository name is required")
	}
	registry := s.registry()
	if !registry.Installed(id) {
		return RemoveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("repository %s is not installed", id))
	}
	err := s.guard().Run(ctx, func(ctx context.Context) error {
		if err := registry.RemoveList(ctx, id); err != nil {
			return err
		}
		if err := registry.RemovePref(ctx, id); err != nil {
			return err
		}
		s.refreshPackages(ctx)
		return nil
	})
	if err != nil {
		return RemoveResult{}, err
	}
	return RemoveResult{ID: id}, nil
}
