package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"ubports-qa/internal/core"
	"ubports-qa/internal/shared"
	"ubports-qa/internal/types"
)

// Install makes a testing PPA known to apt and refreshes packages. When
// a pull-request number is given the install is gated on the latest
// Jenkins run for that PR branch: only a successful build is installed,
// and the effective identifier becomes PR_<repo>_<number>.
func (s Service) Install(ctx context.Context, req InstallRequest) (InstallResult, error) {
	id := strings.TrimSpace(req.Repo)
	if id == "" {
		return InstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository name is required")
	}

	if req.PullRequest > 0 {
		repo := shared.StripOrg(req.Repo)
		ref := types.PullRequestRef(req.PullRequest)
		result, err := s.CI.LatestRunResult(ctx, repo, ref)
		if err != nil {
			return InstallResult{}, err
		}
		switch core.StatusFromResult(result) {
		case types.BuildStatusFailed:
			return InstallResult{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("Issue failed to build")
		case types.BuildStatusBuilding:
			return InstallResult{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("Issue is currently building")
		}
		id = types.PullRequestID(repo, req.PullRequest)
		log.Ctx(ctx).Debug().Str("id", id).Str("ref", ref).Msg("pull-request build is green")
	}

	registry := s.registry()
	err := s.guard().Run(ctx, func(ctx context.Context) error {
		if err := registry.AddList(ctx, id); err != nil {
			return err
		}
		if err := registry.AddPref(ctx, id); err != nil {
			return err
		}
		s.refreshPackages(ctx)
		return nil
	})
	if err != nil {
		return InstallResult{}, err
	}
	return InstallResult{
		ID:          id,
		RemovalHint: fmt.Sprintf("Run 'ubports-qa remove %s' to remove this PPA", id),
	}, nil
}
