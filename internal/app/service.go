package app

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"ubports-qa/internal/adapters"
	"ubports-qa/internal/core"
	"ubports-qa/internal/ports"
	"ubports-qa/internal/types"
)

type Service struct {
	Apt    ports.AptPort
	Mount  ports.MountPort
	Probe  ports.RepoProbePort
	CI     ports.CIPort
	GitHub ports.GitHubPort
	Config types.Config
	Euid   func() int
}

func NewService(cfg types.Config) Service {
	return Service{
		Apt:    adapters.NewAptExecAdapter(),
		Mount:  adapters.NewMountUnixAdapter(),
		Probe:  adapters.NewRepoProbeHTTPAdapter(0),
		CI:     adapters.NewJenkinsAdapter(cfg.JenkinsURL, 0),
		GitHub: adapters.NewGitHubAdapter(cfg.GitHubAPIURL, 0),
		Config: cfg,
		Euid:   os.Geteuid,
	}
}

func (s Service) registry() core.Registry {
	return core.NewRegistry(s.Config, s.Probe)
}

func (s Service) guard() core.Guard {
	guard := core.NewGuard(s.Config, s.Mount)
	if s.Euid != nil {
		guard.Euid = s.Euid
	}
	return guard
}

// refreshPackages runs apt update, upgrade and autoremove. Failures are
// logged and swallowed: a partially updated package index is recoverable
// on the next run.
func (s Service) refreshPackages(ctx context.Context) {
	if err := s.Apt.Update(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("apt update failed, package index may be stale")
	}
	if err := s.Apt.Upgrade(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("apt upgrade failed")
	}
	if err := s.Apt.Autoremove(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("apt autoremove failed")
	}
}
