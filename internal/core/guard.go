package core

import (
	"context"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"ubports-qa/internal/ports"
	"ubports-qa/internal/types"
)

// Guard scopes a writable root mount around a block of work. Acquisition
// remounts root read-write and puts a tmpfs over the apt archive cache
// so package downloads have write space regardless of the underlying
// storage. Release always unmounts the tmpfs and flushes writes; root
// goes back to read-only unless the writable-image marker is present.
//
// Not reentrant. The process owns the mount table for the duration of
// Run; nothing else may acquire in the same mount namespace.
type Guard struct {
	Mount    ports.MountPort
	Root     string
	CacheDir string
	Marker   string
	Euid     func() int
}

func NewGuard(cfg types.Config, mount ports.MountPort) Guard {
	return Guard{
		Mount:    mount,
		Root:     cfg.RootMount,
		CacheDir: cfg.AptCacheDir,
		Marker:   cfg.WritableMarker,
		Euid:     os.Geteuid,
	}
}

// Run executes fn with the root filesystem writable. Release happens on
// every exit path, including an error returned by fn; fn's error
// propagates unchanged after release. Remount and tmpfs failures during
// acquisition are logged and not escalated: the guarded operations will
// surface their own errors if the filesystem really is still read-only.
func (g Guard) Run(ctx context.Context, fn func(context.Context) error) error {
	if g.Euid() != 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodePermissionDenied).
			WithMsg("needs root privileges, try again with sudo")
	}
	if err := g.Mount.RemountRW(g.Root); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("path", g.Root).Msg("remount read-write failed")
	}
	if err := g.Mount.MountTmpfs(g.CacheDir); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("path", g.CacheDir).Msg("tmpfs mount over apt cache failed")
	}
	defer g.release(ctx)
	return fn(ctx)
}

func (g Guard) release(ctx context.Context) {
	if err := g.Mount.Unmount(g.CacheDir); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("path", g.CacheDir).Msg("failed to unmount apt cache tmpfs")
	}
	g.Mount.Sync()
	if _, err := os.Stat(g.Marker); err == nil {
		log.Ctx(ctx).Debug().Str("marker", g.Marker).Msg("writable image, leaving root read-write")
		return
	}
	if err := g.Mount.RemountRO(g.Root); err != nil {
		// Open file handles on root make EBUSY normal here.
		log.Ctx(ctx).Warn().Err(err).Str("path", g.Root).
			Msg("could not remount root read-only, reboot the device to restore it")
	}
}
