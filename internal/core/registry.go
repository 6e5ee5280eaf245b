package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"ubports-qa/internal/ports"
	"ubports-qa/internal/types"
)

const (
	// Identifiers on the legacy release track live on the old repo host.
	legacyTrackPrefix = "xenial"

	filePrefix    = "ubports-"
	listExtension = ".list"
	prefExtension = ".pref"

	// High enough to force upgrades and downgrades across any normal
	// priority tier.
	pinPriority = 3001
)

// Registry owns the two parallel file sets that make a testing PPA known
// to apt: one source-list entry and one pin-priority entry per
// repository identifier. It is the sole writer of both directories.
type Registry struct {
	SourcesDir     string
	PrefsDir       string
	LegacyBaseURL  string
	DefaultBaseURL string
	Probe          ports.RepoProbePort
}

func NewRegistry(cfg types.Config, probe ports.RepoProbePort) Registry {
	return Registry{
		SourcesDir:     cfg.SourcesDir,
		PrefsDir:       cfg.PrefsDir,
		LegacyBaseURL:  cfg.LegacyBaseURL,
		DefaultBaseURL: cfg.DefaultBaseURL,
		Probe:          probe,
	}
}

// BaseURL selects the apt host for an identifier. Legacy release-track
// identifiers are served from the old host.
func (r Registry) BaseURL(id string) string {
	if strings.HasPrefix(id, legacyTrackPrefix) {
		return r.LegacyBaseURL
	}
	return r.DefaultBaseURL
}

func (r Registry) ListPath(id string) string {
	return filepath.Join(r.SourcesDir, filePrefix+id+listExtension)
}

func (r Registry) PrefPath(id string) string {
	return filepath.Join(r.PrefsDir, filePrefix+id+prefExtension)
}

// Installed reports whether the source-list entry for id exists. The
// list file, not the pin file, is the source of truth.
func (r Registry) Installed(id string) bool {
	_, err := os.Stat(r.ListPath(id))
	return err == nil
}

// AddList writes the source-list entry for id after probing the remote
// host for the distribution. A second call for the same identifier is a
// no-op that leaves the existing file untouched.
func (r Registry) AddList(ctx context.Context, id string) error {
	if err := r.validateID(ctx, id); err != nil {
		return err
	}
	path := r.ListPath(id)
	if _, err := os.Stat(path); err == nil {
		log.Ctx(ctx).Debug().Str("id", id).Msg("source list already present")
		return nil
	}
	base := r.BaseURL(id)
	probeURL := fmt.Sprintf("%sdists/%s/", base, id)
	exists, err := r.Probe.Exists(ctx, probeURL)
	if err != nil {
		return err
	}
	if !exists {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("PPA not found: %s", id))
	}
	line := fmt.Sprintf("deb %s %s main\n", base, id)
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write source list").
			WithCause(err)
	}
	log.Ctx(ctx).Info().Str("id", id).Str("base", base).Msg("source list added")
	return nil
}

// AddPref writes the pin-priority entry for id. Idempotent like AddList.
func (r Registry) AddPref(ctx context.Context, id string) error {
	if err := r.validateID(ctx, id); err != nil {
		return err
	}
	path := r.PrefPath(id)
	if _, err := os.Stat(path); err == nil {
		log.Ctx(ctx).Debug().Str("id", id).Msg("pin preference already present")
		return nil
	}
	content := fmt.Sprintf("Package: *\nPin: release o=UBports,n=%s\nPin-Priority: %d\n", id, pinPriority)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write pin preference").
			WithCause(err)
	}
	return nil
}

// RemoveList deletes the source-list entry for id. An absent entry is
// treated as success.
func (r Registry) RemoveList(ctx context.Context, id string) error {
	if err := r.validateID(ctx, id); err != nil {
		return err
	}
	return removeFile(r.ListPath(id), "failed to remove source list")
}

// RemovePref deletes the pin-priority entry for id. An absent entry is
// treated as success.
func (r Registry) RemovePref(ctx context.Context, id string) error {
	if err := r.validateID(ctx, id); err != nil {
		return err
	}
	return removeFile(r.PrefPath(id), "failed to remove pin preference")
}

// Identifiers returns the set of installed repository identifiers,
// derived from source-list files matching the registry naming scheme.
// The result is sorted for stable output; callers must not rely on any
// particular ordering.
func (r Registry) Identifiers() ([]string, error) {
	entries, err := os.ReadDir(r.SourcesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read sources directory").
			WithCause(err)
	}
	seen := map[string]struct{}{}
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, listExtension) {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), listExtension)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r Registry) validateID(ctx context.Context, id string) error {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository id is empty")
	}
	assert.NotEmpty(ctx, trimmed, "repository id must be set")
	// The identifier is used verbatim in file names.
	if trimmed != filepath.Base(trimmed) || trimmed == "." || trimmed == ".." {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository id is not a valid file name")
	}
	return nil
}

func removeFile(path string, msg string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(msg).
			WithCause(err)
	}
	return nil
}
