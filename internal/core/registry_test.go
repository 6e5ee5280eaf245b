package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubports-qa/internal/types"
)

type fakeProbe struct {
	exists bool
	err    error
	urls   []string
}

func (p *fakeProbe) Exists(_ context.Context, url string) (bool, error) {
	p.urls = append(p.urls, url)
	return p.exists, p.err
}

func newTestRegistry(t *testing.T, probe *fakeProbe) Registry {
	t.Helper()
	cfg := types.DefaultConfig()
	cfg.SourcesDir = t.TempDir()
	cfg.PrefsDir = t.TempDir()
	return NewRegistry(cfg, probe)
}

func TestRegistryAddList(t *testing.T) {
	ctx := context.Background()

	t.Run("writes single deb line", func(t *testing.T) {
		probe := &fakeProbe{exists: true}
		registry := newTestRegistry(t, probe)

		require.NoError(t, registry.AddList(ctx, "focal_-_sessionrestore"))

		content, err := os.ReadFile(registry.ListPath("focal_-_sessionrestore"))
		require.NoError(t, err)
		assert.Equal(t, "deb http://repo2.ubports.com/ focal_-_sessionrestore main\n", string(content))
		require.Len(t, probe.urls, 1)
		assert.Equal(t, "http://repo2.ubports.com/dists/focal_-_sessionrestore/", probe.urls[0])
	})

	t.Run("legacy track probes old host", func(t *testing.T) {
		probe := &fakeProbe{exists: true}
		registry := newTestRegistry(t, probe)

		require.NoError(t, registry.AddList(ctx, "xenial_-_sessionrestore"))

		require.Len(t, probe.urls, 1)
		assert.Equal(t, "http://repo.ubports.com/dists/xenial_-_sessionrestore/", probe.urls[0])
		content, err := os.ReadFile(registry.ListPath("xenial_-_sessionrestore"))
		require.NoError(t, err)
		assert.Equal(t, "deb http://repo.ubports.com/ xenial_-_sessionrestore main\n", string(content))
	})

	t.Run("second call is a no-op", func(t *testing.T) {
		probe := &fakeProbe{exists: true}
		registry := newTestRegistry(t, probe)

		require.NoError(t, registry.AddList(ctx, "myfeature"))
		// Scribble on the file; a repeated add must not touch it.
		require.NoError(t, os.WriteFile(registry.ListPath("myfeature"), []byte("scribble"), 0o644))
		require.NoError(t, registry.AddList(ctx, "myfeature"))

		content, err := os.ReadFile(registry.ListPath("myfeature"))
		require.NoError(t, err)
		assert.Equal(t, "scribble", string(content))
		assert.Len(t, probe.urls, 1, "no second probe for an installed id")
	})

	t.Run("missing distribution is fatal and writes nothing", func(t *testing.T) {
		probe := &fakeProbe{exists: false}
		registry := newTestRegistry(t, probe)

		err := registry.AddList(ctx, "ghost")
		require.Error(t, err)
		assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
		assert.Contains(t, err.Error(), "PPA not found")
		assert.NoFileExists(t, registry.ListPath("ghost"))
	})

	t.Run("probe transport error propagates and writes nothing", func(t *testing.T) {
		probe := &fakeProbe{err: errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("repository probe failed")}
		registry := newTestRegistry(t, probe)

		err := registry.AddList(ctx, "unreachable")
		require.Error(t, err)
		assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
		assert.NoFileExists(t, registry.ListPath("unreachable"))
	})
}

func TestRegistryAddPref(t *testing.T) {
	ctx := context.Background()

	t.Run("writes pin template", func(t *testing.T) {
		registry := newTestRegistry(t, &fakeProbe{exists: true})

		require.NoError(t, registry.AddPref(ctx, "myfeature"))

		content, err := os.ReadFile(registry.PrefPath("myfeature"))
		require.NoError(t, err)
		assert.Equal(t, "Package: *\nPin: release o=UBports,n=myfeature\nPin-Priority: 3001\n", string(content))
	})

	t.Run("second call is a no-op", func(t *testing.T) {
		registry := newTestRegistry(t, &fakeProbe{exists: true})

		require.NoError(t, registry.AddPref(ctx, "myfeature"))
		require.NoError(t, os.WriteFile(registry.PrefPath("myfeature"), []byte("scribble"), 0o644))
		require.NoError(t, registry.AddPref(ctx, "myfeature"))

		content, err := os.ReadFile(registry.PrefPath("myfeature"))
		require.NoError(t, err)
		assert.Equal(t, "scribble", string(content))
	})
}

func TestRegistryRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes both halves", func(t *testing.T) {
		registry := newTestRegistry(t, &fakeProbe{exists: true})
		require.NoError(t, registry.AddList(ctx, "myfeature"))
		require.NoError(t, registry.AddPref(ctx, "myfeature"))

		require.NoError(t, registry.RemoveList(ctx, "myfeature"))
		require.NoError(t, registry.RemovePref(ctx, "myfeature"))

		assert.NoFileExists(t, registry.ListPath("myfeature"))
		assert.NoFileExists(t, registry.PrefPath("myfeature"))
	})

	t.Run("absent entries succeed silently", func(t *testing.T) {
		registry := newTestRegistry(t, &fakeProbe{exists: true})
		assert.NoError(t, registry.RemoveList(ctx, "never-installed"))
		assert.NoError(t, registry.RemovePref(ctx, "never-installed"))
	})
}

// The list and pref halves are written without a transaction. An
// interrupted install can leave one without the other; re-running the
// same install converges on the full pair.
func TestRegistryPartialWriteConverges(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry(t, &fakeProbe{exists: true})

	require.NoError(t, registry.AddList(ctx, "halfway"))
	assert.True(t, registry.Installed("halfway"))
	assert.NoFileExists(t, registry.PrefPath("halfway"), "pref half not yet written")

	require.NoError(t, registry.AddList(ctx, "halfway"))
	require.NoError(t, registry.AddPref(ctx, "halfway"))
	assert.FileExists(t, registry.ListPath("halfway"))
	assert.FileExists(t, registry.PrefPath("halfway"))
}

func TestRegistryIdentifiers(t *testing.T) {
	registry := newTestRegistry(t, &fakeProbe{exists: true})

	for _, name := range []string{
		"ubports-alpha.list",
		"ubports-beta.list",
		"ubports-PR_repowidget_42.list",
		"vendor.list",
		"ubports-gamma.pref",
		"ubports-.list",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(registry.SourcesDir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(registry.SourcesDir, "ubports-dir.list"), 0o755))

	ids, err := registry.Identifiers()
	require.NoError(t, err)
	want := []string{"PR_repowidget_42", "alpha", "beta"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("identifiers mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryIdentifiersMissingDir(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.SourcesDir = filepath.Join(t.TempDir(), "does-not-exist")
	registry := NewRegistry(cfg, &fakeProbe{})

	ids, err := registry.Identifiers()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRegistryValidateID(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry(t, &fakeProbe{exists: true})

	for _, id := range []string{"", "   ", "a/b", "..", "."} {
		err := registry.AddList(ctx, id)
		require.Error(t, err, "id %q", id)
		assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err), "id %q", id)
	}
}
