package app

import (
	"context"
	"path/filepath"
	"testing"

	"ubports-qa/internal/types"
)

type fakeApt struct {
	calls         []string
	updateErr     error
	upgradeErr    error
	autoremoveErr error
}

func (a *fakeApt) Update(context.Context) error {
	a.calls = append(a.calls, "update")
	return a.updateErr
}

func (a *fakeApt) Upgrade(context.Context) error {
	a.calls = append(a.calls, "upgrade")
	return a.upgradeErr
}

func (a *fakeApt) Autoremove(context.Context) error {
	a.calls = append(a.calls, "autoremove")
	return a.autoremoveErr
}

type fakeMount struct {
	calls []string
}

func (m *fakeMount) RemountRW(path string) error {
	m.calls = append(m.calls, "rw:"+path)
	return nil
}

func (m *fakeMount) RemountRO(path string) error {
	m.calls = append(m.calls, "ro:"+path)
	return nil
}

func (m *fakeMount) MountTmpfs(dir string) error {
	m.calls = append(m.calls, "tmpfs:"+dir)
	return nil
}

func (m *fakeMount) Unmount(dir string) error {
	m.calls = append(m.calls, "umount:"+dir)
	return nil
}

func (m *fakeMount) Sync() {
	m.calls = append(m.calls, "sync")
}

type fakeProbe struct {
	exists bool
	err    error
	urls   []string
}

func (p *fakeProbe) Exists(_ context.Context, url string) (bool, error) {
	p.urls = append(p.urls, url)
	return p.exists, p.err
}

type fakeCI struct {
	result string
	err    error
	repos  []string
	refs   []string
}

func (c *fakeCI) LatestRunResult(_ context.Context, repo string, ref string) (string, error) {
	c.repos = append(c.repos, repo)
	c.refs = append(c.refs, ref)
	return c.result, c.err
}

type fakeGitHub struct {
	pr  types.PullRequest
	err error
}

func (g *fakeGitHub) FetchPullRequest(context.Context, string, int) (types.PullRequest, error) {
	return g.pr, g.err
}

type harness struct {
	apt   *fakeApt
	mount *fakeMount
	probe *fakeProbe
	ci    *fakeCI
	svc   Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := types.DefaultConfig()
	cfg.RootMount = "/rootfs"
	cfg.AptCacheDir = "/rootfs/cache"
	cfg.SourcesDir = t.TempDir()
	cfg.PrefsDir = t.TempDir()
	cfg.WritableMarker = filepath.Join(t.TempDir(), ".writable_image")

	h := &harness{
		apt:   &fakeApt{},
		mount: &fakeMount{},
		probe: &fakeProbe{exists: true},
		ci:    &fakeCI{result: "SUCCESS"},
	}
	h.svc = Service{
		Apt:    h.apt,
		Mount:  h.mount,
		Probe:  h.probe,
		CI:     h.ci,
		GitHub: &fakeGitHub{},
		Config: cfg,
		Euid:   func() int { return 0 },
	}
	return h
}

func (h *harness) listPath(id string) string {
	return filepath.Join(h.svc.Config.SourcesDir, "ubports-"+id+".list")
}

func (h *harness) prefPath(id string) string {
	return filepath.Join(h.svc.Config.PrefsDir, "ubports-"+id+".pref")
}
