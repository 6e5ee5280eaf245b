package adapters

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/sys/unix"

	"ubports-qa/internal/ports"
)

// MountUnixAdapter drives the kernel mount table directly. Requires
// CAP_SYS_ADMIN; the guard checks for root before any of these run.
type MountUnixAdapter struct{}

func NewMountUnixAdapter() MountUnixAdapter {
	return MountUnixAdapter{}
}

func (MountUnixAdapter) RemountRW(path string) error {
	if err := unix.Mount("", path, "", unix.MS_REMOUNT, "rw"); err != nil {
		return mountError("remount read-write", path, err)
	}
	return nil
}

func (MountUnixAdapter) RemountRO(path string) error {
	if err := unix.Mount("", path, "", unix.MS_REMOUNT|unix.MS_RDONLY, ""); err != nil {
		return mountError("remount read-only", path, err)
	}
	return nil
}

func (MountUnixAdapter) MountTmpfs(dir string) error {
	if err := unix.Mount("tmpfs", dir, "tmpfs", 0, ""); err != nil {
		return mountError("mount tmpfs", dir, err)
	}
	return nil
}

func (MountUnixAdapter) Unmount(dir string) error {
	if err := unix.Unmount(dir, 0); err != nil {
		return mountError("unmount", dir, err)
	}
	return nil
}

func (MountUnixAdapter) Sync() {
	unix.Sync()
}

func mountError(op string, path string, err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(op + " failed").
		WithCause(fmt.Errorf("%s: %w", path, err))
}

var _ ports.MountPort = MountUnixAdapter{}
