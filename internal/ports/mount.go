package ports

// MountPort mutates the OS mount table. Single mount namespace assumed;
// the guard in internal/core owns call ordering.
type MountPort interface {
	// RemountRW remounts path read-write in place.
	RemountRW(path string) error
	// RemountRO remounts path read-only. Fails with EBUSY on a root with
	// open writable handles; callers tolerate that.
	RemountRO(path string) error
	// MountTmpfs mounts a memory-backed filesystem over dir.
	MountTmpfs(dir string) error
	// Unmount detaches the filesystem mounted at dir.
	Unmount(dir string) error
	// Sync flushes pending disk writes.
	Sync()
}
