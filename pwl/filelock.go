package pwl

import "os"

// FileLocker provides advisory locking around a Dictionary's backing file
// while it is read or rewritten. The host environment is expected to supply
// a locker backed by real OS file locks (e.g. flock); Dictionary falls back
// to noopLocker, which performs no locking at all, exactly as the distilled
// spec assigns real locking to the host rather than to this library.
type FileLocker interface {
	Lock(f *os.File) error
	Unlock(f *os.File) error
}

type noopLocker struct{}

func (noopLocker) Lock(*os.File) error   { return nil }
func (noopLocker) Unlock(*os.File) error { return nil }
