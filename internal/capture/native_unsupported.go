//go:build !(darwin || linux || windows) || arm || 386 || ios || android

package capture

type nativeBackend struct{}

func newNativeBackend() Backend { return nativeBackend{} }

func (nativeBackend) Name() string { return "native" }

func (nativeBackend) Available() bool { return false }

func (nativeBackend) Entries() ([]Entry, error) { return nil, errUnsupported }
