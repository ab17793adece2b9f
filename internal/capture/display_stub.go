//go:build !linux || !cgo

package capture

type displayBackend struct{}

func newDisplayBackend() Backend { return displayBackend{} }

func (displayBackend) Name() string { return "display" }

func (displayBackend) Available() bool { return false }

func (displayBackend) Entries() ([]Entry, error) { return nil, errUnsupported }
