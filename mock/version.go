package mock

import "github.com/fwojciec/docref"

var _ docref.VersionProvider = (*VersionProvider)(nil)

// VersionProvider is a mock implementation of docref.VersionProvider.
type VersionProvider struct {
	CurrentVersionFn func() string
}

func (p *VersionProvider) CurrentVersion() string {
	return p.CurrentVersionFn()
}
