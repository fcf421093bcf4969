package docref

// VersionProvider supplies the product version used to build documentation URLs.
type VersionProvider interface {
	// CurrentVersion returns the version, e.g. "8.5" or "current".
	CurrentVersion() string
}

// Ensure Version implements VersionProvider.
var _ VersionProvider = Version("")

// Version is a fixed product version.
type Version string

// CurrentVersion returns v.
func (v Version) CurrentVersion() string {
	return string(v)
}
