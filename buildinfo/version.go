// Package buildinfo provides a docref.VersionProvider backed by information
// compiled into the running binary.
package buildinfo

import (
	"runtime/debug"
	"strings"

	"github.com/fwojciec/docref"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
)

// GradleVersion is the documented product version, set at link time:
//
//	go build -ldflags "-X github.com/fwojciec/docref/buildinfo.GradleVersion=8.5"
var GradleVersion string

// Ensure VersionProvider implements docref.VersionProvider.
var _ docref.VersionProvider = (*VersionProvider)(nil)

// VersionProvider reports the documented product version of the running binary.
//
// The version is taken, in order, from Version, from the release version of
// Module as recorded in the build info, and finally from Fallback.
type VersionProvider struct {
	// Version is used as is when set. Defaults to GradleVersion.
	Version string

	// Module is the path of a module whose release version names the
	// documented product. Empty disables the build info lookup.
	Module string

	// Fallback is returned when no usable version is found.
	Fallback string

	// ReadBuildInfo returns the embedded build information.
	// Defaults to debug.ReadBuildInfo.
	ReadBuildInfo func() (*debug.BuildInfo, bool)
}

// NewVersionProvider returns a VersionProvider that reports GradleVersion,
// or fallback for binaries linked without it.
func NewVersionProvider(fallback string) *VersionProvider {
	return &VersionProvider{
		Version:       GradleVersion,
		Fallback:      fallback,
		ReadBuildInfo: debug.ReadBuildInfo,
	}
}

// CurrentVersion returns the product version.
func (p *VersionProvider) CurrentVersion() string {
	if v := strings.TrimSpace(p.Version); v != "" {
		return v
	}
	if p.Module == "" {
		return p.Fallback
	}
	if v, ok := p.moduleVersion(); ok {
		return v
	}
	return p.Fallback
}

// moduleVersion looks up Module in the main module and its dependencies.
// Only tagged releases count; pseudo, prerelease and "+dirty" versions do not
// name a published documentation set.
func (p *VersionProvider) moduleVersion() (string, bool) {
	read := p.ReadBuildInfo
	if read == nil {
		read = debug.ReadBuildInfo
	}
	info, ok := read()
	if !ok || info == nil {
		return "", false
	}

	mods := append([]*debug.Module{&info.Main}, info.Deps...)
	for _, m := range mods {
		if m == nil || m.Path != p.Module {
			continue
		}
		if m.Replace != nil {
			m = m.Replace
		}
		return releaseVersion(m.Version)
	}
	return "", false
}

// releaseVersion converts a module release version to the form used in
// documentation URLs: "v8.5.0" becomes "8.5", "v8.5.1" stays "8.5.1".
func releaseVersion(v string) (string, bool) {
	if !semver.IsValid(v) || semver.Prerelease(v) != "" || semver.Build(v) != "" || module.IsPseudoVersion(v) {
		return "", false
	}
	canonical := semver.Canonical(v)
	if mm := semver.MajorMinor(v); canonical == mm+".0" {
		return strings.TrimPrefix(mm, "v"), true
	}
	return strings.TrimPrefix(canonical, "v"), true
}
