// Package docref locates Gradle documentation. It turns user guide, DSL
// reference and sample identifiers into fully-qualified URLs rooted at a
// version-specific base URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., slog/, buildinfo/).
package docref
