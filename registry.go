package docref

import (
	"fmt"
	"reflect"
	"strings"
)

// DocsHost is the root of the hosted Gradle documentation.
const DocsHost = "https://docs.gradle.org"

// Locator resolves documentation identifiers to URLs.
type Locator interface {
	// DocumentationFor returns the user guide page for the feature id.
	DocumentationFor(id string) string

	// DocumentationForSection returns the user guide page for id anchored at section.
	DocumentationForSection(id, section string) string

	// DSLRefForProperty returns the DSL reference entry for a property
	// of the fully-qualified type typeName.
	DSLRefForProperty(typeName, property string) string

	// SampleIndex returns the samples landing page.
	SampleIndex() string

	// SampleFor returns the page of the sample id.
	SampleFor(id string) string

	// RecommendationFor returns "For more <topic>, please refer to <url> in
	// the Gradle documentation." Topic and section are optional.
	RecommendationFor(topic, id, section string) string
}

// Ensure Registry implements Locator.
var _ Locator = (*Registry)(nil)

// Registry locates documentation for a single product version.
// The zero value is not usable; create one with NewRegistry.
// A Registry is immutable and safe for concurrent use.
type Registry struct {
	baseURL string
}

// NewRegistry returns a Registry rooted at the version supplied by versions.
// Returns EINVALID if versions is nil or reports a blank version.
func NewRegistry(versions VersionProvider) (*Registry, error) {
	if versions == nil {
		return nil, Errorf(EINVALID, "version provider required")
	}
	version := versions.CurrentVersion()
	if strings.TrimSpace(version) == "" {
		return nil, Errorf(EINVALID, "version required")
	}
	return &Registry{baseURL: DocsHost + "/" + version}, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(versions VersionProvider) *Registry {
	r, err := NewRegistry(versions)
	if err != nil {
		panic(err)
	}
	return r
}

// BaseURL returns the versioned documentation root.
func (r *Registry) BaseURL() string {
	return r.baseURL
}

// DocumentationFor returns "<base>/userguide/<id>.html".
func (r *Registry) DocumentationFor(id string) string {
	return fmt.Sprintf("%s/userguide/%s.html", r.baseURL, id)
}

// DocumentationForSection returns the DocumentationFor page with "#<section>" appended.
func (r *Registry) DocumentationForSection(id, section string) string {
	return r.DocumentationFor(id) + "#" + section
}

// DSLRefForProperty returns "<base>/dsl/<typeName>.html#<typeName>:<property>".
func (r *Registry) DSLRefForProperty(typeName, property string) string {
	return fmt.Sprintf("%s/dsl/%s.html#%s:%s", r.baseURL, typeName, typeName, property)
}

// DSLRefForType is DSLRefForProperty with the type name taken from v.
// See TypeName.
func (r *Registry) DSLRefForType(v any, property string) string {
	return r.DSLRefForProperty(TypeName(v), property)
}

// SampleIndex returns "<base>/samples".
func (r *Registry) SampleIndex() string {
	return r.baseURL + "/samples"
}

// SampleFor returns "<base>/samples/sample_<id>.html".
func (r *Registry) SampleFor(id string) string {
	return fmt.Sprintf("%s/samples/sample_%s.html", r.baseURL, id)
}

// recommendation is the "learn more" sentence used in error messages.
const recommendation = "For more %s, please refer to %s in the Gradle documentation."

// RecommendationFor formats a "learn more" hint for error messages and help
// text, e.g. "For more information, please refer to <url> in the Gradle
// documentation." An empty topic reads "information" and an empty section
// links to the top of the page.
func (r *Registry) RecommendationFor(topic, id, section string) string {
	if topic == "" {
		topic = "information"
	}
	url := r.DocumentationFor(id)
	if section != "" {
		url = r.DocumentationForSection(id, section)
	}
	return fmt.Sprintf(recommendation, topic, url)
}

// TypeName returns the fully-qualified name of v's type, "<pkgpath>.<name>".
// Pointers are dereferenced and a reflect.Type is used as is.
// Predeclared and unnamed types fall back to their Go syntax, nil to "".
func TypeName(v any) string {
	if v == nil {
		return ""
	}
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
