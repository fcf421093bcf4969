package mock

import "github.com/fwojciec/docref"

var _ docref.Locator = (*Locator)(nil)

// Locator is a mock implementation of docref.Locator.
type Locator struct {
	DocumentationForFn        func(id string) string
	DocumentationForSectionFn func(id, section string) string
	DSLRefForPropertyFn       func(typeName, property string) string
	SampleIndexFn             func() string
	SampleForFn               func(id string) string
	RecommendationForFn       func(topic, id, section string) string
}

func (l *Locator) DocumentationFor(id string) string {
	return l.DocumentationForFn(id)
}

func (l *Locator) DocumentationForSection(id, section string) string {
	return l.DocumentationForSectionFn(id, section)
}

func (l *Locator) DSLRefForProperty(typeName, property string) string {
	return l.DSLRefForPropertyFn(typeName, property)
}

func (l *Locator) SampleIndex() string {
	return l.SampleIndexFn()
}

func (l *Locator) SampleFor(id string) string {
	return l.SampleForFn(id)
}

func (l *Locator) RecommendationFor(topic, id, section string) string {
	return l.RecommendationForFn(topic, id, section)
}
