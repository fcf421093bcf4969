package slog

import (
	"log/slog"

	"github.com/fwojciec/docref"
)

// Ensure LoggingLocator implements docref.Locator.
var _ docref.Locator = (*LoggingLocator)(nil)

// LoggingLocator wraps a Locator with debug logging of every resolved link.
type LoggingLocator struct {
	next   docref.Locator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next docref.Locator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// DocumentationFor delegates to the wrapped locator and logs the result.
func (l *LoggingLocator) DocumentationFor(id string) string {
	url := l.next.DocumentationFor(id)
	l.log("userguide", id, url)
	return url
}

// DocumentationForSection delegates to the wrapped locator and logs the result.
func (l *LoggingLocator) DocumentationForSection(id, section string) string {
	url := l.next.DocumentationForSection(id, section)
	l.log("userguide", id, url, "section", section)
	return url
}

// DSLRefForProperty delegates to the wrapped locator and logs the result.
func (l *LoggingLocator) DSLRefForProperty(typeName, property string) string {
	url := l.next.DSLRefForProperty(typeName, property)
	l.log("dsl", typeName, url, "property", property)
	return url
}

// SampleIndex delegates to the wrapped locator and logs the result.
func (l *LoggingLocator) SampleIndex() string {
	url := l.next.SampleIndex()
	l.log("samples", "", url)
	return url
}

// SampleFor delegates to the wrapped locator and logs the result.
func (l *LoggingLocator) SampleFor(id string) string {
	url := l.next.SampleFor(id)
	l.log("sample", id, url)
	return url
}

// RecommendationFor delegates to the wrapped locator and logs the result.
func (l *LoggingLocator) RecommendationFor(topic, id, section string) string {
	text := l.next.RecommendationFor(topic, id, section)
	l.logger.Debug("documentation recommendation",
		"kind", "recommendation",
		"id", id,
		"topic", topic,
		"section", section,
		"text", text,
	)
	return text
}

func (l *LoggingLocator) log(kind, id, url string, attrs ...any) {
	l.logger.Debug("documentation link",
		append([]any{"kind", kind, "id", id, "url", url}, attrs...)...,
	)
}
