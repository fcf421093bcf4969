package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/docref"
	"github.com/fwojciec/docref/mock"
	docslog "github.com/fwojciec/docref/slog"
	"github.com/stretchr/testify/assert"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingLocator_DocumentationFor(t *testing.T) {
	t.Parallel()

	t.Run("returns inner result and logs url", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Locator{
			DocumentationForFn: func(id string) string {
				return "https://docs.gradle.org/8.5/userguide/" + id + ".html"
			},
		}

		locator := docslog.NewLoggingLocator(inner, debugLogger(&buf))
		url := locator.DocumentationFor("java_plugin")

		assert.Equal(t, "https://docs.gradle.org/8.5/userguide/java_plugin.html", url)
		output := buf.String()
		assert.Contains(t, output, "documentation link")
		assert.Contains(t, output, "kind=userguide")
		assert.Contains(t, output, "id=java_plugin")
		assert.Contains(t, output, "url=https://docs.gradle.org/8.5/userguide/java_plugin.html")
	})

	t.Run("stays silent above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Locator{
			DocumentationForFn: func(id string) string { return "u" },
		}

		locator := docslog.NewLoggingLocator(inner, logger)
		locator.DocumentationFor("java_plugin")

		assert.Empty(t, buf.String())
	})
}

func TestLoggingLocator_DocumentationForSection(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var gotID, gotSection string
	inner := &mock.Locator{
		DocumentationForSectionFn: func(id, section string) string {
			gotID, gotSection = id, section
			return "https://docs.gradle.org/8.5/userguide/java_plugin.html#sec:compile"
		},
	}

	locator := docslog.NewLoggingLocator(inner, debugLogger(&buf))
	url := locator.DocumentationForSection("java_plugin", "sec:compile")

	assert.Equal(t, "https://docs.gradle.org/8.5/userguide/java_plugin.html#sec:compile", url)
	assert.Equal(t, "java_plugin", gotID)
	assert.Equal(t, "sec:compile", gotSection)
	assert.Contains(t, buf.String(), "section=sec:compile")
}

func TestLoggingLocator_DSLRefForProperty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Locator{
		DSLRefForPropertyFn: func(typeName, property string) string {
			return "dsl/" + typeName + ":" + property
		},
	}

	locator := docslog.NewLoggingLocator(inner, debugLogger(&buf))
	url := locator.DSLRefForProperty("org.gradle.api.Project", "version")

	assert.Equal(t, "dsl/org.gradle.api.Project:version", url)
	assert.Contains(t, buf.String(), "kind=dsl")
	assert.Contains(t, buf.String(), "property=version")
}

func TestLoggingLocator_Samples(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Locator{
		SampleIndexFn: func() string { return "https://docs.gradle.org/8.5/samples" },
		SampleForFn: func(id string) string {
			return "https://docs.gradle.org/8.5/samples/sample_" + id + ".html"
		},
	}

	locator := docslog.NewLoggingLocator(inner, debugLogger(&buf))

	assert.Equal(t, "https://docs.gradle.org/8.5/samples", locator.SampleIndex())
	assert.Equal(t, "https://docs.gradle.org/8.5/samples/sample_x.html", locator.SampleFor("x"))
	assert.Contains(t, buf.String(), "kind=samples")
	assert.Contains(t, buf.String(), "kind=sample ")
}

func TestLoggingLocator_RecommendationFor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	registry := docref.MustNewRegistry(docref.Version("8.5"))

	locator := docslog.NewLoggingLocator(registry, debugLogger(&buf))
	text := locator.RecommendationFor("", "java_plugin", "")

	assert.Equal(t, registry.RecommendationFor("", "java_plugin", ""), text)
	assert.Contains(t, buf.String(), "documentation recommendation")
	assert.Contains(t, buf.String(), "kind=recommendation")
	assert.Contains(t, buf.String(), "id=java_plugin")
	assert.Contains(t, buf.String(), "https://docs.gradle.org/8.5/userguide/java_plugin.html")
}
