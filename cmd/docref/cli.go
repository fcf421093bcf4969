package main

import (
	"context"
	"io"

	"github.com/fwojciec/docref"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Locator docref.Locator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	GradleVersion string `name:"gradle-version" env:"DOCREF_GRADLE_VERSION" help:"Gradle version to link to (default: build version or current)"`
	Verbose       bool   `short:"v" env:"DOCREF_VERBOSE" help:"Log resolved links to stderr"`

	Userguide UserguideCmd `cmd:"" help:"Print the user guide URL for a feature"`
	DSL       DSLCmd       `cmd:"" name:"dsl" help:"Print the DSL reference URL for a type property"`
	Samples   SamplesCmd   `cmd:"" help:"Print the samples index URL"`
	Sample    SampleCmd    `cmd:"" help:"Print the URL of a sample"`
	Recommend RecommendCmd `cmd:"" help:"Print a 'for more information' hint for a feature"`
}

// UserguideCmd is the "userguide" subcommand.
type UserguideCmd struct {
	ID      string `arg:"" help:"Feature identifier, e.g. java_plugin"`
	Section string `short:"s" help:"Section anchor, e.g. sec:compile"`
}

// DSLCmd is the "dsl" subcommand.
type DSLCmd struct {
	Type     string `arg:"" help:"Fully-qualified type name"`
	Property string `arg:"" help:"Property name"`
}

// SamplesCmd is the "samples" subcommand.
type SamplesCmd struct{}

// SampleCmd is the "sample" subcommand.
type SampleCmd struct {
	ID string `arg:"" help:"Sample identifier"`
}

// RecommendCmd is the "recommend" subcommand.
type RecommendCmd struct {
	ID      string `arg:"" help:"Feature identifier"`
	Section string `short:"s" help:"Section anchor"`
	Topic   string `short:"t" help:"Human-readable topic name"`
}
