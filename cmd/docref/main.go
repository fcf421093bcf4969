package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docref"
	"github.com/fwojciec/docref/buildinfo"
	docslog "github.com/fwojciec/docref/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defaultVersion is used when neither a flag nor the build supplies a version.
const defaultVersion = "current"

// Main represents the program.
type Main struct {
	// Versions supplies the documentation version when --gradle-version is unset.
	Versions docref.VersionProvider

	// Locator used by commands. Set by Run.
	Locator docref.Locator
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Versions: buildinfo.NewVersionProvider(defaultVersion),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docref"),
		kong.Description("Print Gradle documentation URLs."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docref --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var versions docref.VersionProvider = docref.Version(cli.GradleVersion)
	if cli.GradleVersion == "" {
		versions = m.Versions
	}

	registry, err := docref.NewRegistry(versions)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set DOCREF_GRADLE_VERSION or pass --gradle-version")
		return fmt.Errorf("failed to create documentation registry: %w", err)
	}

	m.Locator = registry
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		m.Locator = docslog.NewLoggingLocator(registry, logger)
	}
	deps.Locator = m.Locator

	return kongCtx.Run(deps)
}
