package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/term"

	"vigil/internal/app/errors"
	"vigil/internal/app/printer"
	"vigil/internal/app/stream"
	"vigil/internal/config"
	"vigil/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Run(args []string) error
}

// cli represents the command-line interface for the application
type cli struct {
	cfg *config.Config
	buf *stream.Buffer
	fd  stream.Feed
	tui TUI
	prn printer.Printer
	log logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	cfg *config.Config,
	buf *stream.Buffer,
	fd stream.Feed,
	tui TUI,
	prn printer.Printer,
	log logger.Logger,
) CLI {
	return &cli{
		cfg: cfg,
		buf: buf,
		fd:  fd,
		tui: tui,
		prn: prn,
		log: log.WithComponent("CLI"),
	}
}

// Run processes command-line arguments and executes commands
func (c *cli) Run(args []string) error {
	opts, err := Parse(args)
	if err != nil {
		return err
	}

	switch opts.Type {
	case CommandInit:
		return c.handleInit()
	case CommandVersion:
		return c.handleVersion()
	default:
		return c.handleTail(opts)
	}
}

// handleInit writes a starter config file in the working directory
func (c *cli) handleInit() error {
	if err := config.WriteDefault(); err != nil {
		if errors.Is(err, errors.ErrConfigAlreadyExists) {
			fmt.Fprintf(os.Stderr, "%s already exists, refusing to overwrite\n", config.ConfigFile)
		}
		return err
	}

	fmt.Printf("Wrote %s\n", config.ConfigFile)
	return nil
}

// handleVersion displays version information
func (c *cli) handleVersion() error {
	fmt.Printf("%s v%s\n", config.AppName, config.Version)
	return nil
}

// handleTail follows the configured sources and renders them either in
// the full-screen viewer or as a plain stream when no terminal is
// attached
func (c *cli) handleTail(opts *Options) error {
	opts.Apply(c.cfg)

	c.cfg.Sources = expandSources(c.cfg.Sources)
	c.cfg.ApplyDefaults()

	if err := c.cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	if len(c.cfg.Sources) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no sources given, pass file paths or create %s\n", config.ConfigFile)
		return errors.ErrNoSources
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tl, err := stream.NewTailer(c.cfg, c.buf, c.log)
	if err != nil {
		return err
	}
	defer tl.Close()

	if err := tl.Start(ctx, c.cfg.Sources); err != nil {
		c.log.Error().Err(err).Msg("Failed to start following sources")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	go c.fd.Run(ctx)

	if opts.NoUI || !term.IsTerminal(os.Stdout.Fd()) {
		return c.prn.Print(ctx, c.fd.Updates())
	}

	return c.tui.Run(ctx, c.fd, cancel)
}

// expandSources resolves shell-style glob patterns in source paths to
// one source per matching file. Paths without matches pass through so
// the missing-file error surfaces with the original name.
func expandSources(sources []*config.Source) []*config.Source {
	expanded := make([]*config.Source, 0, len(sources))

	for _, src := range sources {
		matches, err := filepath.Glob(src.Path)
		if err != nil || len(matches) == 0 {
			expanded = append(expanded, src)
			continue
		}

		if len(matches) == 1 && matches[0] == src.Path {
			expanded = append(expanded, src)
			continue
		}

		for _, match := range matches {
			expanded = append(expanded, &config.Source{Path: match})
		}
	}

	return expanded
}
