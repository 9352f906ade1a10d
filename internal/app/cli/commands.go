package cli

import (
	"github.com/spf13/cobra"

	"vigil/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandTail CommandType = iota
	CommandInit
	CommandVersion
)

// Options contains the parsed command-line arguments
type Options struct {
	Type    CommandType
	Paths   []string
	UTC     bool
	Replay  bool
	Include []string
	Exclude []string
	NoUI    bool
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{Type: CommandTail}

	root := buildRootCommand(result)
	root.AddCommand(
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	// cobra treats nil args as "use os.Args"
	if args == nil {
		args = []string{}
	}

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName + " [file...]",
		Short: "A live-following terminal log viewer",
		Long: `Vigil tails log files and renders a live-following viewer:
it auto-scrolls as rows arrive, pauses when you scroll away, and
highlights newly arrived lines until they settle.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandTail
			if len(args) > 0 {
				result.Paths = args
			}
		},
	}

	cmd.Flags().BoolVar(&result.UTC, "utc", false, "display timestamps in UTC")
	cmd.Flags().BoolVar(&result.Replay, "replay", false, "read existing file contents before following")
	cmd.Flags().StringSliceVar(&result.Include, "include", nil, "only show lines matching these glob patterns")
	cmd.Flags().StringSliceVar(&result.Exclude, "exclude", nil, "hide lines matching these glob patterns")
	cmd.Flags().BoolVar(&result.NoUI, "no-ui", false, "print formatted lines instead of the TUI")

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + config.ConfigFile,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}

// Apply merges parsed options into the configuration
func (o *Options) Apply(cfg *config.Config) {
	if len(o.Paths) > 0 {
		cfg.Sources = make([]*config.Source, 0, len(o.Paths))
		for _, path := range o.Paths {
			cfg.Sources = append(cfg.Sources, &config.Source{Path: path})
		}

		cfg.ApplyDefaults()
	}

	if o.UTC {
		cfg.Display.Timezone = config.TimezoneUTC
	}

	if o.Replay {
		cfg.Stream.Replay = true
	}

	if len(o.Include) > 0 {
		cfg.Filter.Include = append(cfg.Filter.Include, o.Include...)
	}

	if len(o.Exclude) > 0 {
		cfg.Filter.Exclude = append(cfg.Filter.Exclude, o.Exclude...)
	}
}
