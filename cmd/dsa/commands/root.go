// Package commands implements CLI command handlers for dsa.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aldrin-Shanty/DSA/internal/config"
	"github.com/Aldrin-Shanty/DSA/internal/render"
)

var (
	// ErrNoInput is returned when a command got neither values nor --random.
	ErrNoInput = errors.New("no input values, pass them as arguments or use --random")
	// ErrBadValue indicates an argument that doesn't parse.
	ErrBadValue = errors.New("bad value")
	// ErrUnknownKind indicates an unknown --kind or --algo.
	ErrUnknownKind = errors.New("unknown kind")
)

// App is the state shared by every command, set up before each run from the
// configuration and the persistent flags.
type App struct {
	configPath string
	format     string
	noColor    bool
	verbose    bool

	Config   *config.Config
	Logger   *slog.Logger
	Renderer *render.Renderer
}

// NewRootCommand creates the dsa command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:   "dsa",
		Short: "Data structures and algorithms, built and inspected from the command line",
		Long: `dsa builds the data structures of the collection from the given values
and prints what they look like: sizes, heights, traversals and query results.

Settings come from dsa.yaml (or --config) and DSA_ environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configPath, "config", "", "config file (default ./dsa.yaml)")
	flags.StringVarP(&app.format, "format", "f", "", "output format: table, yaml or json")
	flags.BoolVar(&app.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		NewTreeCommand(app),
		NewBTreeCommand(app),
		NewHeapCommand(app),
		NewBloomCommand(app),
		NewSkipListCommand(app),
		NewSortCommand(app),
		NewGraphCommand(app),
		NewTrieCommand(app),
		NewSuffixCommand(app),
		NewRangeCommand(app),
		NewCountCommand(app),
		NewDPCommand(app),
	)

	return rootCmd
}

func (app *App) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(app.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = app.format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if app.noColor {
		cfg.Output.Color = false
	}

	if app.verbose {
		cfg.Log.Level = "debug"
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	app.Config = cfg
	app.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	app.Renderer = &render.Renderer{W: cmd.OutOrStdout(), Format: cfg.Output.Format, Color: cfg.Output.Color}
	app.Logger.Debug("configured", "command", cmd.Name(), "format", cfg.Output.Format, "seed", cfg.Random.Seed)

	return nil
}

// ints parses args, or draws n random values in [0, 10n) from the configured
// seed when n > 0.
func (app *App) ints(args []string, n int) ([]int, error) {
	if n > 0 {
		rg := rand.New(rand.NewSource(app.Config.Random.Seed))
		r := make([]int, n)
		for i := range r {
			r[i] = rg.Intn(10 * n)
		}
		app.Logger.Debug("random input", "n", n, "seed", app.Config.Random.Seed)
		return r, nil
	}
	if len(args) == 0 {
		return nil, ErrNoInput
	}
	return parseInts(args)
}

// parseInts parses every arg, splitting comma separated lists.
func parseInts(args []string) ([]int, error) {
	var r []int
	for _, a := range args {
		for _, f := range strings.Split(a, ",") {
			if f = strings.TrimSpace(f); f == "" {
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadValue, f)
			}
			r = append(r, v)
		}
	}
	return r, nil
}

func joinInts(s []int) string {
	b := make([]string, len(s))
	for i, v := range s {
		b[i] = strconv.Itoa(v)
	}
	return strings.Join(b, " ")
}
