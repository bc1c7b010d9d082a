// Command ghertil generates random weighted graphs and finds cheapest paths
// on them.
//
//	ghertil generate --seed 42 --save
//	ghertil path 0 9 --seed 42 --step-delay 300ms
//	ghertil path 0 9 --snapshot 0b6f...
//	ghertil snapshots
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/ghertil/config"
	"github.com/katalvlaran/ghertil/dijkstra"
	"github.com/katalvlaran/ghertil/session"
	"github.com/katalvlaran/ghertil/store"
)

type cli struct {
	Config    string `help:"YAML configuration file" type:"path" placeholder:"FILE" env:"GHERTIL_CONFIG"`
	LogLevel  string `help:"Log level (debug, info, warn, error); overrides log.level"`
	LogFormat string `help:"Log format (text, json); overrides log.format"`
	Store     string `help:"Snapshot database directory; overrides store.path" type:"path" env:"GHERTIL_STORE"`

	Generate  generateCmd  `cmd:"" help:"Generate a random graph and print its adjacency as YAML"`
	Path      pathCmd      `cmd:"" help:"Find the cheapest path between two nodes"`
	Snapshots snapshotsCmd `cmd:"" help:"List stored snapshots"`
	Delete    deleteCmd    `cmd:"" help:"Delete a stored snapshot"`
}

// env is what every command runs with.
type env struct {
	ctx context.Context
	cfg config.Config
	log *slog.Logger
	out io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "ghertil:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var params cli
	parser, err := kong.New(&params,
		kong.Name("ghertil"),
		kong.Description("Shortest paths over generated weighted graphs."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	e, err := params.env(ctx, stdout, stderr)
	if err != nil {
		return err
	}

	return kctx.Run(e)
}

// env resolves the configuration: defaults, then the file, then flags.
func (c *cli) env(ctx context.Context, stdout, stderr io.Writer) (*env, error) {
	cfg := config.Default()
	if c.Config != "" {
		var err error
		if cfg, err = config.Load(c.Config); err != nil {
			return nil, err
		}
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		cfg.Log.Format = c.LogFormat
	}
	if c.Store != "" {
		cfg.Store.Path = c.Store
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := cfg.Log.NewLogger(stderr)
	if err != nil {
		return nil, err
	}

	return &env{ctx: ctx, cfg: cfg, log: logger, out: stdout}, nil
}

func (e *env) openStore() (*store.Pebble, error) {
	if e.cfg.Store.Path == "" {
		return nil, errors.New("no snapshot store configured (use --store or store.path)")
	}
	db, err := store.Open(e.cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	e.log.Debug("store opened", slog.String("path", e.cfg.Store.Path))

	return db, nil
}

// session builds a query session from the configuration.
func (e *env) session() (*session.Session, error) {
	opts := []session.Option{
		session.WithLogger(e.log),
		session.WithCacheSize(e.cfg.Cache.Size),
		session.WithTimeout(e.cfg.Search.Timeout),
	}
	if e.cfg.Search.MaxDistance > 0 {
		opts = append(opts, session.WithSearchOptions(dijkstra.WithMaxDistance(e.cfg.Search.MaxDistance)))
	}

	return session.New(opts...)
}
