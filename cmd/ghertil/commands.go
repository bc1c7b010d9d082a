package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ghertil/bfs"
	"github.com/katalvlaran/ghertil/builder"
	"github.com/katalvlaran/ghertil/core"
	"github.com/katalvlaran/ghertil/dijkstra"
)

type generateCmd struct {
	Seed          int64 `help:"RNG seed; 0 uses seed from the configuration, or the clock"`
	Nodes         int   `help:"Number of nodes (0 keeps the configured value)"`
	MinEdges      int   `help:"Minimum edges initiated per node (0 keeps the configured value)"`
	MaxEdges      int   `help:"Maximum edges initiated per node (0 keeps the configured value)"`
	NonInitiators int   `help:"Trailing nodes that never initiate edges (-1 keeps the configured value)" default:"-1"`
	Save          bool  `help:"Store the generated graph as a snapshot"`
}

// generated is the YAML document printed by generate.
type generated struct {
	Snapshot   string                                `yaml:"snapshot"`
	Seed       int64                                 `yaml:"seed"`
	Config     builder.Config                        `yaml:"config"`
	Stats      core.GraphStats                       `yaml:"stats"`
	Components [][]core.NodeID                       `yaml:"components,flow"`
	Adjacency  map[core.NodeID]map[core.NodeID]int64 `yaml:"adjacency"`
}

func (c *generateCmd) Run(e *env) error {
	gc := e.cfg.Generator
	if c.Nodes > 0 {
		gc.Nodes = c.Nodes
	}
	if c.MinEdges > 0 {
		gc.MinEdges = c.MinEdges
	}
	if c.MaxEdges > 0 {
		gc.MaxEdges = c.MaxEdges
	}
	if c.NonInitiators >= 0 {
		gc.NonInitiators = c.NonInitiators
	}

	sess, err := e.session()
	if err != nil {
		return err
	}
	snap, err := sess.Regenerate(e.ctx, gc, pickSeed(c.Seed, e.cfg.Seed))
	if err != nil {
		return err
	}

	if c.Save {
		db, err := e.openStore()
		if err != nil {
			return err
		}
		defer db.Close()
		if _, err := db.Save(e.ctx, *snap); err != nil {
			return err
		}
		e.log.Info("snapshot saved", slog.String("snapshot", snap.ID.String()))
	}

	comps, err := bfs.Components(e.ctx, snap.Graph)
	if err != nil {
		return err
	}

	return writeYAML(e, generated{
		Snapshot:   snap.ID.String(),
		Seed:       snap.Seed,
		Config:     snap.Config,
		Stats:      snap.Graph.Stats(),
		Components: comps,
		Adjacency:  snap.Graph.Adjacency(),
	})
}

type pathCmd struct {
	Start     int           `arg:"" help:"Start node"`
	Target    int           `arg:"" help:"Target node"`
	Snapshot  string        `help:"Query a stored snapshot instead of generating a graph" placeholder:"ID"`
	Seed      int64         `help:"RNG seed for the generated graph; 0 uses the configuration, or the clock"`
	StepDelay time.Duration `help:"Pause between printed hops" default:"0s"`
}

func (c *pathCmd) Run(e *env) error {
	sess, err := e.session()
	if err != nil {
		return err
	}

	if c.Snapshot != "" {
		id, err := uuid.Parse(c.Snapshot)
		if err != nil {
			return fmt.Errorf("snapshot id %q: %w", c.Snapshot, err)
		}
		db, err := e.openStore()
		if err != nil {
			return err
		}
		snap, err := db.Load(e.ctx, id)
		db.Close()
		if err != nil {
			return err
		}
		if err := sess.Adopt(snap); err != nil {
			return err
		}
	} else if _, err := sess.Regenerate(e.ctx, e.cfg.Generator, pickSeed(c.Seed, e.cfg.Seed)); err != nil {
		return err
	}

	start, target := core.NodeID(c.Start), core.NodeID(c.Target)
	ans, err := sess.FindPath(e.ctx, start, target)
	if err != nil {
		return err
	}
	g := sess.Current().Graph
	if errors.Is(ans.Err(), dijkstra.ErrNoPath) {
		fmt.Fprintf(e.out, "no path from %d to %d\n", start, target)
		if reach, err := bfs.BFS(e.ctx, g, start); err == nil {
			e.log.Info("start component", slog.Int("start", int(start)), slog.Int("size", len(reach.Order)))
		}
		return nil
	}

	for i := 1; i < len(ans.Path); i++ {
		if i > 1 {
			if err := sleep(e.ctx, c.StepDelay); err != nil {
				return err
			}
		}
		u, v := ans.Path[i-1], ans.Path[i]
		w, _ := g.Cost(u, v)
		fmt.Fprintf(e.out, "%d -> %d (cost %d)\n", u, v, w)
	}
	fmt.Fprintf(e.out, "total cost: %d\n", ans.Cost)

	return nil
}

type snapshotsCmd struct{}

func (c *snapshotsCmd) Run(e *env) error {
	db, err := e.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := db.List(e.ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(e.out, "no snapshots")
		return nil
	}

	return writeYAML(e, list)
}

type deleteCmd struct {
	ID string `arg:"" help:"Snapshot ID"`
}

func (c *deleteCmd) Run(e *env) error {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return fmt.Errorf("snapshot id %q: %w", c.ID, err)
	}
	db, err := e.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Delete(e.ctx, id); err != nil {
		return err
	}
	e.log.Info("snapshot deleted", slog.String("snapshot", id.String()))

	return nil
}

func pickSeed(flag, configured int64) int64 {
	if flag != 0 {
		return flag
	}

	return configured
}

func writeYAML(e *env, v any) error {
	enc := yaml.NewEncoder(e.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
