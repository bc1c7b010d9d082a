// Package store persists generated graphs as snapshots in a pebble database.
//
// Key layout:
//
//	snapshot:<uuid>  →  JSON record {id, seed, created, config, allow_loops, nodes, edges}
//
// A loaded snapshot is rebuilt into a frozen core.Graph and checked with
// core.Graph.Validate, so a corrupted record never reaches the engine.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/google/uuid"

	"github.com/katalvlaran/ghertil/builder"
	"github.com/katalvlaran/ghertil/core"
)

const snapshotPrefix = "snapshot:"

var (
	// ErrSnapshotNotFound is returned for an unknown snapshot ID.
	ErrSnapshotNotFound = errors.New("store: snapshot not found")
	// ErrCorruptSnapshot is returned when a stored record cannot be turned
	// back into a valid graph.
	ErrCorruptSnapshot = errors.New("store: corrupt snapshot")
	// ErrNilGraph is returned by Save for a snapshot without a graph.
	ErrNilGraph = errors.New("store: snapshot has no graph")
)

// Snapshot is one generated graph together with what produced it.
type Snapshot struct {
	ID      uuid.UUID
	Seed    int64
	Created time.Time
	Config  builder.Config
	Graph   *core.Graph
}

// Summary describes a stored snapshot without materializing its graph.
type Summary struct {
	ID      uuid.UUID      `json:"id" yaml:"id"`
	Seed    int64          `json:"seed" yaml:"seed"`
	Created time.Time      `json:"created" yaml:"created"`
	Config  builder.Config `json:"config" yaml:"config"`
	Nodes   int            `json:"nodes" yaml:"nodes"`
	Edges   int            `json:"edges" yaml:"edges"`
}

// record is the on-disk form of a Snapshot.
type record struct {
	ID         uuid.UUID      `json:"id"`
	Seed       int64          `json:"seed"`
	Created    time.Time      `json:"created"`
	Config     builder.Config `json:"config"`
	AllowLoops bool           `json:"allow_loops,omitempty"`
	Nodes      []core.NodeID  `json:"nodes"`
	Edges      []core.Edge    `json:"edges"`
}

// Pebble is a snapshot store backed by a pebble database.
// It is safe for concurrent use.
type Pebble struct {
	db *pebble.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*Pebble, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	return &Pebble{db: db}, nil
}

// OpenInMemory opens a database that lives only in memory.
func OpenInMemory() (*Pebble, error) {
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	if err != nil {
		return nil, fmt.Errorf("store: open in-memory: %w", err)
	}

	return &Pebble{db: db}, nil
}

// Close releases the database.
func (p *Pebble) Close() error {
	return p.db.Close()
}

// Save writes snap, replacing any snapshot with the same ID. A zero ID is
// replaced by a fresh UUID; the ID actually used is returned.
func (p *Pebble) Save(ctx context.Context, snap Snapshot) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	if snap.Graph == nil {
		return uuid.Nil, ErrNilGraph
	}
	if snap.ID == uuid.Nil {
		snap.ID = uuid.New()
	}
	if snap.Created.IsZero() {
		snap.Created = time.Now().UTC()
	}

	data, err := json.Marshal(record{
		ID:         snap.ID,
		Seed:       snap.Seed,
		Created:    snap.Created,
		Config:     snap.Config,
		AllowLoops: snap.Graph.Stats().AllowsLoops,
		Nodes:      snap.Graph.Nodes(),
		Edges:      snap.Graph.Edges(),
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: encode %s: %w", snap.ID, err)
	}
	if err := p.db.Set(key(snap.ID), data, pebble.Sync); err != nil {
		return uuid.Nil, fmt.Errorf("store: save %s: %w", snap.ID, err)
	}

	return snap.ID, nil
}

// Load returns the snapshot id with a frozen, validated graph.
func (p *Pebble) Load(ctx context.Context, id uuid.UUID) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	data, closer, err := p.db.Get(key(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("store: load %s: %w", id, err)
	}
	defer closer.Close()

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s: %w", ErrCorruptSnapshot, id, err)
	}
	g, err := rec.graph()
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s: %w", ErrCorruptSnapshot, id, err)
	}

	return Snapshot{ID: rec.ID, Seed: rec.Seed, Created: rec.Created, Config: rec.Config, Graph: g}, nil
}

// List returns summaries of all stored snapshots, oldest first.
func (p *Pebble) List(ctx context.Context) ([]Summary, error) {
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(snapshotPrefix),
		UpperBound: prefixEnd(snapshotPrefix),
	})
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer iter.Close()

	var out []Summary
	for iter.First(); iter.Valid(); iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var rec record
		if err := json.Unmarshal(iter.Value(), &rec); err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrCorruptSnapshot, iter.Key(), err)
		}
		out = append(out, Summary{
			ID:      rec.ID,
			Seed:    rec.Seed,
			Created: rec.Created,
			Config:  rec.Config,
			Nodes:   len(rec.Nodes),
			Edges:   len(rec.Edges),
		})
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })

	return out, nil
}

// Delete removes snapshot id. Deleting an unknown ID reports ErrSnapshotNotFound.
func (p *Pebble) Delete(ctx context.Context, id uuid.UUID) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	k := key(id)
	b := p.db.NewIndexedBatch()
	defer func() {
		if cerr := b.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("store: delete %s: %w", id, cerr)
		}
	}()

	_, closer, err := b.Get(k)
	if errors.Is(err, pebble.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	if err := closer.Close(); err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}

	if err := b.Delete(k, nil); err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}

	return nil
}

// graph rebuilds the frozen graph of a record.
func (r record) graph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithCapacity(len(r.Nodes))}
	if r.AllowLoops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)
	for _, id := range r.Nodes {
		if err := g.AddNode(id); err != nil {
			return nil, err
		}
	}
	for _, e := range r.Edges {
		if !g.HasNode(e.From) || !g.HasNode(e.To) {
			return nil, fmt.Errorf("edge %d—%d: %w", e.From, e.To, core.ErrNodeNotFound)
		}
		if err := g.SetEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}
	if g.EdgeCount() != len(r.Edges) {
		return nil, fmt.Errorf("duplicate edges: %d stored, %d distinct", len(r.Edges), g.EdgeCount())
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	g.Freeze()

	return g, nil
}

func key(id uuid.UUID) []byte {
	return []byte(snapshotPrefix + id.String())
}

// prefixEnd returns the smallest key greater than every key with prefix.
func prefixEnd(prefix string) []byte {
	end := []byte(prefix)
	end[len(end)-1]++

	return end
}
