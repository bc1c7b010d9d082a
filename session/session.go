// Package session holds the current graph of a running application and
// answers path queries against it.
//
// The graph is replaced, never edited: Regenerate and Adopt build or receive
// a complete frozen snapshot and then swap a single pointer. A query loads
// the pointer once and works on that snapshot to the end, so a concurrent
// replacement can never expose a half-built graph.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/ghertil/bfs"
	"github.com/katalvlaran/ghertil/builder"
	"github.com/katalvlaran/ghertil/core"
	"github.com/katalvlaran/ghertil/dijkstra"
	"github.com/katalvlaran/ghertil/store"
)

var (
	// ErrNoGraph is returned by FindPath before any graph was installed.
	ErrNoGraph = errors.New("session: no graph installed")
	// ErrNilSnapshot is returned by Adopt for a snapshot without a graph.
	ErrNilSnapshot = errors.New("session: snapshot has no graph")
)

// Answer is a query result tagged with the snapshot that produced it.
type Answer struct {
	dijkstra.Result
	SnapshotID uuid.UUID
	Cached     bool
}

type cacheKey struct {
	snapshot      uuid.UUID
	start, target core.NodeID
}

// Session is safe for concurrent use.
type Session struct {
	current atomic.Pointer[store.Snapshot]

	cache      *lru.Cache[cacheKey, dijkstra.Result]
	cacheSize  int
	timeout    time.Duration
	searchOpts []dijkstra.Option
	registerer prometheus.Registerer
	metrics    *metrics
	log        *slog.Logger
	now        func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRegisterer registers the session metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Session) {
		s.registerer = reg
	}
}

// WithCacheSize bounds the result cache; 0 disables it.
func WithCacheSize(n int) Option {
	return func(s *Session) {
		s.cacheSize = n
	}
}

// WithTimeout caps each FindPath call; 0 means no deadline.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		s.timeout = d
	}
}

// WithSearchOptions passes engine options (e.g. dijkstra.WithMaxDistance)
// to every query.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(s *Session) {
		s.searchOpts = append(s.searchOpts, opts...)
	}
}

// New returns an empty session; install a graph with Regenerate or Adopt.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cacheSize < 0 {
		return nil, fmt.Errorf("session: negative cache size %d", s.cacheSize)
	}
	if s.timeout < 0 {
		return nil, fmt.Errorf("session: negative timeout %s", s.timeout)
	}
	if s.cacheSize > 0 {
		c, err := lru.New[cacheKey, dijkstra.Result](s.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("session: cache: %w", err)
		}
		s.cache = c
	}
	s.metrics = newMetrics(s.registerer)

	return s, nil
}

// Current returns the installed snapshot, or nil. The snapshot and its
// frozen graph must not be modified.
func (s *Session) Current() *store.Snapshot {
	return s.current.Load()
}

// Regenerate builds a new graph from cfg and installs it. A zero seed is
// replaced by a time-based one; the seed used is recorded in the snapshot.
// On error the current graph stays in place.
func (s *Session) Regenerate(ctx context.Context, cfg builder.Config, seed int64) (*store.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = s.now().UnixNano()
	}

	g, err := builder.Generate(cfg, builder.WithSeed(seed))
	if err != nil {
		s.log.Warn("graph generation rejected", slog.Any("error", err), slog.Int("nodes", cfg.Nodes))
		return nil, fmt.Errorf("session: regenerate: %w", err)
	}

	snap := &store.Snapshot{
		ID:      uuid.New(),
		Seed:    seed,
		Created: s.now().UTC(),
		Config:  cfg,
		Graph:   g,
	}
	s.install(snap, "generated")

	return snap, nil
}

// Adopt installs a snapshot obtained elsewhere, typically store.Pebble.Load.
// The graph is frozen if it was not already.
func (s *Session) Adopt(snap store.Snapshot) error {
	if snap.Graph == nil {
		return ErrNilSnapshot
	}
	if err := snap.Graph.Validate(); err != nil {
		return fmt.Errorf("session: adopt %s: %w", snap.ID, err)
	}
	snap.Graph.Freeze()
	if snap.ID == uuid.Nil {
		snap.ID = uuid.New()
	}
	s.install(&snap, "adopted")

	return nil
}

func (s *Session) install(snap *store.Snapshot, how string) {
	prev := s.current.Swap(snap)
	if s.cache != nil {
		s.cache.Purge()
	}

	stats := snap.Graph.Stats()
	s.metrics.generations.Inc()
	s.metrics.nodes.Set(float64(stats.NodeCount))
	s.metrics.edges.Set(float64(stats.EdgeCount))

	attrs := []any{
		slog.String("snapshot", snap.ID.String()),
		slog.Int64("seed", snap.Seed),
		slog.Int("nodes", stats.NodeCount),
		slog.Int("edges", stats.EdgeCount),
		slog.Int("isolated", stats.IsolatedNodes),
	}
	if comps, err := bfs.Components(context.Background(), snap.Graph); err == nil {
		attrs = append(attrs, slog.Int("components", len(comps)))
	}
	if prev != nil {
		attrs = append(attrs, slog.String("replaced", prev.ID.String()))
	}
	s.log.Info("graph "+how, attrs...)
}

// FindPath answers a query on the snapshot current at the time of the call.
// Errors are those of dijkstra.FindPath, plus ErrNoGraph and the deadline
// error when the configured timeout expires.
func (s *Session) FindPath(ctx context.Context, start, target core.NodeID) (Answer, error) {
	snap := s.current.Load()
	if snap == nil {
		s.metrics.queries.WithLabelValues(outcomeError).Inc()
		return Answer{}, ErrNoGraph
	}

	key := cacheKey{snapshot: snap.ID, start: start, target: target}
	if s.cache != nil {
		if res, ok := s.cache.Get(key); ok {
			s.metrics.cacheHits.Inc()
			s.metrics.queries.WithLabelValues(outcome(res)).Inc()
			return Answer{Result: cloneResult(res), SnapshotID: snap.ID, Cached: true}, nil
		}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	began := time.Now()
	res, err := dijkstra.FindPath(ctx, snap.Graph, start, target, s.searchOpts...)
	elapsed := time.Since(began)
	s.metrics.queryDuration.Observe(elapsed.Seconds())
	if err != nil {
		s.metrics.queries.WithLabelValues(outcomeError).Inc()
		s.log.Debug("path query failed",
			slog.String("snapshot", snap.ID.String()),
			slog.Int("start", int(start)),
			slog.Int("target", int(target)),
			slog.Any("error", err))
		return Answer{}, err
	}

	s.metrics.queries.WithLabelValues(outcome(res)).Inc()
	s.log.Debug("path query",
		slog.String("snapshot", snap.ID.String()),
		slog.Int("start", int(start)),
		slog.Int("target", int(target)),
		slog.Bool("found", res.Found),
		slog.Int64("cost", res.Cost),
		slog.Duration("elapsed", elapsed))
	if s.cache != nil {
		s.cache.Add(key, cloneResult(res))
	}

	return Answer{Result: res, SnapshotID: snap.ID}, nil
}

func outcome(r dijkstra.Result) string {
	if r.Found {
		return outcomeFound
	}

	return outcomeNoPath
}

// cloneResult copies the path so callers never share a slice with the cache.
func cloneResult(r dijkstra.Result) dijkstra.Result {
	if r.Path != nil {
		r.Path = append([]core.NodeID(nil), r.Path...)
	}

	return r
}
