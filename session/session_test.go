package session

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghertil/builder"
	"github.com/katalvlaran/ghertil/core"
	"github.com/katalvlaran/ghertil/dijkstra"
	"github.com/katalvlaran/ghertil/store"
)

func diamondSnapshot(t *testing.T) store.Snapshot {
	t.Helper()
	g, err := core.FromAdjacency(map[core.NodeID]map[core.NodeID]int64{
		0: {1: 1, 2: 4},
		1: {0: 1, 2: 2, 3: 5},
		2: {0: 4, 1: 2, 3: 1},
		3: {1: 5, 2: 1},
	})
	require.NoError(t, err)

	return store.Snapshot{ID: uuid.New(), Graph: g}
}

func TestSession_NoGraph(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	assert.Nil(t, s.Current())

	_, err = s.FindPath(context.Background(), 0, 1)
	assert.ErrorIs(t, err, ErrNoGraph)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.queries.WithLabelValues(outcomeError)))
}

func TestSession_NewRejectsNegatives(t *testing.T) {
	_, err := New(WithCacheSize(-1))
	assert.Error(t, err)
	_, err = New(WithTimeout(-time.Second))
	assert.Error(t, err)
}

func TestSession_AdoptAndQuery(t *testing.T) {
	s, err := New(WithCacheSize(8))
	require.NoError(t, err)

	snap := diamondSnapshot(t)
	require.NoError(t, s.Adopt(snap))
	assert.True(t, s.Current().Graph.Frozen())
	assert.Equal(t, snap.ID, s.Current().ID)

	ans, err := s.FindPath(context.Background(), 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, ans.Path)
	assert.Equal(t, int64(4), ans.Cost)
	assert.Equal(t, snap.ID, ans.SnapshotID)
	assert.False(t, ans.Cached)

	// Mutating the answer must not leak into the cache.
	ans.Path[0] = 99
	again, err := s.FindPath(context.Background(), 0, 3)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, again.Path)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.cacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.queries.WithLabelValues(outcomeFound)))
	assert.Equal(t, 4.0, testutil.ToFloat64(s.metrics.nodes))
	assert.Equal(t, 5.0, testutil.ToFloat64(s.metrics.edges))
}

func TestSession_AdoptRejectsNilGraph(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	assert.ErrorIs(t, s.Adopt(store.Snapshot{}), ErrNilSnapshot)
}

func TestSession_NoPathAndErrors(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	g := core.NewGraph()
	require.NoError(t, g.SetEdge(0, 1, 1))
	require.NoError(t, g.AddNode(2))
	require.NoError(t, s.Adopt(store.Snapshot{Graph: g}))
	assert.NotEqual(t, uuid.Nil, s.Current().ID)

	ans, err := s.FindPath(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.False(t, ans.Found)
	assert.ErrorIs(t, ans.Err(), dijkstra.ErrNoPath)

	_, err = s.FindPath(context.Background(), 0, 9)
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.queries.WithLabelValues(outcomeNoPath)))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.queries.WithLabelValues(outcomeError)))
}

func TestSession_RegenerateDeterministic(t *testing.T) {
	var logs bytes.Buffer
	reg := prometheus.NewRegistry()
	s, err := New(
		WithRegisterer(reg),
		WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))),
	)
	require.NoError(t, err)

	cfg := builder.DefaultConfig()
	a, err := s.Regenerate(context.Background(), cfg, 99)
	require.NoError(t, err)
	b, err := s.Regenerate(context.Background(), cfg, 99)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Graph.Adjacency(), b.Graph.Adjacency())
	assert.Same(t, b, s.Current())
	assert.Equal(t, int64(99), b.Seed)

	n, err := testutil.GatherAndCount(reg, "ghertil_session_generations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.generations))
	assert.Contains(t, logs.String(), `"msg":"graph generated"`)
	assert.Contains(t, logs.String(), a.ID.String())
}

func TestSession_RegenerateZeroSeedIsTimeBased(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.now = func() time.Time { return time.Unix(0, 1234) }

	snap, err := s.Regenerate(context.Background(), builder.DefaultConfig(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), snap.Seed)
}

func TestSession_RegenerateInvalidKeepsCurrent(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	good, err := s.Regenerate(context.Background(), builder.DefaultConfig(), 1)
	require.NoError(t, err)

	bad := builder.DefaultConfig()
	bad.MaxEdges = bad.Nodes
	_, err = s.Regenerate(context.Background(), bad, 1)
	assert.ErrorIs(t, err, builder.ErrInvalidConfiguration)
	assert.Same(t, good, s.Current())
}

func TestSession_CacheIsPerSnapshot(t *testing.T) {
	s, err := New(WithCacheSize(16))
	require.NoError(t, err)
	ctx := context.Background()

	first, err := s.Regenerate(ctx, builder.DefaultConfig(), 3)
	require.NoError(t, err)
	_, err = s.FindPath(ctx, 0, 9)
	require.NoError(t, err)

	second, err := s.Regenerate(ctx, builder.DefaultConfig(), 4)
	require.NoError(t, err)
	ans, err := s.FindPath(ctx, 0, 9)
	require.NoError(t, err)
	assert.False(t, ans.Cached)
	assert.Equal(t, second.ID, ans.SnapshotID)
	assert.NotEqual(t, first.ID, ans.SnapshotID)
}

func TestSession_SearchOptionsAndTimeout(t *testing.T) {
	s, err := New(WithSearchOptions(dijkstra.WithMaxDistance(3)), WithTimeout(time.Minute))
	require.NoError(t, err)
	require.NoError(t, s.Adopt(diamondSnapshot(t)))

	ans, err := s.FindPath(context.Background(), 0, 3)
	require.NoError(t, err)
	assert.False(t, ans.Found)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.FindPath(ctx, 0, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

// Queries racing with regenerations always see one complete snapshot.
func TestSession_CopyOnReplace(t *testing.T) {
	s, err := New(WithCacheSize(64))
	require.NoError(t, err)
	ctx := context.Background()
	cfg := builder.Config{Nodes: 30, MinEdges: 1, MaxEdges: 3, NonInitiators: 4}

	var mu sync.Mutex
	graphs := make(map[uuid.UUID]*core.Graph)
	record := func(snap *store.Snapshot) {
		mu.Lock()
		graphs[snap.ID] = snap.Graph
		mu.Unlock()
	}
	snap, err := s.Regenerate(ctx, cfg, 1)
	require.NoError(t, err)
	record(snap)

	var (
		wg      sync.WaitGroup
		ansMu   sync.Mutex
		answers []Answer
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for seed := int64(2); seed < 30; seed++ {
			snap, err := s.Regenerate(ctx, cfg, seed)
			if assert.NoError(t, err) {
				record(snap)
			}
		}
	}()
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				ans, err := s.FindPath(ctx, core.NodeID(w), core.NodeID(29-i%30))
				if assert.NoError(t, err) {
					ansMu.Lock()
					answers = append(answers, ans)
					ansMu.Unlock()
				}
			}
		}(w)
	}
	wg.Wait()

	for _, ans := range answers {
		g, ok := graphs[ans.SnapshotID]
		require.True(t, ok, "answer from unknown snapshot %s", ans.SnapshotID)
		if !ans.Found {
			continue
		}
		var cost int64
		for i := 1; i < len(ans.Path); i++ {
			w, ok := g.Cost(ans.Path[i-1], ans.Path[i])
			require.True(t, ok, "edge %d—%d not in snapshot %s", ans.Path[i-1], ans.Path[i], ans.SnapshotID)
			cost += w
		}
		assert.Equal(t, ans.Cost, cost)
	}
}
