package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/ghertil/builder"
	"github.com/katalvlaran/ghertil/core"
	"github.com/katalvlaran/ghertil/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMem(t *testing.T) *store.Pebble {
	t.Helper()
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func generated(t *testing.T, seed int64) store.Snapshot {
	t.Helper()
	cfg := builder.DefaultConfig()
	g, err := builder.Generate(cfg, builder.WithSeed(seed))
	require.NoError(t, err)

	return store.Snapshot{Seed: seed, Config: cfg, Graph: g}
}

func TestPebble_RoundTrip(t *testing.T) {
	db := openMem(t)
	ctx := context.Background()
	snap := generated(t, 17)

	id, err := db.Save(ctx, snap)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	got, err := db.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, int64(17), got.Seed)
	assert.Equal(t, snap.Config, got.Config)
	assert.False(t, got.Created.IsZero())
	assert.True(t, got.Graph.Frozen())
	assert.Equal(t, snap.Graph.Adjacency(), got.Graph.Adjacency())
}

func TestPebble_KeepsGivenIDAndOverwrites(t *testing.T) {
	db := openMem(t)
	ctx := context.Background()

	snap := generated(t, 1)
	snap.ID = uuid.New()
	id, err := db.Save(ctx, snap)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, id)

	replacement := generated(t, 2)
	replacement.ID = snap.ID
	_, err = db.Save(ctx, replacement)
	require.NoError(t, err)

	got, err := db.Load(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Seed)

	list, err := db.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPebble_IsolatedNodesSurvive(t *testing.T) {
	db := openMem(t)
	ctx := context.Background()

	g := core.NewGraph()
	require.NoError(t, g.SetEdge(0, 1, 3))
	require.NoError(t, g.AddNode(7))

	id, err := db.Save(ctx, store.Snapshot{Graph: g})
	require.NoError(t, err)
	got, err := db.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 7}, got.Graph.Nodes())
}

func TestPebble_SelfLoopsRoundTrip(t *testing.T) {
	db := openMem(t)
	ctx := context.Background()

	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.SetEdge(0, 0, 2))
	require.NoError(t, g.SetEdge(0, 1, 5))

	id, err := db.Save(ctx, store.Snapshot{Graph: g})
	require.NoError(t, err)
	got, err := db.Load(ctx, id)
	require.NoError(t, err)

	assert.True(t, got.Graph.Stats().AllowsLoops)
	assert.Equal(t, g.Adjacency(), got.Graph.Adjacency())
	w, ok := got.Graph.Cost(0, 0)
	require.True(t, ok)
	assert.Equal(t, int64(2), w)

	// Graphs without loops still load without the loop setting.
	plain, err := db.Save(ctx, generated(t, 3))
	require.NoError(t, err)
	again, err := db.Load(ctx, plain)
	require.NoError(t, err)
	assert.False(t, again.Graph.Stats().AllowsLoops)
}

func TestPebble_ListAndDelete(t *testing.T) {
	db := openMem(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		snap := generated(t, int64(i))
		snap.Created = base.Add(time.Duration(2-i) * time.Hour) // newest saved first
		id, err := db.Save(ctx, snap)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := db.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []uuid.UUID{ids[2], ids[1], ids[0]}, []uuid.UUID{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, 10, list[0].Nodes)
	assert.Positive(t, list[0].Edges)

	require.NoError(t, db.Delete(ctx, ids[1]))
	_, err = db.Load(ctx, ids[1])
	assert.ErrorIs(t, err, store.ErrSnapshotNotFound)
	assert.ErrorIs(t, db.Delete(ctx, ids[1]), store.ErrSnapshotNotFound)

	list, err = db.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestPebble_Errors(t *testing.T) {
	db := openMem(t)

	_, err := db.Save(context.Background(), store.Snapshot{})
	assert.ErrorIs(t, err, store.ErrNilGraph)

	_, err = db.Load(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrSnapshotNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = db.Save(ctx, generated(t, 1))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = db.Load(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen_OnDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	ctx := context.Background()

	db, err := store.Open(dir)
	require.NoError(t, err)
	id, err := db.Save(ctx, generated(t, 5))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = store.Open(dir)
	require.NoError(t, err)
	defer db.Close()
	got, err := db.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Seed)
}
