package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazegen/internal/maze"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func generatedRecord(t *testing.T, w, d int, seed uint64) MazeRecord {
	t.Helper()
	g, err := maze.Generate(w, d, maze.WithSeed(seed))
	require.NoError(t, err)
	return NewRecord(g, seed, maze.C(0, 0))
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	// Check that the file was created
	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created in nested directory")
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rec := generatedRecord(t, 8, 5, 1234)
	saved, err := store.SaveMaze(rec)
	require.NoError(t, err)

	assert.NotZero(t, saved.ID)
	_, err = uuid.Parse(saved.MazeID)
	assert.NoError(t, err, "generated maze id should be a uuid")

	got, err := store.MazeByID(saved.MazeID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, saved.MazeID, got.MazeID)
	assert.Equal(t, 8, got.Width)
	assert.Equal(t, 5, got.Depth)
	assert.Equal(t, uint64(1234), got.Seed)
	assert.Equal(t, rec.Walls, got.Walls)
	assert.Equal(t, 39, got.Passages)
	assert.Equal(t, rec.DeadEnds, got.DeadEnds)
	assert.False(t, got.CreatedAt.IsZero())

	// Stored walls decode into a perfect maze
	g, err := got.Grid()
	require.NoError(t, err)
	assert.NoError(t, maze.Validate(g))

	want, err := maze.Generate(8, 5, maze.WithSeed(1234))
	require.NoError(t, err)
	assert.True(t, want.Equal(g))
}

func TestStoreLargeSeed(t *testing.T) {
	store := openTestStore(t)

	rec := generatedRecord(t, 2, 2, math.MaxUint64)
	saved, err := store.SaveMaze(rec)
	require.NoError(t, err)

	got, err := store.MazeByID(saved.MazeID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint64(math.MaxUint64), got.Seed)
}

func TestStoreMazeByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.MazeByID("does-not-exist")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreDuplicateID(t *testing.T) {
	store := openTestStore(t)

	rec := generatedRecord(t, 3, 3, 1)
	rec.MazeID = "fixed"
	_, err := store.SaveMaze(rec)
	require.NoError(t, err)

	_, err = store.SaveMaze(rec)
	assert.Error(t, err)
}

func TestStoreFindMaze(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"abc111", "abc222", "def333"} {
		rec := generatedRecord(t, 3, 3, 1)
		rec.MazeID = id
		_, err := store.SaveMaze(rec)
		require.NoError(t, err)
	}

	got, err := store.FindMaze("def")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "def333", got.MazeID)

	got, err = store.FindMaze("abc2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "abc222", got.MazeID)

	_, err = store.FindMaze("abc")
	assert.ErrorIs(t, err, ErrAmbiguousID)

	got, err = store.FindMaze("zzz")
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.FindMaze("")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreRecentMazes(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := 0; i < 5; i++ {
		saved, err := store.SaveMaze(generatedRecord(t, 4, 4, uint64(i)))
		require.NoError(t, err)
		ids = append(ids, saved.MazeID)
	}

	recent, err := store.RecentMazes(3)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	// Newest first
	assert.Equal(t, ids[4], recent[0].MazeID)
	assert.Equal(t, ids[3], recent[1].MazeID)
	assert.Equal(t, ids[2], recent[2].MazeID)

	all, err := store.RecentMazes(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestStoreDeleteMaze(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveMaze(generatedRecord(t, 3, 2, 5))
	require.NoError(t, err)

	deleted, err := store.DeleteMaze(saved.MazeID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := store.MazeByID(saved.MazeID)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = store.DeleteMaze(saved.MazeID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStoreHistoryStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetHistoryStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.MazeCount)
	assert.True(t, stats.LastGenerated.IsZero())

	for _, size := range []struct{ w, d int }{{2, 2}, {5, 4}, {3, 3}} {
		_, err := store.SaveMaze(generatedRecord(t, size.w, size.d, 1))
		require.NoError(t, err)
	}

	stats, err = store.GetHistoryStats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.MazeCount)
	assert.Equal(t, int64(4+20+9), stats.TotalCells)
	assert.Equal(t, 20, stats.LargestCells)
	assert.False(t, stats.LastGenerated.IsZero())
}

func TestRecordGridCorrupt(t *testing.T) {
	rec := MazeRecord{MazeID: "x", Width: 2, Depth: 2, Walls: "1f"}
	_, err := rec.Grid()
	assert.ErrorIs(t, err, maze.ErrCorruptEncoding)
}
