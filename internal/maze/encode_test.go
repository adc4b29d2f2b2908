package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	g, err := Generate(11, 7, WithSeed(77))
	require.NoError(t, err)

	encoded := g.Encode()
	assert.Len(t, encoded, 2*g.Size())

	decoded, err := Decode(11, 7, encoded)
	require.NoError(t, err)
	assert.True(t, g.Equal(decoded))
	assert.NoError(t, Validate(decoded))
}

func TestEncodeFreshGrid(t *testing.T) {
	g, err := New(3, 1)
	require.NoError(t, err)

	// All four walls, not visited
	assert.Equal(t, "0f0f0f", g.Encode())
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name    string
		width   int
		depth   int
		encoded string
	}{
		{"not hex", 1, 1, "zz"},
		{"odd length", 1, 1, "1"},
		{"too short", 2, 1, "1f"},
		{"too long", 1, 1, "1f1f"},
		{"unknown bits", 1, 1, "ff"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Decode(tc.width, tc.depth, tc.encoded)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrCorruptEncoding)
		})
	}
}

func TestDecodeInvalidDimension(t *testing.T) {
	_, err := Decode(0, 1, "")
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestSnapshot(t *testing.T) {
	g, err := Generate(2, 1, WithSeed(1))
	require.NoError(t, err)

	snap := g.Snapshot()
	assert.Equal(t, 2, snap.Width)
	assert.Equal(t, 1, snap.Depth)
	require.Len(t, snap.Cells, 2)

	assert.Equal(t, CellSnapshot{X: 0, Z: 0, Visited: true, North: true, South: true, East: false, West: true}, snap.Cells[0])
	assert.Equal(t, CellSnapshot{X: 1, Z: 0, Visited: true, North: true, South: true, East: true, West: false}, snap.Cells[1])
}

func TestString(t *testing.T) {
	g, err := Generate(2, 1, WithSeed(1))
	require.NoError(t, err)

	want := strings.Join([]string{
		"+---+---+",
		"|       |",
		"+---+---+",
		"",
	}, "\n")
	assert.Equal(t, want, g.String())
	assert.Equal(t, 9, g.TextWidth())
}

func TestStringNorthIsUp(t *testing.T) {
	g, err := Generate(1, 2, WithSeed(1))
	require.NoError(t, err)

	want := strings.Join([]string{
		"+---+",
		"|   |",
		"+   +",
		"|   |",
		"+---+",
		"",
	}, "\n")
	assert.Equal(t, want, g.String())
}

func TestStringLineWidths(t *testing.T) {
	g, err := Generate(6, 4, WithSeed(3))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	assert.Len(t, lines, 2*g.Depth()+1)
	for _, line := range lines {
		assert.Len(t, line, g.TextWidth())
	}
}

func TestSummarize(t *testing.T) {
	t.Run("single cell", func(t *testing.T) {
		g, err := Generate(1, 1, WithSeed(1))
		require.NoError(t, err)

		assert.Equal(t, Stats{Cells: 1, Passages: 0, DeadEnds: 0, LongestCorridor: 1}, Summarize(g))
	})

	t.Run("single row", func(t *testing.T) {
		g, err := Generate(5, 1, WithSeed(1))
		require.NoError(t, err)

		assert.Equal(t, Stats{Cells: 5, Passages: 4, DeadEnds: 2, LongestCorridor: 5}, Summarize(g))
	})

	t.Run("generated", func(t *testing.T) {
		g, err := Generate(12, 12, WithSeed(9))
		require.NoError(t, err)

		s := Summarize(g)
		assert.Equal(t, 144, s.Cells)
		assert.Equal(t, 143, s.Passages)
		assert.GreaterOrEqual(t, s.DeadEnds, 2)
		assert.GreaterOrEqual(t, s.LongestCorridor, 2)
		assert.LessOrEqual(t, s.LongestCorridor, 12)
	})
}
