package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mazegen/internal/config"
	"github.com/vovakirdan/mazegen/internal/maze"
)

func testOutput(t *testing.T) mazeOutput {
	t.Helper()
	g, err := maze.Generate(4, 3, maze.WithSeed(17))
	require.NoError(t, err)
	return mazeOutput{ID: "abc", Seed: 17, Start: maze.C(0, 0), Grid: g}
}

func TestWriteMazeText(t *testing.T) {
	out := testOutput(t)

	var buf bytes.Buffer
	require.NoError(t, writeMaze(&buf, out, config.FormatText, false))
	assert.Equal(t, out.Grid.String(), buf.String())

	buf.Reset()
	require.NoError(t, writeMaze(&buf, out, config.FormatText, true))
	assert.True(t, strings.HasPrefix(buf.String(), out.Grid.String()))
	assert.Contains(t, buf.String(), "seed 17")
	assert.Contains(t, buf.String(), "passages 11")
}

func TestWriteMazeHex(t *testing.T) {
	out := testOutput(t)

	var buf bytes.Buffer
	require.NoError(t, writeMaze(&buf, out, config.FormatHex, false))
	assert.Equal(t, "4x3:"+out.Grid.Encode()+"\n", buf.String())
}

func TestWriteMazeJSON(t *testing.T) {
	out := testOutput(t)

	var buf bytes.Buffer
	require.NoError(t, writeMaze(&buf, out, config.FormatJSON, true))

	var doc mazeDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "abc", doc.ID)
	assert.Equal(t, uint64(17), doc.Seed)
	assert.Equal(t, out.Grid.Snapshot(), doc.Maze)
	require.NotNil(t, doc.Stats)
	assert.Equal(t, 11, doc.Stats.Passages)
}

func TestWriteMazeYAML(t *testing.T) {
	out := testOutput(t)

	var buf bytes.Buffer
	require.NoError(t, writeMaze(&buf, out, config.FormatYAML, false))

	var doc mazeDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, out.Grid.Snapshot(), doc.Maze)
	assert.Nil(t, doc.Stats)
}

func TestWriteMazeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, writeMaze(&buf, testOutput(t), "svg", false))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "3f2a9c1e", shortID("3f2a9c1e-0000-4000-8000-000000000000"))
	assert.Equal(t, "abc", shortID("abc"))
}
