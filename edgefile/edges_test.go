package edgefile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraphfsm/edgefile"
	"github.com/katalvlaran/subgraphfsm/graph"
)

func TestReadEdges_ParsesAndCanonicalizes(t *testing.T) {
	input := "2 1 1 1 5\n\n3 2 1 1 7\n"
	edges, err := edgefile.ReadEdges(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, edges, 2, "the blank line must be skipped")

	assert.Equal(t, 1, edges[0].U.ID, "NewEdge must canonicalize U.ID < V.ID")
	assert.Equal(t, 2, edges[0].V.ID)
	assert.Equal(t, 5, edges[0].Label)
}

func TestReadEdges_RejectsMalformedLine(t *testing.T) {
	_, err := edgefile.ReadEdges(strings.NewReader("1 1 2\n"))
	assert.Error(t, err)
}

func TestReadEdges_RejectsNonInteger(t *testing.T) {
	_, err := edgefile.ReadEdges(strings.NewReader("1 1 2 1 x\n"))
	assert.Error(t, err)
}

func TestWriteEdges_RoundTrip(t *testing.T) {
	edges := []graph.Edge{
		graph.NewEdge(graph.Node{ID: 1, Label: 1}, graph.Node{ID: 2, Label: 2}, 3),
		graph.NewEdge(graph.Node{ID: 4, Label: 1}, graph.Node{ID: 1, Label: 1}, 9),
	}

	var buf bytes.Buffer
	require.NoError(t, edgefile.WriteEdges(&buf, edges))

	roundTripped, err := edgefile.ReadEdges(&buf)
	require.NoError(t, err)
	assert.Equal(t, edges, roundTripped)
}
