package network

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCXRoundTrip(t *testing.T) {
	net := NewNetwork("Test Network")
	a := net.CreateNode("AKT1")
	b := net.CreateNode("MTOR")
	net.SetNodeAttribute(a, "member", []string{"hgnc.symbol:AKT2"}, TypeListOfString)
	edgeID := net.CreateEdge(a, b, "interacts with")
	net.SetEdgeAttribute(edgeID, "__directed", true, TypeBoolean)
	net.SetEdgeAttribute(edgeID, "__relationship_score", 1.5, TypeDouble)
	net.SetEdgeAttribute(edgeID, "__edge_source", "INDRA", TypeString)
	net.SetNetworkAttribute("description", "a description", TypeString)

	data, err := net.ToCX()
	require.NoError(t, err)

	decoded, err := FromCX(data)
	require.NoError(t, err)

	assert.Equal(t, "Test Network", decoded.Name())
	assert.Equal(t, net.ID(), decoded.ID())
	require.Equal(t, 2, decoded.NodeCount())
	require.Equal(t, 1, decoded.EdgeCount())

	node, ok := decoded.Node(a)
	require.True(t, ok)
	assert.Equal(t, "AKT1", node.Name)

	attr, ok := decoded.NodeAttribute(a, "member")
	require.True(t, ok)
	assert.Equal(t, []string{"hgnc.symbol:AKT2"}, attr.Value)

	edge, ok := decoded.Edge(edgeID)
	require.True(t, ok)
	assert.Equal(t, "interacts with", edge.Interaction)

	directed, ok := decoded.EdgeAttribute(edgeID, "__directed")
	require.True(t, ok)
	assert.Equal(t, true, directed.Value)
	assert.Equal(t, TypeBoolean, directed.DataType)

	score, ok := decoded.EdgeAttribute(edgeID, "__relationship_score")
	require.True(t, ok)
	assert.Equal(t, 1.5, score.Value)

	source, ok := decoded.EdgeAttribute(edgeID, "__edge_source")
	require.True(t, ok)
	assert.Equal(t, "INDRA", source.Value)

	desc, ok := decoded.NetworkAttribute("description")
	require.True(t, ok)
	assert.Equal(t, "a description", desc.Value)
}

func TestFromCXContinuesIDCounters(t *testing.T) {
	net := NewNetwork("counters")
	net.CreateNode("A")
	net.CreateNode("B")
	net.CreateEdge(0, 1, "binds")

	data, err := net.ToCX()
	require.NoError(t, err)
	decoded, err := FromCX(data)
	require.NoError(t, err)

	assert.Equal(t, int64(2), decoded.CreateNode("C"))
	assert.Equal(t, int64(1), decoded.CreateEdge(0, 2, "binds"))
}

func TestFromCXBooleanString(t *testing.T) {
	// some CX producers encode booleans as strings
	data := []byte(`[
		{"nodes": [{"@id": 0, "n": "A"}, {"@id": 1, "n": "B"}]},
		{"edges": [{"@id": 0, "s": 0, "t": 1, "i": "binds"}]},
		{"edgeAttributes": [{"po": 0, "n": "__directed", "v": "true", "d": "boolean"}]}
	]`)
	net, err := FromCX(data)
	require.NoError(t, err)

	attr, ok := net.EdgeAttribute(0, "__directed")
	require.True(t, ok)
	assert.Equal(t, true, attr.Value)
}

func TestFromCXReadsUUID(t *testing.T) {
	data := []byte(`[
		{"networkAttributes": [
			{"n": "name", "v": "Exported"},
			{"n": "ndex:uuid", "v": "f1dd6cc3-0007-11ec-b666-0ac135e8bacf"}
		]},
		{"nodes": [{"@id": 0, "n": "A"}]}
	]`)
	net, err := FromCX(data)
	require.NoError(t, err)

	assert.Equal(t, "f1dd6cc3-0007-11ec-b666-0ac135e8bacf", net.ID())
	// the identifier is carried on the struct, not as a plain attribute
	_, ok := net.NetworkAttribute("ndex:uuid")
	assert.False(t, ok)
}

func TestFromCXInvalidDocument(t *testing.T) {
	_, err := FromCX([]byte(`{"not": "a cx list"}`))
	require.Error(t, err)
}

func TestReadWriteFile(t *testing.T) {
	net := NewNetwork("on disk")
	net.CreateNode("A")

	path := filepath.Join(t.TempDir(), "net.cx")
	require.NoError(t, net.WriteFile(path))

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "on disk", loaded.Name())
	assert.Equal(t, 1, loaded.NodeCount())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.cx"))
	require.Error(t, err)
}
