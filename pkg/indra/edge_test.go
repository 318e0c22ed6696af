package indra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndexcontent/indraloader/pkg/common"
	"github.com/ndexcontent/indraloader/pkg/network"
)

func TestPairKey(t *testing.T) {
	key, reversed := pairKey(1, 5)
	assert.Equal(t, "1_5", key)
	assert.False(t, reversed)

	key, reversed = pairKey(5, 1)
	assert.Equal(t, "1_5", key)
	assert.True(t, reversed)

	key, reversed = pairKey(3, 3)
	assert.Equal(t, "3_3", key)
	assert.False(t, reversed)
}

func TestParsePairKey(t *testing.T) {
	src, target, err := parsePairKey("1_5")
	require.NoError(t, err)
	assert.Equal(t, int64(1), src)
	assert.Equal(t, int64(5), target)

	_, _, err = parsePairKey("15")
	require.Error(t, err)
	_, _, err = parsePairKey("a_b")
	require.Error(t, err)
}

func TestAddSingleEdge(t *testing.T) {
	net := network.NewNetwork("edges")
	a := net.CreateNode("AKT1")
	b := net.CreateNode("MTOR")

	annotator := NewAnnotator(NewAnnotatorParams{})
	stmts := []*common.Statement{
		{StmtHash: 1, StmtType: "Activation", EvidenceCount: "5",
			English:    "AKT1 activates MTOR.",
			SourceNode: "AKT1", TargetNode: "MTOR"},
		{StmtHash: 2, StmtType: "Phosphorylation", EvidenceCount: "2",
			English:    "MTOR phosphorylates AKT1.",
			SourceNode: "MTOR", TargetNode: "AKT1", IsReversed: true},
		{StmtHash: 3, StmtType: "Complex", EvidenceCount: "3",
			English:    "AKT1 binds MTOR.",
			SourceNode: "AKT1", TargetNode: "MTOR"},
	}

	edgeID := annotator.addSingleEdge(net, a, b, stmts)

	edge, ok := net.Edge(edgeID)
	require.True(t, ok)
	assert.Equal(t, "interacts with", edge.Interaction)

	source, ok := net.EdgeAttribute(edgeID, SourceAttribute)
	require.True(t, ok)
	assert.Equal(t, "INDRA", source.Value)

	score, ok := net.EdgeAttribute(edgeID, RelationshipScoreAttribute)
	require.True(t, ok)
	assert.InDelta(t, math.Log(10), score.Value, 1e-9)

	directed, ok := net.EdgeAttribute(edgeID, DirectedAttribute)
	require.True(t, ok)
	assert.Equal(t, true, directed.Value)

	reverseDirected, ok := net.EdgeAttribute(edgeID, ReverseDirectedAttribute)
	require.True(t, ok)
	assert.Equal(t, true, reverseDirected.Value)

	relationships, ok := net.EdgeAttribute(edgeID, RelationshipsAttribute)
	require.True(t, ok)
	text := relationships.Value.(string)
	assert.Contains(t, text, "All Evidences (")
	assert.Contains(t, text, "<ul><li/>")
	assert.Contains(t, text, "AKT1 activates MTOR(")
	assert.Contains(t, text, "MTOR phosphorylates AKT1(")
	assert.Contains(t, text, "target=\"INDRA_Evidence\"")
	assert.Contains(t, text, ">10</a>")
}

func TestAddSingleEdgeNonDirectionalOnly(t *testing.T) {
	net := network.NewNetwork("edges")
	a := net.CreateNode("AKT1")
	b := net.CreateNode("MTOR")

	annotator := NewAnnotator(NewAnnotatorParams{})
	stmts := []*common.Statement{
		{StmtHash: 1, StmtType: "Complex", EvidenceCount: "4",
			English:    "AKT1 binds MTOR.",
			SourceNode: "AKT1", TargetNode: "MTOR"},
		{StmtHash: 2, StmtType: "Association", EvidenceCount: "1",
			English:    "MTOR is associated with AKT1.",
			SourceNode: "MTOR", TargetNode: "AKT1", IsReversed: true},
	}

	edgeID := annotator.addSingleEdge(net, a, b, stmts)

	directed, _ := net.EdgeAttribute(edgeID, DirectedAttribute)
	assert.Equal(t, false, directed.Value)
	reverseDirected, _ := net.EdgeAttribute(edgeID, ReverseDirectedAttribute)
	assert.Equal(t, false, reverseDirected.Value)
}

func TestAddSingleEdgeDeduplicatesAndMerges(t *testing.T) {
	net := network.NewNetwork("edges")
	a := net.CreateNode("AKT1")
	b := net.CreateNode("MTOR")

	annotator := NewAnnotator(NewAnnotatorParams{})
	stmts := []*common.Statement{
		{StmtHash: 1, StmtType: "Activation", EvidenceCount: "5",
			English: "AKT1 activates MTOR.", SourceNode: "AKT1", TargetNode: "MTOR"},
		// same hash, ignored
		{StmtHash: 1, StmtType: "Activation", EvidenceCount: "5",
			English: "AKT1 activates MTOR.", SourceNode: "AKT1", TargetNode: "MTOR"},
		// same text after period strip, counts merge
		{StmtHash: 2, StmtType: "Activation", EvidenceCount: "3",
			English: "AKT1 activates MTOR", SourceNode: "AKT1", TargetNode: "MTOR"},
	}

	edgeID := annotator.addSingleEdge(net, a, b, stmts)

	score, ok := net.EdgeAttribute(edgeID, RelationshipScoreAttribute)
	require.True(t, ok)
	assert.InDelta(t, math.Log(8), score.Value, 1e-9)

	relationships, _ := net.EdgeAttribute(edgeID, RelationshipsAttribute)
	text := relationships.Value.(string)
	assert.Contains(t, text, ">8</a>")
}

func TestAddSingleEdgeZeroEvidenceOmitsScore(t *testing.T) {
	net := network.NewNetwork("edges")
	a := net.CreateNode("AKT1")
	b := net.CreateNode("MTOR")

	annotator := NewAnnotator(NewAnnotatorParams{})
	stmts := []*common.Statement{
		{StmtHash: 1, StmtType: "Activation", EvidenceCount: "0",
			English: "AKT1 activates MTOR.", SourceNode: "AKT1", TargetNode: "MTOR"},
	}

	edgeID := annotator.addSingleEdge(net, a, b, stmts)

	_, ok := net.EdgeAttribute(edgeID, RelationshipScoreAttribute)
	assert.False(t, ok)
	// the remaining attributes are still written
	_, ok = net.EdgeAttribute(edgeID, RelationshipsAttribute)
	assert.True(t, ok)
}

func TestAddSingleEdgeNonNumericCountExcluded(t *testing.T) {
	net := network.NewNetwork("edges")
	a := net.CreateNode("AKT1")
	b := net.CreateNode("MTOR")

	annotator := NewAnnotator(NewAnnotatorParams{})
	stmts := []*common.Statement{
		{StmtHash: 1, StmtType: "Activation", EvidenceCount: "oops",
			English: "AKT1 activates MTOR.", SourceNode: "AKT1", TargetNode: "MTOR"},
		{StmtHash: 2, StmtType: "Inhibition", EvidenceCount: "4",
			English: "AKT1 inhibits MTOR.", SourceNode: "AKT1", TargetNode: "MTOR"},
	}

	edgeID := annotator.addSingleEdge(net, a, b, stmts)

	score, ok := net.EdgeAttribute(edgeID, RelationshipScoreAttribute)
	require.True(t, ok)
	assert.InDelta(t, math.Log(4), score.Value, 1e-9)
}

func TestEvidenceURLEscapesAgents(t *testing.T) {
	annotator := NewAnnotator(NewAnnotatorParams{BrowserTarget: "tab"})

	link := annotator.evidenceURL(3, "AKT<1>", "MTOR", "Activation")
	assert.Contains(t, link, "subject=AKT&lt;1&gt;")
	assert.Contains(t, link, "object=MTOR")
	assert.Contains(t, link, "type=Activation")
	assert.Contains(t, link, "format=html&expand_all=true")
	assert.Contains(t, link, "target=\"tab\"")
	assert.Contains(t, link, ">3</a>")

	all := annotator.allEvidenceURL(9, "AKT1", "MTOR")
	assert.Contains(t, all, "agent0=AKT1")
	assert.Contains(t, all, "agent1=MTOR")
	assert.Contains(t, all, "expand_all=false")
	assert.Contains(t, all, ">9</a>")
}
