package indra

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/ndexcontent/indraloader/pkg/common"
	"github.com/ndexcontent/indraloader/pkg/logger"
	"github.com/ndexcontent/indraloader/pkg/network"
)

// StatementURL is the URL prefix of the INDRA statements website used in
// evidence hyperlinks.
const StatementURL = "https://db.indra.bio/statements"

// interactionLabel is the interaction set on every created edge.
const interactionLabel = "interacts with"

// Edge attribute names written by the annotator.
const (
	SourceAttribute            = "__edge_source"
	RelationshipsAttribute     = "Relationships"
	DirectedAttribute          = "__directed"
	ReverseDirectedAttribute   = "__reverse_directed"
	RelationshipScoreAttribute = "__relationship_score"
)

// nonDirectionalTypes are the statement types where subject/object order
// carries no causal meaning.
var nonDirectionalTypes = map[string]bool{
	"ActiveForm":  true,
	"Association": true,
	"Complex":     true,
	"Migration":   true,
}

// pairKey builds the canonical undirected key for two node ids. The lower
// id always comes first; the second return value is true when the pair was
// flipped to achieve that.
func pairKey(srcNodeID, targetNodeID int64) (string, bool) {
	if srcNodeID <= targetNodeID {
		return strconv.FormatInt(srcNodeID, 10) + "_" + strconv.FormatInt(targetNodeID, 10), false
	}
	return strconv.FormatInt(targetNodeID, 10) + "_" + strconv.FormatInt(srcNodeID, 10), true
}

// addSingleEdge creates one network edge for a pooled statement list. The
// statements are deduplicated by hash, their trailing periods stripped, and
// same-text statements merged with summed evidence counts before the
// Relationships attribute is composed. Returns the created edge id.
func (a *Annotator) addSingleEdge(net *network.Network, srcNodeID, targetNodeID int64, stmts []*common.Statement) int64 {
	edgeID := net.CreateEdge(srcNodeID, targetNodeID, interactionLabel)

	unique := uniqueByHash(stmts)
	stripTrailingPeriods(unique)
	merged := mergeMatching(unique)

	entries := make([]evidenceEntry, 0, len(merged))
	forwardCount := 0
	reverseCount := 0
	var totalEvidence int64
	for _, stmt := range merged {
		if !nonDirectionalTypes[stmt.StmtType] {
			if stmt.IsReversed {
				reverseCount++
			} else {
				forwardCount++
			}
		}

		count, err := stmt.Count()
		if err != nil {
			logger.Warn("Expected a number for evidence_count in statement, excluding it from the total",
				"evidence_count", stmt.EvidenceCount, "english", stmt.English)
			count = 0
		} else {
			totalEvidence += count
		}
		entries = append(entries, evidenceEntry{
			display: stmt.English + "(" +
				a.evidenceURL(count, stmt.SourceNode, stmt.TargetNode, stmt.StmtType) + ")",
			count: count,
		})
	}

	last := merged[len(merged)-1]
	allURL := a.allEvidenceURL(totalEvidence, last.SourceNode, last.TargetNode)

	displays := sortEvidenceEntries(entries)
	net.SetEdgeAttribute(edgeID, RelationshipsAttribute,
		"All Evidences ("+allURL+")<ul><li/>"+strings.Join(displays, "<li/>")+"</ul>",
		network.TypeString)

	net.SetEdgeAttribute(edgeID, SourceAttribute, "INDRA", network.TypeString)

	if totalEvidence > 0 {
		net.SetEdgeAttribute(edgeID, RelationshipScoreAttribute,
			math.Log(float64(totalEvidence)), network.TypeDouble)
	} else {
		logger.Warn("Edge has zero total evidence, omitting relationship score",
			"source", srcNodeID, "target", targetNodeID)
	}

	net.SetEdgeAttribute(edgeID, DirectedAttribute, forwardCount > 0, network.TypeBoolean)
	net.SetEdgeAttribute(edgeID, ReverseDirectedAttribute, reverseCount > 0, network.TypeBoolean)
	return edgeID
}

// evidenceURL renders the hyperlinked evidence count for one statement.
func (a *Annotator) evidenceURL(count int64, subject, object, stmtType string) string {
	url := StatementURL + "/from_agents?subject=" + html.EscapeString(subject) +
		"&object=" + html.EscapeString(object) +
		"&type=" + html.EscapeString(stmtType) +
		"&format=html&expand_all=true"
	return fmt.Sprintf("<a href=\"%s\" target=\"%s\">%d</a>", url, a.browserTarget, count)
}

// allEvidenceURL renders the hyperlinked aggregate evidence count for a
// pair of agents.
func (a *Annotator) allEvidenceURL(count int64, agent0, agent1 string) string {
	url := StatementURL + "/from_agents?agent0=" + html.EscapeString(agent0) +
		"&agent1=" + html.EscapeString(agent1) +
		"&format=html&expand_all=false"
	return fmt.Sprintf("<a href=\"%s\" target=\"%s\">%d</a>", url, a.browserTarget, count)
}
