package indra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ndexcontent/indraloader/pkg/common"
	"github.com/ndexcontent/indraloader/pkg/filter"
	"github.com/ndexcontent/indraloader/pkg/logger"
	"github.com/ndexcontent/indraloader/pkg/network"
	"github.com/ndexcontent/indraloader/pkg/version"
)

const (
	// SubgraphEndpoint is the default REST endpoint of the INDRA
	// subgraph service.
	SubgraphEndpoint = "https://network.indra.bio/api/subgraph"

	// DefaultBrowserTarget is the default value of the target attribute
	// on generated html links. Using a fixed name reuses one browser tab
	// for all evidence links instead of opening a new one per click.
	DefaultBrowserTarget = "INDRA_Evidence"

	// DefaultNetworkPrefix is prepended to the network name after
	// annotation unless the caller supplies another prefix.
	DefaultNetworkPrefix = "INDRA annotated - "
)

// Whole-network attribute names written by the annotator.
const (
	queryTimeAttribute   = "__INDRA query time in seconds"
	parametersAttribute  = "INDRA parameters"
	descriptionAttribute = "description"
)

// Annotator enriches an interaction network with causal-relationship
// evidence from the INDRA statement-mining service.
type Annotator struct {
	client        *Client
	filters       filter.Chain
	browserTarget string
}

// NewAnnotatorParams defines the configuration for creating an Annotator.
//
// Client may be nil when every annotation run supplies a cached payload.
// Filters are applied to each evidence entry strictly in order; an empty
// chain keeps every statement.
type NewAnnotatorParams struct {
	Client        *Client
	Filters       filter.Chain
	BrowserTarget string
}

// NewAnnotator creates an Annotator configured with the given parameters.
func NewAnnotator(params NewAnnotatorParams) *Annotator {
	browserTarget := params.BrowserTarget
	if browserTarget == "" {
		browserTarget = DefaultBrowserTarget
	}
	return &Annotator{
		client:        params.Client,
		filters:       params.Filters,
		browserTarget: browserTarget,
	}
}

// AnnotateParams defines one annotation run.
//
// Result, when non-nil, is a previously retrieved payload used instead of
// querying the subgraph service. NetPrefix defaults to
// DefaultNetworkPrefix. SourceValue, when set, is written as the
// __edge_source attribute of pre-existing edges lacking one.
type AnnotateParams struct {
	Network         *network.Network
	Result          *common.Result
	NetPrefix       string
	RemoveOrigEdges bool
	SourceValue     string
}

// AnnotateOutcome reports one annotation run: the raw payload (for
// caching by the caller), the concatenated filter reports, and the time
// the service query took (zero for a cached payload).
type AnnotateOutcome struct {
	Result       *common.Result
	FilterReport string
	QuerySeconds int64
}

// AnnotateNetwork retrieves (or reuses) the evidence payload for the
// network, filters and pools its statements per canonical entity pair, and
// creates one summarizing edge per pair. The network is mutated in place;
// payload-shape violations are reported before any mutation happens.
func (a *Annotator) AnnotateNetwork(ctx context.Context, params AnnotateParams) (*AnnotateOutcome, error) {
	if params.Network == nil {
		return nil, errors.New("network is required")
	}

	result := params.Result
	var querySeconds int64
	if result == nil {
		if a.client == nil {
			return nil, errors.New("no cached payload supplied and no client configured")
		}
		queried, elapsed, err := a.client.QuerySubgraph(ctx, params.Network)
		if err != nil {
			return nil, fmt.Errorf("querying subgraph service: %w", err)
		}
		result = queried
		querySeconds = elapsed
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}

	net := params.Network
	if params.RemoveOrigEdges {
		removeOriginalEdges(net)
	}

	lookup := nodeNameToIDMap(net)

	var poolOrder []string
	pools := make(map[string][]*common.Statement)
	var report strings.Builder

	for _, rawEvidence := range result.Edges {
		evidence, filterReport := a.filters.Apply(rawEvidence)
		if len(a.filters) == 0 {
			// an empty chain hands back the input unchanged, but the
			// statements are mutated below; work on a copy
			evidence = rawEvidence.Clone()
		}
		report.WriteString(filterReport)

		srcName := evidence.Edge[0].Name
		targetName := evidence.Edge[1].Name

		// The service surfaces nodes outside the queried subgraph;
		// those pairs are skipped.
		srcNodeID, srcOK := lookup[srcName]
		targetNodeID, targetOK := lookup[targetName]
		if !srcOK || !targetOK {
			logger.Debug("Skipping evidence pair not in network",
				"source", srcName, "target", targetName)
			continue
		}

		for _, stmtKey := range evidence.Stmts.Keys() {
			stmt, _ := evidence.Stmts.Get(stmtKey)
			stmt.SourceNode = srcName
			stmt.SourceNodeID = srcNodeID
			stmt.TargetNode = targetName
			stmt.TargetNodeID = targetNodeID

			key, isReversed := pairKey(srcNodeID, targetNodeID)
			stmt.IsReversed = isReversed
			if _, ok := pools[key]; !ok {
				poolOrder = append(poolOrder, key)
			}
			pools[key] = append(pools[key], stmt)
		}
	}

	for _, key := range poolOrder {
		logger.Debug("Creating edge for pair", "pair", key, "statements", len(pools[key]))
		srcNodeID, targetNodeID, err := parsePairKey(key)
		if err != nil {
			return nil, err
		}
		a.addSingleEdge(net, srcNodeID, targetNodeID, pools[key])
	}

	net.SetNetworkAttribute(queryTimeAttribute,
		strconv.FormatInt(querySeconds, 10), network.TypeString)

	description := ""
	if attr, ok := net.NetworkAttribute(descriptionAttribute); ok {
		if text, ok := attr.Value.(string); ok {
			description = text
		}
	}
	net.SetNetworkAttribute(descriptionAttribute,
		description+"\n\n<b>Additional edges added by indraloader (version: "+
			version.Version+")</b> using <a href=\"https://www.indra.bio\" target=\""+
			DefaultBrowserTarget+"\">INDRA service</a><br/>",
		network.TypeString)

	parameters, err := json.Marshal(map[string]any{
		"Remove Original Edges": params.RemoveOrigEdges,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding parameters attribute: %w", err)
	}
	net.SetNetworkAttribute(parametersAttribute, string(parameters), network.TypeString)

	prefix := params.NetPrefix
	if prefix == "" {
		prefix = DefaultNetworkPrefix
	}
	net.SetName(prefix + net.Name())

	addSourceToExistingEdges(net, params.SourceValue)

	outcome := &AnnotateOutcome{
		Result:       result,
		FilterReport: report.String(),
		QuerySeconds: querySeconds,
	}
	if outcome.FilterReport != "" {
		logger.Debug("Statement filter report", "report", outcome.FilterReport)
	}
	return outcome, nil
}

func parsePairKey(key string) (int64, int64, error) {
	left, right, found := strings.Cut(key, "_")
	if !found {
		return 0, 0, fmt.Errorf("malformed pair key %q", key)
	}
	srcNodeID, err := strconv.ParseInt(left, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed pair key %q: %w", key, err)
	}
	targetNodeID, err := strconv.ParseInt(right, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed pair key %q: %w", key, err)
	}
	return srcNodeID, targetNodeID, nil
}

// removeOriginalEdges removes every pre-existing edge, attributes first.
func removeOriginalEdges(net *network.Network) {
	logger.Info("Removing original edges", "count", net.EdgeCount())
	for _, edge := range net.Edges() {
		net.RemoveEdge(edge.ID)
	}
}

// addSourceToExistingEdges tags edges lacking an __edge_source attribute
// with the given value. Edges created by the annotator already carry one.
func addSourceToExistingEdges(net *network.Network, sourceValue string) {
	if sourceValue == "" {
		return
	}
	for _, edge := range net.Edges() {
		if _, ok := net.EdgeAttribute(edge.ID, SourceAttribute); !ok {
			net.SetEdgeAttribute(edge.ID, SourceAttribute, sourceValue, network.TypeString)
		}
	}
}
