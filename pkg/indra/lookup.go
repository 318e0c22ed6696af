package indra

import (
	"strings"

	"github.com/ndexcontent/indraloader/pkg/network"
)

const (
	hgncPrefix      = "hgnc.symbol:"
	memberAttribute = "member"
)

// membersOfFamilyNode returns the members of a protein family node by
// examining its "member" attribute and stripping the hgnc.symbol: prefix.
func membersOfFamilyNode(net *network.Network, nodeID int64) []string {
	attr, ok := net.NodeAttribute(nodeID, memberAttribute)
	if !ok {
		return nil
	}
	members, ok := attr.Value.([]string)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(members))
	for _, member := range members {
		names = append(names, strings.TrimPrefix(member, hgncPrefix))
	}
	return names
}

// nodeNameToIDMap builds the name to node-id lookup for the network.
// Family members resolve to their family node's id; when a member name
// collides with a plain node name, the plain node wins.
func nodeNameToIDMap(net *network.Network) map[string]int64 {
	lookup := make(map[string]int64)
	for _, node := range net.Nodes() {
		for _, member := range membersOfFamilyNode(net, node.ID) {
			lookup[member] = node.ID
		}
		lookup[node.Name] = node.ID
	}
	return lookup
}
