package indra

import (
	"github.com/ndexcontent/indraloader/pkg/network"
)

// queryNode is one node entry of a subgraph query in the format the INDRA
// service expects. Lookup is always null; the service resolves names.
type queryNode struct {
	Name       string  `json:"name"`
	Namespace  string  `json:"namespace"`
	Identifier string  `json:"identifier"`
	Lookup     *string `json:"lookup"`
}

// subgraphQuery extracts every node name of the network, including the
// members of family nodes, into the query document for the subgraph
// endpoint.
func subgraphQuery(net *network.Network) map[string][]queryNode {
	nodes := make([]queryNode, 0, net.NodeCount())
	for _, node := range net.Nodes() {
		nodes = append(nodes, queryNode{
			Name:       node.Name,
			Namespace:  "0",
			Identifier: "0",
		})
		for _, member := range membersOfFamilyNode(net, node.ID) {
			nodes = append(nodes, queryNode{
				Name:       member,
				Namespace:  "0",
				Identifier: "0",
			})
		}
	}
	return map[string][]queryNode{"nodes": nodes}
}
