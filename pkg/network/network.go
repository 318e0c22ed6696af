package network

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Attribute data types supported on edges, nodes, and the network itself.
const (
	TypeString       = "string"
	TypeBoolean      = "boolean"
	TypeDouble       = "double"
	TypeInteger      = "integer"
	TypeListOfString = "list_of_string"
)

// Node is one vertex of the network with a display name.
type Node struct {
	ID         int64  `json:"@id"`
	Name       string `json:"n"`
	Represents string `json:"r,omitempty"`
}

// Edge connects two nodes with an interaction label.
type Edge struct {
	ID          int64  `json:"@id"`
	Source      int64  `json:"s"`
	Target      int64  `json:"t"`
	Interaction string `json:"i,omitempty"`
}

// Attribute is a typed name/value pair attached to a node, an edge, or
// the whole network.
type Attribute struct {
	Name     string
	Value    any
	DataType string
}

// Network is an in-memory interaction network with nodes, edges, and
// typed attributes. It is the only structure the annotator mutates; node
// and edge enumeration order is creation order so repeated runs produce
// identical output.
type Network struct {
	id   string
	name string

	nodeCounter int64
	edgeCounter int64

	nodeIDs []int64
	nodes   map[int64]*Node
	edgeIDs []int64
	edges   map[int64]*Edge

	nodeAttrs map[int64][]*Attribute
	edgeAttrs map[int64][]*Attribute
	netAttrs  []*Attribute
}

// NewNetwork creates an empty network with the given display name.
func NewNetwork(name string) *Network {
	id, err := gonanoid.New()
	if err != nil {
		id = name
	}
	return &Network{
		id:        id,
		name:      name,
		nodes:     make(map[int64]*Node),
		edges:     make(map[int64]*Edge),
		nodeAttrs: make(map[int64][]*Attribute),
		edgeAttrs: make(map[int64][]*Attribute),
	}
}

// ID returns the network's identifier. Fresh networks get a generated
// id; networks read from CX or downloaded from NDEx carry their UUID.
func (n *Network) ID() string {
	return n.id
}

// SetID replaces the network's identifier, typically with the
// authoritative NDEx UUID after a server download.
func (n *Network) SetID(id string) {
	n.id = id
}

// Name returns the network's display name.
func (n *Network) Name() string {
	return n.name
}

// SetName renames the network.
func (n *Network) SetName(name string) {
	n.name = name
}

// CreateNode adds a node with the given display name and returns its id.
func (n *Network) CreateNode(name string) int64 {
	id := n.nodeCounter
	n.nodeCounter++
	n.nodes[id] = &Node{ID: id, Name: name}
	n.nodeIDs = append(n.nodeIDs, id)
	return id
}

// Nodes returns all nodes in creation order.
func (n *Network) Nodes() []*Node {
	nodes := make([]*Node, 0, len(n.nodeIDs))
	for _, id := range n.nodeIDs {
		nodes = append(nodes, n.nodes[id])
	}
	return nodes
}

// Node returns the node with the given id.
func (n *Network) Node(id int64) (*Node, bool) {
	node, ok := n.nodes[id]
	return node, ok
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int {
	return len(n.nodeIDs)
}

// CreateEdge adds an edge between two node ids with an interaction label
// and returns the edge id.
func (n *Network) CreateEdge(source, target int64, interaction string) int64 {
	id := n.edgeCounter
	n.edgeCounter++
	n.edges[id] = &Edge{ID: id, Source: source, Target: target, Interaction: interaction}
	n.edgeIDs = append(n.edgeIDs, id)
	return id
}

// Edges returns all edges in creation order.
func (n *Network) Edges() []*Edge {
	edges := make([]*Edge, 0, len(n.edgeIDs))
	for _, id := range n.edgeIDs {
		edges = append(edges, n.edges[id])
	}
	return edges
}

// Edge returns the edge with the given id.
func (n *Network) Edge(id int64) (*Edge, bool) {
	edge, ok := n.edges[id]
	return edge, ok
}

// EdgeCount returns the number of edges.
func (n *Network) EdgeCount() int {
	return len(n.edgeIDs)
}

// RemoveEdge removes an edge and all of its attributes.
func (n *Network) RemoveEdge(id int64) {
	if _, ok := n.edges[id]; !ok {
		return
	}
	delete(n.edgeAttrs, id)
	delete(n.edges, id)
	for i, edgeID := range n.edgeIDs {
		if edgeID == id {
			n.edgeIDs = append(n.edgeIDs[:i], n.edgeIDs[i+1:]...)
			break
		}
	}
}

// SetNodeAttribute sets a typed attribute on a node, replacing any
// attribute of the same name.
func (n *Network) SetNodeAttribute(nodeID int64, name string, value any, dataType string) {
	n.nodeAttrs[nodeID] = setAttribute(n.nodeAttrs[nodeID], name, value, dataType)
}

// NodeAttribute returns the named attribute of a node.
func (n *Network) NodeAttribute(nodeID int64, name string) (*Attribute, bool) {
	return getAttribute(n.nodeAttrs[nodeID], name)
}

// SetEdgeAttribute sets a typed attribute on an edge, replacing any
// attribute of the same name.
func (n *Network) SetEdgeAttribute(edgeID int64, name string, value any, dataType string) {
	n.edgeAttrs[edgeID] = setAttribute(n.edgeAttrs[edgeID], name, value, dataType)
}

// EdgeAttribute returns the named attribute of an edge.
func (n *Network) EdgeAttribute(edgeID int64, name string) (*Attribute, bool) {
	return getAttribute(n.edgeAttrs[edgeID], name)
}

// EdgeAttributes returns all attributes of an edge.
func (n *Network) EdgeAttributes(edgeID int64) []*Attribute {
	return n.edgeAttrs[edgeID]
}

// RemoveEdgeAttribute removes the named attribute from an edge.
func (n *Network) RemoveEdgeAttribute(edgeID int64, name string) {
	attrs := n.edgeAttrs[edgeID]
	for i, attr := range attrs {
		if attr.Name == name {
			n.edgeAttrs[edgeID] = append(attrs[:i], attrs[i+1:]...)
			return
		}
	}
}

// SetNetworkAttribute sets a typed attribute on the network itself.
func (n *Network) SetNetworkAttribute(name string, value any, dataType string) {
	n.netAttrs = setAttribute(n.netAttrs, name, value, dataType)
}

// NetworkAttribute returns the named whole-network attribute.
func (n *Network) NetworkAttribute(name string) (*Attribute, bool) {
	return getAttribute(n.netAttrs, name)
}

// NetworkAttributes returns all whole-network attributes.
func (n *Network) NetworkAttributes() []*Attribute {
	return n.netAttrs
}

func setAttribute(attrs []*Attribute, name string, value any, dataType string) []*Attribute {
	for _, attr := range attrs {
		if attr.Name == name {
			attr.Value = value
			attr.DataType = dataType
			return attrs
		}
	}
	return append(attrs, &Attribute{Name: name, Value: value, DataType: dataType})
}

func getAttribute(attrs []*Attribute, name string) (*Attribute, bool) {
	for _, attr := range attrs {
		if attr.Name == name {
			return attr, true
		}
	}
	return nil, false
}
