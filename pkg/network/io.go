package network

import (
	"encoding/json"
	"fmt"
	"os"
)

// The CX codec covers the aspects this loader touches: nodes, edges,
// node/edge/network attributes. Other aspects (layout, style, metaData)
// are ignored on read and not produced on write.

// uuidAttribute is the network attribute carrying the network's
// identifier, matching the name NDEx exports use.
const uuidAttribute = "ndex:uuid"

type cxAttribute struct {
	PO       int64           `json:"po,omitempty"`
	Name     string          `json:"n"`
	Value    json.RawMessage `json:"v"`
	DataType string          `json:"d,omitempty"`
}

// FromCX builds a network from a CX document.
func FromCX(data []byte) (*Network, error) {
	var fragments []map[string]json.RawMessage
	if err := json.Unmarshal(data, &fragments); err != nil {
		return nil, fmt.Errorf("decoding CX document: %w", err)
	}

	net := NewNetwork("")
	for _, fragment := range fragments {
		if raw, ok := fragment["nodes"]; ok {
			var nodes []Node
			if err := json.Unmarshal(raw, &nodes); err != nil {
				return nil, fmt.Errorf("decoding nodes aspect: %w", err)
			}
			for _, node := range nodes {
				n := node
				net.nodes[n.ID] = &n
				net.nodeIDs = append(net.nodeIDs, n.ID)
				if n.ID >= net.nodeCounter {
					net.nodeCounter = n.ID + 1
				}
			}
		}
		if raw, ok := fragment["edges"]; ok {
			var edges []Edge
			if err := json.Unmarshal(raw, &edges); err != nil {
				return nil, fmt.Errorf("decoding edges aspect: %w", err)
			}
			for _, edge := range edges {
				e := edge
				net.edges[e.ID] = &e
				net.edgeIDs = append(net.edgeIDs, e.ID)
				if e.ID >= net.edgeCounter {
					net.edgeCounter = e.ID + 1
				}
			}
		}
		if raw, ok := fragment["nodeAttributes"]; ok {
			attrs, err := decodeAttributes(raw, "nodeAttributes")
			if err != nil {
				return nil, err
			}
			for po, list := range attrs {
				for _, attr := range list {
					net.SetNodeAttribute(po, attr.Name, attr.Value, attr.DataType)
				}
			}
		}
		if raw, ok := fragment["edgeAttributes"]; ok {
			attrs, err := decodeAttributes(raw, "edgeAttributes")
			if err != nil {
				return nil, err
			}
			for po, list := range attrs {
				for _, attr := range list {
					net.SetEdgeAttribute(po, attr.Name, attr.Value, attr.DataType)
				}
			}
		}
		if raw, ok := fragment["networkAttributes"]; ok {
			var entries []cxAttribute
			if err := json.Unmarshal(raw, &entries); err != nil {
				return nil, fmt.Errorf("decoding networkAttributes aspect: %w", err)
			}
			for _, entry := range entries {
				value, dataType, err := coerceValue(entry.Value, entry.DataType)
				if err != nil {
					return nil, fmt.Errorf("decoding network attribute %s: %w", entry.Name, err)
				}
				if entry.Name == "name" {
					if name, ok := value.(string); ok {
						net.name = name
					}
					continue
				}
				if entry.Name == uuidAttribute {
					if id, ok := value.(string); ok && id != "" {
						net.id = id
					}
					continue
				}
				net.SetNetworkAttribute(entry.Name, value, dataType)
			}
		}
	}
	return net, nil
}

// ToCX renders the network as a CX document.
func (n *Network) ToCX() ([]byte, error) {
	nodes := make([]Node, 0, len(n.nodeIDs))
	for _, node := range n.Nodes() {
		nodes = append(nodes, *node)
	}
	edges := make([]Edge, 0, len(n.edgeIDs))
	for _, edge := range n.Edges() {
		edges = append(edges, *edge)
	}

	nodeAttrs := make([]map[string]any, 0)
	for _, id := range n.nodeIDs {
		for _, attr := range n.nodeAttrs[id] {
			nodeAttrs = append(nodeAttrs, encodeAttribute(id, attr))
		}
	}
	edgeAttrs := make([]map[string]any, 0)
	for _, id := range n.edgeIDs {
		for _, attr := range n.edgeAttrs[id] {
			edgeAttrs = append(edgeAttrs, encodeAttribute(id, attr))
		}
	}

	netAttrs := []map[string]any{
		{"n": "name", "v": n.name},
		{"n": uuidAttribute, "v": n.id},
	}
	for _, attr := range n.netAttrs {
		entry := map[string]any{"n": attr.Name, "v": attr.Value}
		if attr.DataType != "" && attr.DataType != TypeString {
			entry["d"] = attr.DataType
		}
		netAttrs = append(netAttrs, entry)
	}

	fragments := []map[string]any{
		{"numberVerification": []map[string]any{{"longNumber": int64(281474976710655)}}},
		{"networkAttributes": netAttrs},
		{"nodes": nodes},
		{"edges": edges},
	}
	if len(nodeAttrs) > 0 {
		fragments = append(fragments, map[string]any{"nodeAttributes": nodeAttrs})
	}
	if len(edgeAttrs) > 0 {
		fragments = append(fragments, map[string]any{"edgeAttributes": edgeAttrs})
	}
	fragments = append(fragments, map[string]any{
		"status": []map[string]any{{"error": "", "success": true}},
	})

	return json.Marshal(fragments)
}

// ReadFile loads a network from a CX file.
func ReadFile(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading CX file: %w", err)
	}
	return FromCX(data)
}

// WriteFile saves the network as a CX file.
func (n *Network) WriteFile(path string) error {
	data, err := n.ToCX()
	if err != nil {
		return fmt.Errorf("encoding CX document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing CX file: %w", err)
	}
	return nil
}

func decodeAttributes(raw json.RawMessage, aspect string) (map[int64][]*Attribute, error) {
	var entries []cxAttribute
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decoding %s aspect: %w", aspect, err)
	}
	attrs := make(map[int64][]*Attribute)
	for _, entry := range entries {
		value, dataType, err := coerceValue(entry.Value, entry.DataType)
		if err != nil {
			return nil, fmt.Errorf("decoding %s attribute %s: %w", aspect, entry.Name, err)
		}
		attrs[entry.PO] = append(attrs[entry.PO], &Attribute{
			Name:     entry.Name,
			Value:    value,
			DataType: dataType,
		})
	}
	return attrs, nil
}

func coerceValue(raw json.RawMessage, dataType string) (any, string, error) {
	switch dataType {
	case TypeBoolean:
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			// CX files in the wild carry booleans as strings too
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, "", err
			}
			return s == "true", TypeBoolean, nil
		}
		return v, TypeBoolean, nil
	case TypeDouble:
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, "", err
		}
		return v, TypeDouble, nil
	case TypeInteger:
		var v int64
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, "", err
		}
		return v, TypeInteger, nil
	case TypeListOfString:
		var v []string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, "", err
		}
		return v, TypeListOfString, nil
	default:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, "", err
		}
		return v, TypeString, nil
	}
}

func encodeAttribute(po int64, attr *Attribute) map[string]any {
	entry := map[string]any{"po": po, "n": attr.Name, "v": attr.Value}
	if attr.DataType != "" && attr.DataType != TypeString {
		entry["d"] = attr.DataType
	}
	return entry
}
