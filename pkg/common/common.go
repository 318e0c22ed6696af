package common

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingEdges indicates a payload that violates the upstream contract
// by not carrying an "edges" key at all.
var ErrMissingEdges = errors.New("payload missing 'edges' key")

// Statement represents one evidence-backed claim about two named entities
// as returned by the INDRA subgraph service.
//
// StmtHash is the provenance-unique identifier used for deduplication.
// EvidenceCount is kept as a json.Number because upstream payloads have
// been observed with non-numeric values; callers use Count to parse it.
type Statement struct {
	StmtType      string         `json:"stmt_type"`
	EvidenceCount json.Number    `json:"evidence_count"`
	StmtHash      int64          `json:"stmt_hash"`
	SourceCounts  map[string]int `json:"source_counts"`
	Belief        float64        `json:"belief"`
	Curated       bool           `json:"curated"`
	English       string         `json:"english"`
	Weight        float64        `json:"weight,omitempty"`
	DBURLHash     string         `json:"db_url_hash,omitempty"`

	// Assigned during annotation, never part of the wire payload.
	SourceNode   string `json:"-"`
	SourceNodeID int64  `json:"-"`
	TargetNode   string `json:"-"`
	TargetNodeID int64  `json:"-"`
	IsReversed   bool   `json:"-"`
}

// UnmarshalJSON accepts evidence_count as either a JSON number or a
// string. Payloads have been observed with quoted counts; those must
// parse as a per-statement anomaly surfaced by Count, not as a failure
// of the whole payload.
func (s *Statement) UnmarshalJSON(data []byte) error {
	type statement Statement
	aux := struct {
		EvidenceCount json.RawMessage `json:"evidence_count"`
		*statement
	}{statement: (*statement)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := aux.EvidenceCount
	switch {
	case len(raw) == 0 || string(raw) == "null":
		s.EvidenceCount = ""
	case raw[0] == '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return err
		}
		s.EvidenceCount = json.Number(text)
	default:
		s.EvidenceCount = json.Number(raw)
	}
	return nil
}

// Count parses the statement's evidence count. An absent count is zero.
func (s *Statement) Count() (int64, error) {
	if s.EvidenceCount == "" {
		return 0, nil
	}
	return s.EvidenceCount.Int64()
}

// Clone returns a deep copy of the statement.
func (s *Statement) Clone() *Statement {
	clone := *s
	if s.SourceCounts != nil {
		clone.SourceCounts = make(map[string]int, len(s.SourceCounts))
		for source, count := range s.SourceCounts {
			clone.SourceCounts[source] = count
		}
	}
	return &clone
}

// EntityRef is one endpoint descriptor of an evidence edge.
type EntityRef struct {
	Name       string `json:"name"`
	Namespace  string `json:"namespace,omitempty"`
	Identifier string `json:"identifier,omitempty"`
	Lookup     string `json:"lookup,omitempty"`
}

// EdgeEvidence is the raw collection of statements the service returns for
// one directed entity pair. Multiple entries may exist per unordered pair;
// forward and reverse directions arrive separately.
type EdgeEvidence struct {
	Edge      []EntityRef       `json:"edge"`
	Stmts     *StatementMap     `json:"stmts"`
	Belief    float64           `json:"belief,omitempty"`
	Weight    float64           `json:"weight,omitempty"`
	DBURLEdge string            `json:"db_url_edge,omitempty"`
	URLByType map[string]string `json:"url_by_type,omitempty"`
}

// Clone returns a deep copy of the edge evidence. Filters operate on the
// copy so the caller's payload stays untouched.
func (e EdgeEvidence) Clone() EdgeEvidence {
	clone := e
	if e.Edge != nil {
		clone.Edge = make([]EntityRef, len(e.Edge))
		copy(clone.Edge, e.Edge)
	}
	clone.Stmts = e.Stmts.Clone()
	if e.URLByType != nil {
		clone.URLByType = make(map[string]string, len(e.URLByType))
		for stmtType, url := range e.URLByType {
			clone.URLByType[stmtType] = url
		}
	}
	return clone
}

// Result is the raw evidence payload for one annotation run.
//
// Raw holds the undecoded payload bytes so callers can persist exactly what
// the service returned, including keys this loader does not model.
type Result struct {
	Edges []EdgeEvidence `json:"edges"`

	Raw []byte `json:"-"`
}

// ParseResult decodes a raw subgraph payload. It fails fast when the
// "edges" key is absent, which indicates an upstream contract violation
// rather than an empty result.
func ParseResult(data []byte) (*Result, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	if _, ok := probe["edges"]; !ok {
		return nil, ErrMissingEdges
	}

	result := &Result{Raw: data}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("decoding payload edges: %w", err)
	}
	return result, nil
}

// Validate checks the payload shape the annotator depends on: every
// evidence entry has exactly two named endpoints and every statement
// carries a type and an English rendering.
func (r *Result) Validate() error {
	for i, evidence := range r.Edges {
		if len(evidence.Edge) != 2 {
			return fmt.Errorf("evidence entry %d has %d endpoints, expected 2", i, len(evidence.Edge))
		}
		for _, entity := range evidence.Edge {
			if entity.Name == "" {
				return fmt.Errorf("evidence entry %d has an endpoint without a name", i)
			}
		}
		for _, key := range evidence.Stmts.Keys() {
			stmt, _ := evidence.Stmts.Get(key)
			if stmt.StmtType == "" {
				return fmt.Errorf("evidence entry %d statement %s missing stmt_type", i, key)
			}
			if stmt.English == "" {
				return fmt.Errorf("evidence entry %d statement %s missing english text", i, key)
			}
		}
	}
	return nil
}

// Curation is one human judgment about a statement/evidence pair,
// keyed by the statement's provenance hash.
type Curation struct {
	ID         int    `json:"id,omitempty"`
	PaHash     int64  `json:"pa_hash"`
	SourceHash int64  `json:"source_hash,omitempty"`
	Tag        string `json:"tag"`
	Curator    string `json:"curator,omitempty"`
	Source     string `json:"source,omitempty"`
	Text       string `json:"text,omitempty"`
	Date       string `json:"date,omitempty"`
}
