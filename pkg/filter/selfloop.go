package filter

import (
	"fmt"
	"strings"

	"github.com/ndexcontent/indraloader/pkg/common"
)

// SelfLoopStatementFilter removes statements where source and target are
// the same entity. Self loops are not very interesting and are often the
// result of reading errors.
type SelfLoopStatementFilter struct{}

// NewSelfLoopStatementFilter creates the filter.
func NewSelfLoopStatementFilter() *SelfLoopStatementFilter {
	return &SelfLoopStatementFilter{}
}

// Description returns a summary of what this filter does.
func (f *SelfLoopStatementFilter) Description() string {
	return "SelfLoopStatementFilter: Iterates through evidence statements " +
		"and removes any where source and target are the same"
}

// Apply removes all statements when the declared pair collapses to a
// single entity name, then removes any remaining statement whose English
// rendering names the same entity as first and third token. The token
// check catches loops introduced by family or complex collapsing upstream,
// where the declared pair differs from the statement's literal subject
// and object.
func (f *SelfLoopStatementFilter) Apply(evidence common.EdgeEvidence) (common.EdgeEvidence, string) {
	filtered := evidence.Clone()

	entityNames := make(map[string]bool)
	for _, entity := range evidence.Edge {
		entityNames[entity.Name] = true
	}

	removed := 0
	if len(entityNames) <= 1 {
		removed = filtered.Stmts.Len()
		filtered.Stmts = common.NewStatementMap()
	}

	var toRemove []string
	for _, key := range filtered.Stmts.Keys() {
		stmt, _ := filtered.Stmts.Get(key)
		english := strings.TrimSuffix(stmt.English, ".")
		tokens := strings.Fields(english)
		if len(tokens) >= 3 && tokens[0] == tokens[2] {
			toRemove = append(toRemove, key)
		}
	}
	if len(toRemove) > 0 {
		for _, key := range toRemove {
			filtered.Stmts.Delete(key)
		}
		removed = len(toRemove)
	}

	if removed == 0 {
		return filtered, ""
	}
	return filtered, fmt.Sprintf("Removed %d self loop statements\n", removed)
}
