package filter

import (
	"fmt"

	"github.com/ndexcontent/indraloader/pkg/common"
)

// SparserComplexStatementFilter removes Complex statements whose only
// source of evidence is sparser. The sparser reading system tends to pick
// up spurious complexes, so a Complex reported by sparser alone is likely
// low quality regardless of its evidence count.
type SparserComplexStatementFilter struct{}

// NewSparserComplexStatementFilter creates the filter.
func NewSparserComplexStatementFilter() *SparserComplexStatementFilter {
	return &SparserComplexStatementFilter{}
}

// Description returns a summary of what this filter does.
func (f *SparserComplexStatementFilter) Description() string {
	return "SparserComplexStatementFilter: Removes statements for Complexes " +
		"with only sparser as source of evidence"
}

// Apply removes Complex statements sourced solely from sparser.
func (f *SparserComplexStatementFilter) Apply(evidence common.EdgeEvidence) (common.EdgeEvidence, string) {
	filtered := evidence.Clone()

	var toRemove []string
	for _, key := range filtered.Stmts.Keys() {
		stmt, _ := filtered.Stmts.Get(key)
		if stmt.StmtType != "Complex" {
			continue
		}
		source, ok := singleSource(stmt.SourceCounts)
		if !ok {
			continue
		}
		if source == "sparser" {
			toRemove = append(toRemove, key)
		}
	}
	for _, key := range toRemove {
		filtered.Stmts.Delete(key)
	}

	if len(toRemove) == 0 {
		return filtered, ""
	}
	return filtered, fmt.Sprintf("Removed %d sparser complex statements\n", len(toRemove))
}
