package filter

import (
	"fmt"

	"github.com/ndexcontent/indraloader/pkg/common"
)

// MedscanStatementFilter removes statements whose only source of evidence
// is medscan. Medscan data is private and its evidence text cannot be
// shown, so statements backed by nothing else are dropped.
type MedscanStatementFilter struct{}

// NewMedscanStatementFilter creates the filter.
func NewMedscanStatementFilter() *MedscanStatementFilter {
	return &MedscanStatementFilter{}
}

// Description returns a summary of what this filter does.
func (f *MedscanStatementFilter) Description() string {
	return "MedscanStatementFilter: Removes statements with only medscan " +
		"as source of evidence"
}

// Apply removes statements sourced solely from medscan, regardless of
// their evidence count.
func (f *MedscanStatementFilter) Apply(evidence common.EdgeEvidence) (common.EdgeEvidence, string) {
	filtered := evidence.Clone()

	var toRemove []string
	for _, key := range filtered.Stmts.Keys() {
		stmt, _ := filtered.Stmts.Get(key)
		source, ok := singleSource(stmt.SourceCounts)
		if !ok {
			continue
		}
		if source == "medscan" {
			toRemove = append(toRemove, key)
		}
	}
	for _, key := range toRemove {
		filtered.Stmts.Delete(key)
	}

	if len(toRemove) == 0 {
		return filtered, ""
	}
	return filtered, fmt.Sprintf("Removed %d medscan statements\n", len(toRemove))
}
