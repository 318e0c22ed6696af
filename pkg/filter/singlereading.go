package filter

import (
	"fmt"

	"github.com/ndexcontent/indraloader/pkg/common"
)

// readingSources are the automated text-mining extraction systems, as
// opposed to curated databases such as Pathway Commons or SIGNOR.
var readingSources = map[string]bool{
	"eidos":   true,
	"trips":   true,
	"reach":   true,
	"sparser": true,
	"medscan": true,
	"rlimsp":  true,
	"isi":     true,
}

// SingleReadingStatementFilter removes statements backed by a single piece
// of evidence from a single reading system. A lone reading-system extraction
// has a fairly high error rate; a single evidence from a curated resource is
// fine to keep, and once there are two or more evidences precision is in the
// 75-80% range even from one reading system.
type SingleReadingStatementFilter struct{}

// NewSingleReadingStatementFilter creates the filter.
func NewSingleReadingStatementFilter() *SingleReadingStatementFilter {
	return &SingleReadingStatementFilter{}
}

// Description returns a summary of what this filter does.
func (f *SingleReadingStatementFilter) Description() string {
	return "SingleReadingStatementFilter: Removes statements with only one " +
		"evidence that originated from only a single reading system"
}

// Apply removes statements whose sole source is a reading system with at
// most one piece of evidence.
func (f *SingleReadingStatementFilter) Apply(evidence common.EdgeEvidence) (common.EdgeEvidence, string) {
	filtered := evidence.Clone()

	var toRemove []string
	for _, key := range filtered.Stmts.Keys() {
		stmt, _ := filtered.Stmts.Get(key)
		source, ok := singleSource(stmt.SourceCounts)
		if !ok {
			continue
		}
		if readingSources[source] && stmt.SourceCounts[source] <= 1 {
			toRemove = append(toRemove, key)
		}
	}
	for _, key := range toRemove {
		filtered.Stmts.Delete(key)
	}

	if len(toRemove) == 0 {
		return filtered, ""
	}
	return filtered, fmt.Sprintf("Removed %d statements with only single reading system source\n", len(toRemove))
}
