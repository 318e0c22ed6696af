package filter

import (
	"strings"

	"github.com/ndexcontent/indraloader/pkg/common"
)

// StatementFilter removes statements that fail one named quality criterion.
//
// Apply returns a filtered copy of the evidence plus a report line of the
// form "Removed {n} <reason>\n" when at least one statement was removed,
// or an empty report otherwise. The input evidence is never mutated.
type StatementFilter interface {
	Description() string
	Apply(evidence common.EdgeEvidence) (common.EdgeEvidence, string)
}

// Chain is an ordered list of filters applied strictly left to right,
// accumulating every filter's report in application order.
type Chain []StatementFilter

// Apply runs every filter in order and concatenates their reports.
func (c Chain) Apply(evidence common.EdgeEvidence) (common.EdgeEvidence, string) {
	filtered := evidence
	var report strings.Builder
	for _, f := range c {
		var line string
		filtered, line = f.Apply(filtered)
		report.WriteString(line)
	}
	return filtered, report.String()
}

// Descriptions returns every filter's description in chain order.
func (c Chain) Descriptions() []string {
	descriptions := make([]string, 0, len(c))
	for _, f := range c {
		descriptions = append(descriptions, f.Description())
	}
	return descriptions
}

// singleSource returns the lone source name when counts holds exactly
// one entry.
func singleSource(counts map[string]int) (string, bool) {
	if len(counts) != 1 {
		return "", false
	}
	for source := range counts {
		return source, true
	}
	return "", false
}
