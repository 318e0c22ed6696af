package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndexcontent/indraloader/pkg/common"
)

func TestMedscanFilter(t *testing.T) {
	tests := []struct {
		name         string
		sourceCounts map[string]int
		removed      bool
	}{
		{name: "medscan only",
			sourceCounts: map[string]int{"medscan": 1}, removed: true},
		{name: "medscan only high count",
			sourceCounts: map[string]int{"medscan": 25}, removed: true},
		{name: "medscan plus reach",
			sourceCounts: map[string]int{"medscan": 5, "reach": 1}, removed: false},
		{name: "no medscan",
			sourceCounts: map[string]int{"signor": 2}, removed: false},
	}

	f := NewMedscanStatementFilter()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			evidence := evidenceWith(&common.Statement{
				StmtHash: 1, StmtType: "Phosphorylation",
				English:      "AKT1 phosphorylates MTOR.",
				SourceCounts: tc.sourceCounts,
			})
			filtered, report := f.Apply(evidence)
			if tc.removed {
				assert.Equal(t, 0, filtered.Stmts.Len())
				assert.Equal(t, "Removed 1 medscan statements\n", report)
			} else {
				assert.Equal(t, 1, filtered.Stmts.Len())
				assert.Empty(t, report)
			}
		})
	}
}
