package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndexcontent/indraloader/pkg/common"
)

func TestSelfLoopFilterNoStatements(t *testing.T) {
	f := NewSelfLoopStatementFilter()
	filtered, report := f.Apply(evidenceWith())
	assert.Equal(t, 0, filtered.Stmts.Len())
	assert.Empty(t, report)
}

func TestSelfLoopFilterCollapsedPair(t *testing.T) {
	f := NewSelfLoopStatementFilter()
	evidence := evidenceBetween("AKT1", "AKT1",
		&common.Statement{StmtHash: 1, StmtType: "Activation",
			English: "AKT1 activates MTOR."},
		&common.Statement{StmtHash: 2, StmtType: "Complex",
			English: "AKT1 binds MTOR."},
	)

	filtered, report := f.Apply(evidence)
	assert.Equal(t, 0, filtered.Stmts.Len())
	assert.Equal(t, "Removed 2 self loop statements\n", report)
}

func TestSelfLoopFilterEnglishTokens(t *testing.T) {
	f := NewSelfLoopStatementFilter()
	evidence := evidenceWith(
		&common.Statement{StmtHash: 1, StmtType: "Complex",
			English: "AKT1 binds AKT1."},
		&common.Statement{StmtHash: 2, StmtType: "Complex",
			English: "AKT1 binds MTOR."},
		&common.Statement{StmtHash: 3, StmtType: "ActiveForm",
			English: "AKT1 is active."},
	)

	filtered, report := f.Apply(evidence)
	assert.Equal(t, 2, filtered.Stmts.Len())
	_, ok := filtered.Stmts.Get("1")
	assert.False(t, ok)
	assert.Equal(t, "Removed 1 self loop statements\n", report)
}

func TestSelfLoopFilterShortEnglishKept(t *testing.T) {
	f := NewSelfLoopStatementFilter()
	evidence := evidenceWith(
		&common.Statement{StmtHash: 1, StmtType: "Activation",
			English: "AKT1 acts."},
	)

	filtered, report := f.Apply(evidence)
	assert.Equal(t, 1, filtered.Stmts.Len())
	assert.Empty(t, report)
}

func TestSelfLoopFilterDoesNotMutateInput(t *testing.T) {
	f := NewSelfLoopStatementFilter()
	evidence := evidenceWith(
		&common.Statement{StmtHash: 1, StmtType: "Complex",
			English: "AKT1 binds AKT1."},
	)

	_, _ = f.Apply(evidence)
	assert.Equal(t, 1, evidence.Stmts.Len())
}
