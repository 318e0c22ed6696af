package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndexcontent/indraloader/pkg/common"
)

func TestNewIncorrectFilterValidatesRecords(t *testing.T) {
	_, err := NewIncorrectStatementFilter([]common.Curation{
		{Tag: "correct"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pa_hash")

	_, err = NewIncorrectStatementFilter([]common.Curation{
		{PaHash: 42},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag")

	f, err := NewIncorrectStatementFilter(nil)
	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestIncorrectFilter(t *testing.T) {
	curations := []common.Curation{
		{PaHash: 100, Tag: "grounding"},
		{PaHash: 200, Tag: "wrong_relation"},
		{PaHash: 200, Tag: "correct"},
		{PaHash: 300, Tag: "hypothesis"},
		{PaHash: 400, Tag: "act_vs_amt"},
	}
	f, err := NewIncorrectStatementFilter(curations)
	require.NoError(t, err)

	evidence := evidenceWith(
		&common.Statement{StmtHash: 100, StmtType: "Activation",
			English: "AKT1 activates MTOR."},
		&common.Statement{StmtHash: 200, StmtType: "Complex",
			English: "AKT1 binds MTOR."},
		&common.Statement{StmtHash: 300, StmtType: "Inhibition",
			English: "AKT1 inhibits MTOR."},
		&common.Statement{StmtHash: 400, StmtType: "Phosphorylation",
			English: "AKT1 phosphorylates MTOR."},
		&common.Statement{StmtHash: 500, StmtType: "Activation",
			English: "AKT1 leads to the activation of MTOR."},
	)

	filtered, report := f.Apply(evidence)

	// only the statement whose curations are all bad is removed
	assert.Equal(t, 4, filtered.Stmts.Len())
	_, ok := filtered.Stmts.Get("100")
	assert.False(t, ok)
	assert.Equal(t, "Removed 1 statements that lacked good curations\n", report)
}

func TestIncorrectFilterUnparsableKeyKept(t *testing.T) {
	f, err := NewIncorrectStatementFilter([]common.Curation{
		{PaHash: 100, Tag: "grounding"},
	})
	require.NoError(t, err)

	stmts := common.NewStatementMap()
	stmts.Set("not-a-hash", &common.Statement{
		StmtType: "Activation", English: "AKT1 activates MTOR."})
	evidence := common.EdgeEvidence{
		Edge:  []common.EntityRef{{Name: "AKT1"}, {Name: "MTOR"}},
		Stmts: stmts,
	}

	filtered, report := f.Apply(evidence)
	assert.Equal(t, 1, filtered.Stmts.Len())
	assert.Empty(t, report)
}
