package filter

import (
	"fmt"
	"strconv"

	"github.com/ndexcontent/indraloader/pkg/common"
)

// goodCurationTags are the curation tags counted as correct. "correct"
// means the evidence supports the statement. "hypothesis" (evidence phrased
// as a hypothesis) and "act_vs_amt" (activity regulation read as amount
// regulation or vice versa) are minor issues for the kind of networks built
// here and are included as correct. Every other tag ("grounding",
// "wrong_relation", "polarity", ...) means the evidence does not correctly
// support the statement.
var goodCurationTags = map[string]bool{
	"correct":    true,
	"hypothesis": true,
	"act_vs_amt": true,
}

// IncorrectStatementFilter removes statements that human curation marked
// incorrect. Curations apply per evidence, keyed by the statement's
// provenance hash: a statement with only incorrect curations is removed; a
// statement with at least one correct curation is kept even if it also has
// incorrect ones; statements with no curation record are always kept.
type IncorrectStatementFilter struct {
	curations map[int64][]common.Curation
}

// NewIncorrectStatementFilter creates the filter from a curation list.
// It fails when a record lacks its provenance hash or tag, so a broken
// curation file is caught before any network mutation.
func NewIncorrectStatementFilter(curationList []common.Curation) (*IncorrectStatementFilter, error) {
	curations := make(map[int64][]common.Curation)
	for i, curation := range curationList {
		if curation.PaHash == 0 {
			return nil, fmt.Errorf("curation record %d missing pa_hash", i)
		}
		if curation.Tag == "" {
			return nil, fmt.Errorf("curation record %d missing tag", i)
		}
		curations[curation.PaHash] = append(curations[curation.PaHash], curation)
	}
	return &IncorrectStatementFilter{curations: curations}, nil
}

// Description returns a summary of what this filter does.
func (f *IncorrectStatementFilter) Description() string {
	return "IncorrectStatementFilter: Removes statements that lack good curations"
}

// Apply removes statements whose curations all carry tags outside the
// counts-as-correct set.
func (f *IncorrectStatementFilter) Apply(evidence common.EdgeEvidence) (common.EdgeEvidence, string) {
	filtered := evidence.Clone()

	var toRemove []string
	for _, key := range filtered.Stmts.Keys() {
		hash, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		curations, ok := f.curations[hash]
		if !ok {
			continue
		}
		if !atLeastOneCurationCorrect(curations) {
			toRemove = append(toRemove, key)
		}
	}
	for _, key := range toRemove {
		filtered.Stmts.Delete(key)
	}

	if len(toRemove) == 0 {
		return filtered, ""
	}
	return filtered, fmt.Sprintf("Removed %d statements that lacked good curations\n", len(toRemove))
}

func atLeastOneCurationCorrect(curations []common.Curation) bool {
	for _, curation := range curations {
		if goodCurationTags[curation.Tag] {
			return true
		}
	}
	return false
}
