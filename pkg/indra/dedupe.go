package indra

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ndexcontent/indraloader/pkg/common"
	"github.com/ndexcontent/indraloader/pkg/logger"
)

// uniqueByHash keeps the first statement for each distinct stmt_hash,
// dropping later repeats. Iteration order is preserved.
func uniqueByHash(stmts []*common.Statement) []*common.Statement {
	seen := make(map[int64]bool, len(stmts))
	unique := make([]*common.Statement, 0, len(stmts))
	for _, stmt := range stmts {
		if seen[stmt.StmtHash] {
			continue
		}
		seen[stmt.StmtHash] = true
		unique = append(unique, stmt)
	}
	return unique
}

// stripTrailingPeriods removes exactly one trailing period from each
// statement's English rendering.
func stripTrailingPeriods(stmts []*common.Statement) {
	for _, stmt := range stmts {
		stmt.English = strings.TrimSuffix(stmt.English, ".")
	}
}

// mergeMatching collapses statements with identical English text into the
// first such statement encountered, summing their evidence counts. The
// result holds one statement per distinct text, in first-seen order.
func mergeMatching(stmts []*common.Statement) []*common.Statement {
	order := make([]string, 0, len(stmts))
	byEnglish := make(map[string][]*common.Statement)
	for _, stmt := range stmts {
		if _, ok := byEnglish[stmt.English]; !ok {
			order = append(order, stmt.English)
		}
		byEnglish[stmt.English] = append(byEnglish[stmt.English], stmt)
	}

	merged := make([]*common.Statement, 0, len(order))
	for _, english := range order {
		group := byEnglish[english]
		var total int64
		for _, stmt := range group {
			count, err := stmt.Count()
			if err != nil {
				logger.Warn("Expected a number for evidence_count, treating as zero",
					"evidence_count", stmt.EvidenceCount, "english", stmt.English)
				continue
			}
			total += count
		}
		group[0].EvidenceCount = toNumber(total)
		merged = append(merged, group[0])
	}
	return merged
}

func toNumber(count int64) json.Number {
	return json.Number(strconv.FormatInt(count, 10))
}
