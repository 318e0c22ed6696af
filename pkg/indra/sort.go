package indra

import (
	"sort"
	"strings"
)

// evidenceEntry pairs a rendered statement with its evidence count for
// ordering. The display string starts with the leading entity name.
type evidenceEntry struct {
	display string
	count   int64
}

// sortEvidenceEntries orders rendered statements for display. Entries are
// partitioned by their leading entity token in first-seen order; each
// partition is sorted by evidence count descending (stable); partitions are
// then ordered by their maximum count descending (stable) and flattened.
// First-seen ordering makes the output independent of map iteration order,
// so tied counts always render the same way.
func sortEvidenceEntries(entries []evidenceEntry) []string {
	groupOrder := make([]string, 0, len(entries))
	groups := make(map[string][]evidenceEntry)
	for _, entry := range entries {
		lead := leadingToken(entry.display)
		if _, ok := groups[lead]; !ok {
			groupOrder = append(groupOrder, lead)
		}
		groups[lead] = append(groups[lead], entry)
	}

	type group struct {
		max     int64
		entries []evidenceEntry
	}
	ordered := make([]group, 0, len(groupOrder))
	for _, lead := range groupOrder {
		members := groups[lead]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].count > members[j].count
		})
		ordered = append(ordered, group{max: members[0].count, entries: members})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].max > ordered[j].max
	})

	displays := make([]string, 0, len(entries))
	for _, g := range ordered {
		for _, entry := range g.entries {
			displays = append(displays, entry.display)
		}
	}
	return displays
}

// leadingToken returns the text before the first space, or the whole
// string when it has no space.
func leadingToken(display string) string {
	if idx := strings.IndexByte(display, ' '); idx >= 0 {
		return display[:idx]
	}
	return display
}
