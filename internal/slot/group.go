package slot

import "sort"

// DayGroups partitions slots into per-day buckets with deterministic key
// order. Keys sort ascending lexicographically, which is chronological for
// YYYY-MM-DD keys; free-text fallback keys sort wherever string comparison
// puts them.
type DayGroups struct {
	keys    []string
	buckets map[string][]Slot
}

// GroupKey derives the canonical grouping key for a slot. The chain is
// deliberately independent from ResolveDate: slot id prefix first, then
// the structured date, then the free-text label, then the raw id. Records
// whose id and date fields disagree can land in different buckets; that
// mirrors the backend's data and is accepted, not corrected.
func GroupKey(s Slot) string {
	if datePrefixPattern.MatchString(s.ID) {
		return s.ID[:10]
	}
	if s.Date != "" {
		if t, ok := parseWireDate(s.Date); ok {
			return t.UTC().Format("2006-01-02")
		}
	}
	if s.DateLabel != "" {
		return s.DateLabel
	}
	return s.ID
}

// GroupByDay buckets slots by GroupKey. Within a bucket, slots keep their
// arrival order.
func GroupByDay(slots []Slot) *DayGroups {
	g := &DayGroups{buckets: make(map[string][]Slot)}
	for _, s := range slots {
		key := GroupKey(s)
		if _, seen := g.buckets[key]; !seen {
			g.keys = append(g.keys, key)
		}
		g.buckets[key] = append(g.buckets[key], s)
	}
	sort.Strings(g.keys)
	return g
}

// Keys returns the group keys in ascending order.
func (g *DayGroups) Keys() []string {
	result := make([]string, len(g.keys))
	copy(result, g.keys)
	return result
}

// Bucket returns the slots grouped under key, in arrival order.
func (g *DayGroups) Bucket(key string) []Slot {
	return g.buckets[key]
}

// Len returns the number of distinct day groups.
func (g *DayGroups) Len() int {
	return len(g.keys)
}
