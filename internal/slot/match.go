package slot

import (
	"fmt"
	"strings"
)

// Cell is one grid position in a day row. A placeholder cell keeps the
// column aligned when the day has no slot for it; it is never interactive.
type Cell struct {
	Slot        Slot
	Placeholder bool
}

// Row is one rendered day: its resolved date plus one cell per column.
type Row struct {
	Key   string
	Date  DateInfo
	Cells []Cell
}

// Policy maps a day's bucket onto a fixed set of display columns.
// Implementations must be deterministic and side-effect-free.
type Policy interface {
	// Columns returns the header label for each column.
	Columns() []string
	// Assign produces exactly len(Columns()) cells for a day's bucket.
	Assign(bucket []Slot) []Cell
}

// OrdinalPolicy assigns slots to N columns by slot id suffix: column i
// takes the first slot whose id ends with "_i". Days lacking a given
// shift get a placeholder so column positions stay stable across days.
type OrdinalPolicy struct {
	count int
}

// NewOrdinalPolicy creates a policy with n ordinal columns.
func NewOrdinalPolicy(n int) OrdinalPolicy {
	return OrdinalPolicy{count: n}
}

// Columns returns 班別1..班別N.
func (p OrdinalPolicy) Columns() []string {
	cols := make([]string, p.count)
	for i := range cols {
		cols[i] = fmt.Sprintf("班別%d", i+1)
	}
	return cols
}

// Assign maps the bucket onto the ordinal columns.
func (p OrdinalPolicy) Assign(bucket []Slot) []Cell {
	cells := make([]Cell, p.count)
	for i := range cells {
		suffix := fmt.Sprintf("_%d", i+1)
		cells[i] = Cell{Placeholder: true}
		for _, s := range bucket {
			if strings.HasSuffix(s.ID, suffix) {
				cells[i] = Cell{Slot: s}
				break
			}
		}
	}
	return cells
}

// LabeledColumn describes one column of a LabelPolicy and its fallback
// chain: a time-label token match, then a slot id suffix match, then a
// positional index into the bucket.
type LabeledColumn struct {
	Name   string // header label, e.g. "上午班"
	Token  string // distinguishing time_label substring, e.g. "8:00"
	Suffix string // slot id suffix fallback, e.g. "_1"
	Index  int    // positional fallback into the day's bucket
}

// LabelPolicy assigns slots to a fixed set of labeled columns. As long as
// the bucket is non-empty every column shows some slot, even if the
// mapping is semantically wrong; that is an accepted degradation.
type LabelPolicy struct {
	cols []LabeledColumn
}

// NewLabelPolicy creates a policy from explicit column descriptors.
func NewLabelPolicy(cols []LabeledColumn) LabelPolicy {
	return LabelPolicy{cols: cols}
}

// DefaultLabelPolicy returns the three-shift layout the survey started
// with: morning, noon, afternoon keyed by opening-hour tokens.
func DefaultLabelPolicy() LabelPolicy {
	return NewLabelPolicy([]LabeledColumn{
		{Name: "上午班", Token: "8:00", Suffix: "_1", Index: 0},
		{Name: "中午班", Token: "11:00", Suffix: "_2", Index: 1},
		{Name: "下午班", Token: "13:30", Suffix: "_3", Index: 2},
	})
}

// Columns returns the configured header labels.
func (p LabelPolicy) Columns() []string {
	cols := make([]string, len(p.cols))
	for i, c := range p.cols {
		cols[i] = c.Name
	}
	return cols
}

// Assign maps the bucket onto the labeled columns via each column's
// fallback chain.
func (p LabelPolicy) Assign(bucket []Slot) []Cell {
	cells := make([]Cell, len(p.cols))
	for i, col := range p.cols {
		cells[i] = matchColumn(bucket, col)
	}
	return cells
}

func matchColumn(bucket []Slot, col LabeledColumn) Cell {
	// Token match is containment, first hit wins: "8:00–11:00" also
	// contains "11:00", so bucket order decides such ties.
	for _, s := range bucket {
		if col.Token != "" && s.TimeLabel != "" && strings.Contains(s.TimeLabel, col.Token) {
			return Cell{Slot: s}
		}
	}
	for _, s := range bucket {
		if col.Suffix != "" && strings.HasSuffix(s.ID, col.Suffix) {
			return Cell{Slot: s}
		}
	}
	if col.Index >= 0 && col.Index < len(bucket) {
		return Cell{Slot: bucket[col.Index]}
	}
	if len(bucket) > 0 {
		return Cell{Slot: bucket[0]}
	}
	return Cell{Placeholder: true}
}

// BuildRows runs the full pipeline: group slots by day, resolve each
// day's date from its first slot, and assign the bucket to columns.
func BuildRows(slots []Slot, policy Policy) []Row {
	groups := GroupByDay(slots)
	rows := make([]Row, 0, groups.Len())
	for _, key := range groups.Keys() {
		bucket := groups.Bucket(key)
		row := Row{Key: key, Cells: policy.Assign(bucket)}
		if len(bucket) > 0 {
			row.Date = ResolveDate(bucket[0])
		}
		rows = append(rows, row)
	}
	return rows
}
