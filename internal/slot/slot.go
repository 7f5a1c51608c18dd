// Package slot defines the core domain types for shiftwish: the slot
// records served by the backend and the pipeline that turns them into a
// renderable schedule grid.
package slot

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// datePrefixPattern matches a YYYY-MM-DD prefix of a slot id.
var datePrefixPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// weekdayNames is indexed by time.Weekday (0 = Sunday).
var weekdayNames = [7]string{"週日", "週一", "週二", "週三", "週四", "週五", "週六"}

// Slot is one offerable shift on one day, as returned by the backend.
// Every field except ID may be absent; the resolver and grouper degrade
// gracefully rather than reject a record.
type Slot struct {
	ID        string `json:"slot_id"`    // conventionally "YYYY-MM-DD_<ordinal>"
	Date      string `json:"date"`       // optional structured date
	DateLabel string `json:"date_label"` // optional free-text date label
	TimeLabel string `json:"time_label"` // e.g. "8:00–11:00"
	Count     int    `json:"count"`      // staff currently signed up
	Names     string `json:"names"`      // delimited participant names
}

// DateInfo is the resolved date of a slot for display purposes.
type DateInfo struct {
	Display string    // "M/D" without zero padding, or a raw fallback label
	Weekday string    // 週日..週六, empty when the date is unknown
	Date    time.Time // zero when no strategy produced a real date
}

// Resolved reports whether a real calendar date was derived.
func (d DateInfo) Resolved() bool {
	return !d.Date.IsZero()
}

// dateStrategy derives a DateInfo from a slot, reporting whether it applied.
type dateStrategy func(Slot) (DateInfo, bool)

// dateStrategies is the resolution order: structured date field first,
// then the slot id prefix, then the free-text fallback. The last entry
// always applies, so ResolveDate never fails.
var dateStrategies = []dateStrategy{
	dateFromField,
	dateFromID,
	dateFromLabel,
}

// ResolveDate derives the display date and weekday label for a slot.
// Unparseable input is never an error: the result degrades to the raw
// date label or slot id with an empty weekday.
func ResolveDate(s Slot) DateInfo {
	for _, strategy := range dateStrategies {
		if info, ok := strategy(s); ok {
			return info
		}
	}
	return DateInfo{} // unreachable: dateFromLabel always applies
}

// WeekdayName returns the 週X label for a date.
func WeekdayName(t time.Time) string {
	return weekdayNames[int(t.Weekday())]
}

func dateFromField(s Slot) (DateInfo, bool) {
	if s.Date == "" {
		return DateInfo{}, false
	}
	t, ok := parseWireDate(s.Date)
	if !ok {
		return DateInfo{}, false
	}
	// The spreadsheet serializes dates as UTC instants; a Taipei
	// midnight arrives as 16:00Z the previous day. Display uses the
	// local calendar day, grouping keeps the UTC ISO day.
	return infoForDate(t.In(time.Local)), true
}

func dateFromID(s Slot) (DateInfo, bool) {
	if !datePrefixPattern.MatchString(s.ID) {
		return DateInfo{}, false
	}
	year, _ := strconv.Atoi(s.ID[0:4])
	month, _ := strconv.Atoi(s.ID[5:7])
	day, _ := strconv.Atoi(s.ID[8:10])
	if year == 0 || month == 0 || day == 0 {
		return DateInfo{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	return infoForDate(t), true
}

func dateFromLabel(s Slot) (DateInfo, bool) {
	display := s.DateLabel
	if display == "" {
		display = s.ID
	}
	return DateInfo{Display: display}, true
}

func infoForDate(t time.Time) DateInfo {
	return DateInfo{
		Display: fmt.Sprintf("%d/%d", int(t.Month()), t.Day()),
		Weekday: WeekdayName(t),
		Date:    t,
	}
}

// wireDateLayouts are the formats the spreadsheet backend is known to
// serialize dates in.
var wireDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
}

func parseWireDate(s string) (time.Time, bool) {
	for _, layout := range wireDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
