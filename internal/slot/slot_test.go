package slot

import (
	"testing"
	"time"
)

// setLocal pins time.Local for the duration of a test. Display dates
// follow the viewer's wall clock, so date-field tests fix it to the
// backend's zone (UTC+8) to be deterministic anywhere.
func setLocal(t *testing.T, loc *time.Location) {
	t.Helper()
	prev := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = prev })
}

func TestResolveDate(t *testing.T) {
	setLocal(t, time.FixedZone("UTC+8", 8*3600))

	t.Run("structured date field wins", func(t *testing.T) {
		// 2025-02-01 is a Saturday.
		info := ResolveDate(Slot{ID: "whatever", Date: "2025-02-01"})
		if info.Display != "2/1" {
			t.Errorf("got display %q, want %q", info.Display, "2/1")
		}
		if info.Weekday != "週六" {
			t.Errorf("got weekday %q, want %q", info.Weekday, "週六")
		}
		if !info.Resolved() {
			t.Error("expected a resolved date")
		}
	})

	t.Run("rfc3339 date field", func(t *testing.T) {
		info := ResolveDate(Slot{Date: "2025-02-03T00:00:00Z"})
		if info.Display != "2/3" {
			t.Errorf("got display %q, want %q", info.Display, "2/3")
		}
		if info.Weekday != "週一" {
			t.Errorf("got weekday %q, want %q", info.Weekday, "週一")
		}
	})

	t.Run("utc instant displays as local day", func(t *testing.T) {
		// A spreadsheet Date for Taipei midnight 2/1 arrives as 16:00Z
		// the previous day; the viewer still sees 2/1.
		info := ResolveDate(Slot{Date: "2025-01-31T16:00:00.000Z"})
		if info.Display != "2/1" {
			t.Errorf("got display %q, want %q", info.Display, "2/1")
		}
		if info.Weekday != "週六" {
			t.Errorf("got weekday %q, want %q", info.Weekday, "週六")
		}
	})

	t.Run("slot id prefix fallback", func(t *testing.T) {
		info := ResolveDate(Slot{ID: "2025-02-03_2"})
		if info.Display != "2/3" {
			t.Errorf("got display %q, want %q", info.Display, "2/3")
		}
		if info.Weekday != "週一" {
			t.Errorf("got weekday %q, want %q", info.Weekday, "週一")
		}
		want := time.Date(2025, 2, 3, 0, 0, 0, 0, time.Local)
		if !info.Date.Equal(want) {
			t.Errorf("got date %v, want %v", info.Date, want)
		}
	})

	t.Run("unparseable date falls through to id prefix", func(t *testing.T) {
		info := ResolveDate(Slot{ID: "2025-02-04_1", Date: "not a date"})
		if info.Display != "2/4" {
			t.Errorf("got display %q, want %q", info.Display, "2/4")
		}
	})

	t.Run("label fallback has no weekday", func(t *testing.T) {
		info := ResolveDate(Slot{ID: "special", DateLabel: "除夕"})
		if info.Display != "除夕" {
			t.Errorf("got display %q, want %q", info.Display, "除夕")
		}
		if info.Weekday != "" {
			t.Errorf("got weekday %q, want empty", info.Weekday)
		}
		if info.Resolved() {
			t.Error("expected an unresolved date")
		}
	})

	t.Run("bare id fallback", func(t *testing.T) {
		info := ResolveDate(Slot{ID: "overflow_9"})
		if info.Display != "overflow_9" {
			t.Errorf("got display %q, want %q", info.Display, "overflow_9")
		}
	})

	t.Run("empty record yields empty display", func(t *testing.T) {
		info := ResolveDate(Slot{})
		if info.Display != "" || info.Weekday != "" || info.Resolved() {
			t.Errorf("got %+v, want zero-value display", info)
		}
	})
}

func TestWeekdayName(t *testing.T) {
	// One date per weekday, Sunday through Saturday.
	dates := []string{
		"2025-02-02", "2025-02-03", "2025-02-04", "2025-02-05",
		"2025-02-06", "2025-02-07", "2025-02-08",
	}
	want := []string{"週日", "週一", "週二", "週三", "週四", "週五", "週六"}
	for i, d := range dates {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			t.Fatalf("parsing %s: %v", d, err)
		}
		if got := WeekdayName(parsed); got != want[i] {
			t.Errorf("%s: got %q, want %q", d, got, want[i])
		}
	}
}
