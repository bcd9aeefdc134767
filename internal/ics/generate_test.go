package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/sa-calendars/internal/term"
)

var testNow = time.Date(2025, time.August, 1, 10, 30, 0, 0, time.UTC)

func testTerms() []term.Term {
	return []term.Term{
		term.NewTerm(1, term.Date(2025, time.January, 28), term.Date(2025, time.April, 11)),
		term.NewTerm(2, term.Date(2025, time.April, 28), term.Date(2025, time.July, 4)),
	}
}

func TestBuildSchoolCalendarRoundTrip(t *testing.T) {
	terms := testTerms()
	holidays := term.DeriveHolidays(terms)

	cal := BuildSchoolCalendar(terms, holidays, testNow)
	serialized := cal.Serialize()

	parsed, err := ical.ParseCalendar(strings.NewReader(serialized))
	if err != nil {
		t.Fatalf("parsing generated calendar failed: %v", err)
	}

	recovered := TermsFromCalendar(parsed, 2025)
	if len(recovered) != len(terms) {
		t.Fatalf("recovered %d terms, want %d", len(recovered), len(terms))
	}
	for i, want := range terms {
		got := recovered[i]
		if got.Number != want.Number {
			t.Errorf("term %d number = %d, want %d", i, got.Number, want.Number)
		}
		if !got.Start.Equal(want.Start) {
			t.Errorf("term %d start = %s, want %s", i, got.Start.Format("2006-01-02"), want.Start.Format("2006-01-02"))
		}
		if !got.End.Equal(want.End) {
			t.Errorf("term %d end = %s, want %s", i, got.End.Format("2006-01-02"), want.End.Format("2006-01-02"))
		}
	}
}

func TestBuildSchoolCalendarIdempotent(t *testing.T) {
	terms := testTerms()
	holidays := term.DeriveHolidays(terms)

	first := BuildSchoolCalendar(terms, holidays, testNow).Serialize()
	second := BuildSchoolCalendar(terms, holidays, testNow).Serialize()
	if first != second {
		t.Error("regenerating the calendar from the same inputs produced different output")
	}
}

func TestBuildSchoolCalendarEvents(t *testing.T) {
	terms := testTerms()
	holidays := term.DeriveHolidays(terms)

	cal := BuildSchoolCalendar(terms, holidays, testNow)
	events := cal.Events()

	// Two events per term plus one holiday period
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}

	byUID := make(map[string]*ical.VEvent)
	for _, ev := range events {
		byUID[propValue(ev, ical.ComponentPropertyUniqueId)] = ev
	}

	start, ok := byUID["START-20250128-TERM1@sa-school-terms.education.sa.gov.au"]
	if !ok {
		t.Fatal("missing deterministic UID for Term 1 start")
	}
	if got := propValue(start, ical.ComponentPropertySummary); got != "Term 1 Start" {
		t.Errorf("summary = %q, want %q", got, "Term 1 Start")
	}
	if got := propValue(start, ical.ComponentPropertyCategories); got != CategorySchoolTerm {
		t.Errorf("categories = %q, want %q", got, CategorySchoolTerm)
	}
	// One-day event: exclusive end is the following day
	if got := propValue(start, ical.ComponentPropertyDtEnd); got != "20250129" {
		t.Errorf("DTEND = %q, want 20250129", got)
	}

	holiday, ok := byUID["HOLIDAY-20250412-TERM1@sa-school-terms.education.sa.gov.au"]
	if !ok {
		t.Fatal("missing deterministic UID for the holiday period")
	}
	if got := propValue(holiday, ical.ComponentPropertyCategories); got != CategorySchoolHoliday {
		t.Errorf("holiday categories = %q, want %q", got, CategorySchoolHoliday)
	}
	if got := propValue(holiday, ical.ComponentPropertyDtStart); got != "20250412" {
		t.Errorf("holiday DTSTART = %q, want 20250412", got)
	}
	// Inclusive end 2025-04-27, so exclusive DTEND is the 28th
	if got := propValue(holiday, ical.ComponentPropertyDtEnd); got != "20250428" {
		t.Errorf("holiday DTEND = %q, want 20250428", got)
	}
}

func TestBuildHolidayCalendar(t *testing.T) {
	holidays := []term.PublicHoliday{
		{Name: "Part-day public holiday (Christmas Eve)", Date: term.Date(2025, time.December, 24)},
		{Name: "Kings Birthday", Date: term.Date(2025, time.June, 9)},
	}

	cal := BuildHolidayCalendar(holidays, testNow)
	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	if got := propValue(events[0], ical.ComponentPropertySummary); got != "Christmas Eve" {
		t.Errorf("summary = %q, want %q", got, "Christmas Eve")
	}
	if got := propValue(events[0], ical.ComponentPropertyCategories); got != CategoryPublicHoliday {
		t.Errorf("categories = %q, want %q", got, CategoryPublicHoliday)
	}
	if got := propValue(events[0], ical.ComponentPropertyUniqueId); got != "20251224-christmaseve@southaustralia.holidays" {
		t.Errorf("uid = %q", got)
	}

	if got := propValue(events[1], ical.ComponentPropertySummary); got != "King's Birthday" {
		t.Errorf("summary = %q, want %q", got, "King's Birthday")
	}
	if got := propValue(events[1], ical.ComponentPropertyUniqueId); got != "20250609-kingsbirthday@southaustralia.holidays" {
		t.Errorf("uid = %q", got)
	}
}

func TestHolidaysFromCalendar(t *testing.T) {
	source := BuildHolidayCalendar([]term.PublicHoliday{
		{Name: "Anzac Day", Date: term.Date(2025, time.April, 25)},
	}, testNow)

	parsed, err := ical.ParseCalendar(strings.NewReader(source.Serialize()))
	if err != nil {
		t.Fatalf("parsing calendar failed: %v", err)
	}

	holidays := HolidaysFromCalendar(parsed)
	if len(holidays) != 1 {
		t.Fatalf("expected 1 holiday, got %d", len(holidays))
	}
	if holidays[0].Name != "Anzac Day" {
		t.Errorf("name = %q, want %q", holidays[0].Name, "Anzac Day")
	}
	if !holidays[0].Date.Equal(term.Date(2025, time.April, 25)) {
		t.Errorf("date = %s, want 2025-04-25", holidays[0].Date.Format("2006-01-02"))
	}
}
