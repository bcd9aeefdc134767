package ics

import (
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/sa-calendars/internal/term"
)

// TermsFromCalendar reads all-day "Term N" events back out of a calendar.
// DTEND is exclusive per RFC 5545, so the inclusive term end is one day
// earlier. Events whose summary carries no term number are skipped, as are
// events outside the given year when year is non-zero. Start/End event pairs
// ("Term 1 Start" / "Term 1 End") published by this tool are folded back
// into a single term per number.
func TermsFromCalendar(cal *ical.Calendar, year int) []term.Term {
	type bounds struct {
		start, end time.Time
	}
	byNumber := map[int]*bounds{}
	var numbers []int

	for _, ev := range cal.Events() {
		summary := propValue(ev, ical.ComponentPropertySummary)
		// Holiday events mention their term number too ("School Holidays
		// (After Term 1)") and must not be folded into the term bounds.
		if strings.Contains(strings.ToLower(summary), "holiday") {
			continue
		}
		n := term.Number(summary)
		if n == 0 {
			continue
		}

		start, ok := dateProp(ev, ical.ComponentPropertyDtStart)
		if !ok {
			continue
		}
		end, ok := dateProp(ev, ical.ComponentPropertyDtEnd)
		if !ok {
			continue
		}
		end = end.AddDate(0, 0, -1)

		if year != 0 && start.Year() != year {
			continue
		}

		b, seen := byNumber[n]
		if !seen {
			byNumber[n] = &bounds{start: start, end: end}
			numbers = append(numbers, n)
			continue
		}
		if start.Before(b.start) {
			b.start = start
		}
		if end.After(b.end) {
			b.end = end
		}
	}

	terms := make([]term.Term, 0, len(numbers))
	for _, n := range numbers {
		b := byNumber[n]
		terms = append(terms, term.NewTerm(n, b.start, b.end))
	}
	term.SortTerms(terms)
	return terms
}

// HolidaysFromCalendar reads single-day events out of a public holiday feed,
// normalizing each name. Events without a parseable all-day DTSTART are
// skipped.
func HolidaysFromCalendar(cal *ical.Calendar) []term.PublicHoliday {
	var holidays []term.PublicHoliday
	for _, ev := range cal.Events() {
		summary := propValue(ev, ical.ComponentPropertySummary)
		if summary == "" {
			continue
		}
		date, ok := dateProp(ev, ical.ComponentPropertyDtStart)
		if !ok {
			continue
		}
		holidays = append(holidays, term.PublicHoliday{
			Name: term.NormalizeHolidayName(summary),
			Date: date,
		})
	}
	return holidays
}

func propValue(ev *ical.VEvent, prop ical.ComponentProperty) string {
	p := ev.GetProperty(prop)
	if p == nil {
		return ""
	}
	return p.Value
}

// dateProp parses a DTSTART/DTEND value into a UTC midnight date. Both plain
// VALUE=DATE values ("20250128") and date-time values are accepted; only the
// date part is kept.
func dateProp(ev *ical.VEvent, prop ical.ComponentProperty) (time.Time, bool) {
	p := ev.GetProperty(prop)
	if p == nil || len(p.Value) < len(dateLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, p.Value[:len(dateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
