package term

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	weekdayPrefixPattern = regexp.MustCompile(`^[A-Za-z]+,?\s+`)
	ordinalPattern       = regexp.MustCompile(`(\d+)(?:st|nd|rd|th)\b`)
	dashPattern          = regexp.MustCompile(`[–—]`)
)

// NormalizeDateText prepares loose Australian date text for parsing: drops a
// leading weekday ("Tuesday 29 January"), ordinal suffixes ("1st", "2nd"),
// and normalizes en/em dashes to plain hyphens.
func NormalizeDateText(s string) string {
	s = strings.TrimSpace(s)
	s = dashPattern.ReplaceAllString(s, "-")
	if weekdayPrefixPattern.MatchString(s) && !startsWithMonth(s) {
		s = weekdayPrefixPattern.ReplaceAllString(s, "")
	}
	s = ordinalPattern.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

func startsWithMonth(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	word := strings.TrimSuffix(fields[0], ",")
	for _, layout := range []string{"January", "Jan"} {
		if _, err := time.Parse(layout, word); err == nil {
			return true
		}
	}
	return false
}

// ParseAUDate parses a day-and-month date in the formats found on Australian
// government and mirror pages, defaulting the year when absent.
// Supports: "29 January", "13 Apr", "Tuesday 29th January", "29 January 2025".
// Returns the zero time and an error if the text cannot be parsed.
func ParseAUDate(s string, year int) (time.Time, error) {
	cleaned := NormalizeDateText(s)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date text")
	}

	// Try formats that carry their own year first
	for _, layout := range []string{"2 January 2006", "2 Jan 2006"} {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.UTC(), nil
		}
	}

	// Day and month only; append the target year
	withYear := fmt.Sprintf("%s %d", cleaned, year)
	for _, layout := range []string{"2 January 2006", "2 Jan 2006"} {
		if t, err := time.Parse(layout, withYear); err == nil {
			return t.UTC(), nil
		}
	}

	// "January 2" ordering, seen on some mirror pages
	for _, layout := range []string{"January 2 2006", "Jan 2 2006"} {
		if t, err := time.Parse(layout, withYear); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// ParseDatePair parses a term's start and end date texts against the target
// year, rolling the end date into the following year when its month precedes
// the start month (a date range like "29 October to 5 January").
func ParseDatePair(startText, endText string, year int) (start, end time.Time, err error) {
	start, err = ParseAUDate(startText, year)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start date: %w", err)
	}
	end, err = ParseAUDate(endText, year)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end date: %w", err)
	}
	if end.Year() == start.Year() && end.Month() < start.Month() {
		end = end.AddDate(1, 0, 0)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s precedes start date %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return start, end, nil
}

// startMonthWindows holds the months in which each SA term plausibly starts.
// Used as a sanity check when extracting dates from loosely structured text.
var startMonthWindows = map[int][]time.Month{
	1: {time.January, time.February},
	2: {time.April, time.May},
	3: {time.July, time.August},
	4: {time.October, time.November},
}

// PlausibleStartMonth reports whether month is a believable start month for
// the given term number. Unknown term numbers are never plausible.
func PlausibleStartMonth(termNumber int, month time.Month) bool {
	for _, m := range startMonthWindows[termNumber] {
		if m == month {
			return true
		}
	}
	return false
}

// Date builds a UTC midnight date, the canonical form used throughout.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
