package term

import (
	"regexp"
	"strings"
)

var (
	parenPattern   = regexp.MustCompile(`\s*\([^)]*\)`)
	squarePattern  = regexp.MustCompile(`\s*\[[^\]]*\]`)
	curlyPattern   = regexp.MustCompile(`\s*\{[^}]*\}`)
	anglePattern   = regexp.MustCompile(`\s*<[^>]*>`)
	partDayPattern = regexp.MustCompile(`(?i)\b(?:part|half)[- ]day public holiday\b`)
	parenContent   = regexp.MustCompile(`\(([^)]*)\)`)
	kingPattern    = regexp.MustCompile(`(?i)king.*birthday|birthday.*king`)
)

// CleanSummary strips bracketed annotations such as "(estimated)" or
// "[tentative]" from an event summary.
func CleanSummary(summary string) string {
	summary = parenPattern.ReplaceAllString(summary, "")
	summary = squarePattern.ReplaceAllString(summary, "")
	summary = curlyPattern.ReplaceAllString(summary, "")
	summary = anglePattern.ReplaceAllString(summary, "")
	return strings.TrimSpace(summary)
}

// NormalizeHolidayName turns a raw public holiday label into the name emitted
// in the calendar. Part-day holidays read as ordinary full-day holidays:
// "Part-day public holiday (Christmas Eve)" becomes "Christmas Eve". The
// recurring "Kings Birthday" misspelling from upstream tables is fixed too.
func NormalizeHolidayName(raw string) string {
	name := strings.TrimSpace(raw)

	// The part-day label appears in two forms: as the event name with the
	// holiday in parens ("Part-day public holiday (Christmas Eve)"), or as
	// a parenthetical annotation on the name ("Christmas Eve (part-day
	// public holiday)"). Only the first form promotes the paren content;
	// in the second the annotation is simply stripped below.
	if partDayPattern.MatchString(CleanSummary(name)) {
		if m := parenContent.FindStringSubmatch(name); m != nil && strings.TrimSpace(m[1]) != "" {
			name = strings.TrimSpace(m[1])
		} else {
			name = partDayPattern.ReplaceAllString(name, "Public Holiday")
		}
	}

	name = CleanSummary(name)

	if kingPattern.MatchString(name) {
		name = "King's Birthday"
	}
	return name
}
