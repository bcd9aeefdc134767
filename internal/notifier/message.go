package notifier

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const maxErrorExcerpt = 500

// SuccessMessage builds the notification text for a fully successful run.
// The futureTermMissing flag adds a warning when next year's Term 1 dates
// could not be fetched.
func SuccessMessage(futureTermMissing bool, now time.Time) string {
	var b strings.Builder
	b.WriteString("✅ SA Calendars Updated! ✅\n\n")
	b.WriteString("✓ Public Holidays\n")
	b.WriteString("✓ School Terms & Holidays\n\n")
	if futureTermMissing {
		b.WriteString("⚠️ Could not fetch next year's Term 1 dates.\n\n")
	}
	b.WriteString(fmt.Sprintf("🕒 Next update: %s\n\n", formatOrdinalDate(nextUpdateDate(now))))
	b.WriteString("🌞 Have a great day! 🌞")
	return b.String()
}

// FailureMessage builds the notification text for a failed calendar update
func FailureMessage(calendarName, sourceURL string, err error) string {
	var b strings.Builder
	b.WriteString("‼️ SA Calendar Update Failed ‼️\n\n")
	b.WriteString(fmt.Sprintf("📅 %s update failed\n\n", calendarName))
	b.WriteString(fmt.Sprintf("🔗 Source: %s\n\n", sourceURL))
	b.WriteString("📝 Error Log:\n")
	b.WriteString(truncateExcerpt(err.Error(), maxErrorExcerpt))
	return b.String()
}

// nextUpdateDate returns the first day of the month after now
func nextUpdateDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
}

// formatOrdinalDate renders a date like "Monday 1st September 2025"
func formatOrdinalDate(t time.Time) string {
	return fmt.Sprintf("%s %d%s %s %d", t.Weekday(), t.Day(), daySuffix(t.Day()), t.Month(), t.Year())
}

func daySuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func truncateExcerpt(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	// Back off to a rune boundary so a multi-byte character is never split
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
