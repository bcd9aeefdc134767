package term

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Term represents a single school term. Start and End are inclusive calendar
// dates at midnight UTC; a term is never mutated after creation.
type Term struct {
	Number  int       `json:"number"`
	Summary string    `json:"summary"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// Holiday represents a school holiday period between two adjacent terms.
// TermNumber is the number of the term the holidays follow.
type Holiday struct {
	TermNumber int       `json:"term_number"`
	Summary    string    `json:"summary"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// PublicHoliday represents a single-day public holiday.
type PublicHoliday struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// NewTerm creates a Term with its canonical "Term N" summary.
func NewTerm(number int, start, end time.Time) Term {
	return Term{
		Number:  number,
		Summary: fmt.Sprintf("Term %d", number),
		Start:   start,
		End:     end,
	}
}

var termNumberPattern = regexp.MustCompile(`(?i)\bterm\s*(\d)\b`)

// Number extracts the term number from a summary like "Term 1" or
// "Term 3 2025". Returns 0 if no term number is present.
func Number(summary string) int {
	matches := termNumberPattern.FindStringSubmatch(summary)
	if matches == nil {
		return 0
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0
	}
	return n
}
