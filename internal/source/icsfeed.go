package source

import (
	"bytes"
	"fmt"

	ical "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/sa-calendars/internal/ics"
	"github.com/pfrederiksen/sa-calendars/internal/term"
)

// ICSFeed extracts terms from the official education department ICS feed.
// The feed sometimes carries events for more than one year; only the target
// year's terms are kept.
type ICSFeed struct {
	FeedURL string
}

func (s *ICSFeed) Name() string { return "official ICS feed" }
func (s *ICSFeed) URL() string  { return s.FeedURL }

func (s *ICSFeed) ExtractTerms(body []byte, year int) ([]term.Term, error) {
	trimmed := bytes.TrimSpace(body)
	if !bytes.HasPrefix(trimmed, []byte("BEGIN:VCALENDAR")) {
		return nil, fmt.Errorf("response is not an iCalendar document")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(trimmed))
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	terms := ics.TermsFromCalendar(cal, year)
	if len(terms) < ExpectedTermCount {
		return nil, fmt.Errorf("%w: got %d for %d", ErrInsufficientTerms, len(terms), year)
	}
	return terms, nil
}
