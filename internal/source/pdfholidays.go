package source

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/ledongthuc/pdf"

	"github.com/pfrederiksen/sa-calendars/internal/ics"
	"github.com/pfrederiksen/sa-calendars/internal/term"
)

// HolidayFeed extracts public holidays from an ICS feed such as
// officeholidays.com.
type HolidayFeed struct {
	FeedURL string
}

func (s *HolidayFeed) Name() string { return "public holiday ICS feed" }
func (s *HolidayFeed) URL() string  { return s.FeedURL }

func (s *HolidayFeed) ExtractHolidays(body []byte) ([]term.PublicHoliday, error) {
	trimmed := bytes.TrimSpace(body)
	if !bytes.HasPrefix(trimmed, []byte("BEGIN:VCALENDAR")) {
		return nil, fmt.Errorf("response is not an iCalendar document")
	}
	cal, err := ical.ParseCalendar(bytes.NewReader(trimmed))
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}
	holidays := ics.HolidaysFromCalendar(cal)
	if len(holidays) == 0 {
		return nil, fmt.Errorf("no holiday events in feed")
	}
	return holidays, nil
}

// PDFHolidays extracts public holidays from the SafeWork SA holiday PDF,
// reached through a link on the resources page.
type PDFHolidays struct {
	PageURL string
	BaseURL string
}

func (s *PDFHolidays) Name() string { return "safework.sa.gov.au PDF" }
func (s *PDFHolidays) URL() string  { return s.PageURL }

// pdfLinkPattern finds the href of the link whose text mentions the public
// holiday dates document.
var pdfLinkPattern = regexp.MustCompile(`(?i)href="(.*?)"[^>]*>[^<]*public holiday dates`)

// ResolvePDFURL locates the holiday PDF link in the resources page HTML.
// Relative links are resolved against BaseURL.
func (s *PDFHolidays) ResolvePDFURL(pageBody []byte) (string, error) {
	matches := pdfLinkPattern.FindSubmatch(pageBody)
	if matches == nil {
		return "", fmt.Errorf("no public holiday PDF link found on page")
	}
	href := string(matches[1])
	if !strings.HasPrefix(strings.ToLower(href), "http") {
		href = strings.TrimSuffix(s.BaseURL, "/") + "/" + strings.TrimPrefix(href, "/")
	}
	return href, nil
}

// ExtractHolidays pulls the plain text out of the PDF and parses the holiday
// table rows from it.
func (s *PDFHolidays) ExtractHolidays(pdfBody []byte) ([]term.PublicHoliday, error) {
	reader, err := pdf.NewReader(bytes.NewReader(pdfBody), int64(len(pdfBody)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	textReader, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extracting PDF text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return nil, fmt.Errorf("reading PDF text: %w", err)
	}

	holidays := parseHolidayText(buf.String())
	if len(holidays) == 0 {
		return nil, fmt.Errorf("no holiday rows found in PDF text")
	}
	return holidays, nil
}

// holidayDatePattern matches one table cell's worth of date text with an
// explicit year, optionally prefixed by a weekday.
var holidayDatePattern = regexp.MustCompile(`(?:[A-Za-z]+day,?\s+)?(\d{1,2}\s+[A-Za-z]+\s+\d{4})`)

// parseHolidayText reads holiday rows from flattened PDF table text. Each
// usable line starts with the holiday name followed by one date per year
// column; a line yields one holiday per parseable date. Rows whose dates
// carry no year are skipped rather than guessed at.
func parseHolidayText(text string) []term.PublicHoliday {
	var holidays []term.PublicHoliday
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		loc := holidayDatePattern.FindStringIndex(line)
		if loc == nil || loc[0] == 0 {
			continue
		}
		name := term.NormalizeHolidayName(line[:loc[0]])
		if name == "" {
			continue
		}

		for _, m := range holidayDatePattern.FindAllStringSubmatch(line[loc[0]:], -1) {
			date, err := term.ParseAUDate(m[1], 0)
			if err != nil {
				continue
			}
			holidays = append(holidays, term.PublicHoliday{Name: name, Date: date})
		}
	}
	return holidays
}
