package source

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/sa-calendars/internal/term"
)

// termPatterns match "Term N <start> to <end>" with the separators and date
// shapes seen in the wild: "Term 1: 29 Jan to 13 Apr", "Term 2 - Monday 28th
// April – 4 July 2025". A pair is only accepted when a separator token sits
// between the two dates, so two bare dates never produce a match.
var termPatterns = [ExpectedTermCount + 1]*regexp.Regexp{}

func init() {
	const date = `(?:[A-Za-z]+day,?\s+)?(\d{1,2}(?:st|nd|rd|th)?\s+[A-Za-z]+(?:\s+\d{4})?)`
	for n := 1; n <= ExpectedTermCount; n++ {
		termPatterns[n] = regexp.MustCompile(
			fmt.Sprintf(`(?i)Term\s*%d\s*[:\-]?\s*%s\s*(?:to|–|—|-)\s*%s`, n, date, date),
		)
	}
}

// HTMLTerms extracts terms from the holidayswithkids.com.au page, which
// lists each year's dates under a heading containing the year.
type HTMLTerms struct {
	PageURL string
}

func (s *HTMLTerms) Name() string { return "holidayswithkids.com.au" }
func (s *HTMLTerms) URL() string  { return s.PageURL }

func (s *HTMLTerms) ExtractTerms(body []byte, year int) ([]term.Term, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	section, err := yearSectionText(doc, year)
	if err != nil {
		return nil, err
	}
	return extractTermsFromText(section, year, false)
}

// yearSectionText finds the heading mentioning the year and gathers the text
// up to the next heading.
func yearSectionText(doc *goquery.Document, year int) (string, error) {
	yearLabel := strconv.Itoa(year)
	var heading *goquery.Selection

	doc.Find("h2, h3, h4").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if strings.Contains(sel.Text(), yearLabel) {
			heading = sel
			return false
		}
		return true
	})
	if heading == nil {
		return "", fmt.Errorf("no heading for year %d found", year)
	}

	section := heading.NextUntil("h2, h3, h4").Text()
	if strings.TrimSpace(section) == "" {
		return "", fmt.Errorf("empty section under year %d heading", year)
	}
	return section, nil
}

// extractTermsFromText runs the per-term patterns over free text. With
// checkMonths set, a term whose start month is implausible for its number is
// rejected rather than trusted.
func extractTermsFromText(text string, year int, checkMonths bool) ([]term.Term, error) {
	terms := make([]term.Term, 0, ExpectedTermCount)
	for n := 1; n <= ExpectedTermCount; n++ {
		matches := termPatterns[n].FindStringSubmatch(text)
		if matches == nil {
			continue
		}
		start, end, err := term.ParseDatePair(matches[1], matches[2], year)
		if err != nil {
			continue
		}
		if checkMonths && !term.PlausibleStartMonth(n, start.Month()) {
			continue
		}
		terms = append(terms, term.NewTerm(n, start, end))
	}

	if len(terms) < ExpectedTermCount {
		return nil, fmt.Errorf("%w: got %d for %d", ErrInsufficientTerms, len(terms), year)
	}
	return terms, nil
}

var digitsOnly = regexp.MustCompile(`\D`)

// separator splits a date range cell like "27 January to 10 April".
var separator = regexp.MustCompile(`\bto\b|–|—|-`)

// FutureTerm1 reads next year's Term 1 from the "Future term dates" table on
// the holidayswithkids.com.au page. Failure here is non-fatal to the caller;
// it only downgrades the success notification.
func FutureTerm1(body []byte, year int) (term.Term, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return term.Term{}, fmt.Errorf("parsing HTML: %w", err)
	}

	var heading *goquery.Selection
	doc.Find("h2, h3").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(sel.Text()), "future term dates") {
			heading = sel
			return false
		}
		return true
	})
	if heading == nil {
		return term.Term{}, fmt.Errorf("future term dates heading not found")
	}

	table := heading.NextAllFiltered("table").First()
	if table.Length() == 0 {
		table = heading.Parent().Find("table").First()
	}
	if table.Length() == 0 {
		return term.Term{}, fmt.Errorf("no table after future term dates heading")
	}

	var result term.Term
	var found bool
	table.Find("tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		cells := tr.Find("td, th").Map(func(i int, cell *goquery.Selection) string {
			return strings.TrimSpace(cell.Text())
		})
		if len(cells) < 2 {
			return true
		}
		rowYear, err := strconv.Atoi(digitsOnly.ReplaceAllString(cells[0], ""))
		if err != nil || rowYear != year {
			return true
		}

		parts := separator.Split(cells[1], -1)
		if len(parts) != 2 {
			return true
		}
		start, end, err := term.ParseDatePair(parts[0], parts[1], year)
		if err != nil {
			return true
		}
		result = term.NewTerm(1, start, end)
		found = true
		return false
	})

	if !found {
		return term.Term{}, fmt.Errorf("no Term 1 row for year %d in future term dates table", year)
	}
	return result, nil
}
