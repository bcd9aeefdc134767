package source

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/sa-calendars/internal/term"
)

// FreeText is the last-resort term source: it runs the term patterns over a
// whole page's visible text. Because there is no surrounding structure to
// anchor on, a match is only trusted when its start month is plausible for
// the term number.
type FreeText struct {
	SourceName string
	PageURL    string
}

func (s *FreeText) Name() string { return s.SourceName }
func (s *FreeText) URL() string  { return s.PageURL }

func (s *FreeText) ExtractTerms(body []byte, year int) ([]term.Term, error) {
	text := string(body)
	if strings.Contains(text, "<") {
		if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body)); err == nil {
			text = doc.Text()
		}
	}
	return extractTermsFromText(text, year, true)
}
