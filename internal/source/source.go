package source

import (
	"errors"

	"github.com/pfrederiksen/sa-calendars/internal/term"
)

// ExpectedTermCount is the number of terms in a South Australian school year.
const ExpectedTermCount = 4

// ErrInsufficientTerms signals that a source yielded fewer than the expected
// four terms for the target year. The orchestrator treats it as source
// exhaustion and moves on to the next adapter.
var ErrInsufficientTerms = errors.New("fewer than four terms found")

// TermSource extracts school terms for a year from a fetched document.
// Implementations must return ErrInsufficientTerms (possibly wrapped) when
// the document is readable but incomplete, so callers can fall through.
type TermSource interface {
	// Name identifies the source in logs and notifications.
	Name() string
	// URL is the document to fetch for this source.
	URL() string
	// ExtractTerms parses body and returns the terms for the given year.
	ExtractTerms(body []byte, year int) ([]term.Term, error)
}
