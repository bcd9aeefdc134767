package term

import (
	"fmt"
	"sort"
)

// DeriveHolidays computes the school holiday periods from the gaps between
// terms. Input order does not matter; terms are sorted by start date before
// the gaps are scanned. A holiday is emitted only when the next term starts
// more than one day after the previous term ends, so back-to-back terms
// produce nothing.
func DeriveHolidays(terms []Term) []Holiday {
	if len(terms) < 2 {
		return nil
	}

	sorted := make([]Term, len(terms))
	copy(sorted, terms)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	holidays := make([]Holiday, 0, len(sorted)-1)
	for i := 0; i < len(sorted)-1; i++ {
		a, b := sorted[i], sorted[i+1]
		if !b.Start.After(a.End.AddDate(0, 0, 1)) {
			continue
		}
		holidays = append(holidays, Holiday{
			TermNumber: a.Number,
			Summary:    fmt.Sprintf("School Holidays (After Term %d)", a.Number),
			Start:      a.End.AddDate(0, 0, 1),
			End:        b.Start.AddDate(0, 0, -1),
		})
	}
	return holidays
}

// SortTerms orders terms by start date in place.
func SortTerms(terms []Term) {
	sort.Slice(terms, func(i, j int) bool {
		return terms[i].Start.Before(terms[j].Start)
	})
}
