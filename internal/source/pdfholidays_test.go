package source

import (
	"testing"
	"time"

	"github.com/pfrederiksen/sa-calendars/internal/term"
)

func TestResolvePDFURL(t *testing.T) {
	s := &PDFHolidays{
		PageURL: "https://www.safework.sa.gov.au/resources/public-holidays",
		BaseURL: "https://www.safework.sa.gov.au",
	}

	tests := []struct {
		name    string
		page    string
		want    string
		wantErr bool
	}{
		{
			name: "Relative link",
			page: `<a href="/documents/holidays.pdf" class="doc">SA public holiday dates 2025</a>`,
			want: "https://www.safework.sa.gov.au/documents/holidays.pdf",
		},
		{
			name: "Absolute link",
			page: `<a href="https://cdn.example.com/holidays.pdf">Download public holiday dates</a>`,
			want: "https://cdn.example.com/holidays.pdf",
		},
		{
			name:    "No matching link",
			page:    `<a href="/other.pdf">Annual report</a>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ResolvePDFURL([]byte(tt.page))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolvePDFURL = %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolvePDFURL failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolvePDFURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseHolidayText(t *testing.T) {
	text := `Public holidays in South Australia
New Year's Day Wednesday 1 January 2025 Thursday 1 January 2026
Adelaide Cup Day Monday 10 March 2025 Monday 9 March 2026
Part-day public holiday (Christmas Eve) Tuesday 24 December 2024
Notes: subject to proclamation`

	holidays := parseHolidayText(text)

	byName := make(map[string][]time.Time)
	for _, h := range holidays {
		byName[h.Name] = append(byName[h.Name], h.Date)
	}

	if dates := byName["New Year's Day"]; len(dates) != 2 {
		t.Errorf("New Year's Day dates = %v, want one per year column", dates)
	} else if !dates[0].Equal(term.Date(2025, time.January, 1)) {
		t.Errorf("first New Year's Day = %s, want 2025-01-01", dates[0].Format("2006-01-02"))
	}

	if dates := byName["Adelaide Cup Day"]; len(dates) != 2 || !dates[0].Equal(term.Date(2025, time.March, 10)) {
		t.Errorf("Adelaide Cup Day dates = %v", dates)
	}

	if dates := byName["Christmas Eve"]; len(dates) != 1 || !dates[0].Equal(term.Date(2024, time.December, 24)) {
		t.Errorf("Christmas Eve dates = %v, want [2024-12-24]", dates)
	}

	if _, ok := byName["Notes:"]; ok {
		t.Error("non-holiday line should not produce an entry")
	}
}

func TestParseHolidayTextEmpty(t *testing.T) {
	if holidays := parseHolidayText("no dates here at all"); len(holidays) != 0 {
		t.Errorf("expected no holidays, got %v", holidays)
	}
}
