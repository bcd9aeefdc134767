package updater

// CalendarResult reports the outcome of updating one calendar
type CalendarResult struct {
	Name      string   `json:"name"`
	OK        bool     `json:"ok"`
	Source    string   `json:"source,omitempty"`
	SourceURL string   `json:"source_url,omitempty"`
	Path      string   `json:"path,omitempty"`
	Events    int      `json:"events"`
	Changed   bool     `json:"changed"`
	Added     []string `json:"added,omitempty"`
	Removed   []string `json:"removed,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// RunResult reports the outcome of a full update run
type RunResult struct {
	PublicHolidays CalendarResult `json:"public_holidays"`
	SchoolTerms    CalendarResult `json:"school_terms"`
	// FutureTermMissing is set when next year's Term 1 dates could not
	// be fetched. It does not fail the run.
	FutureTermMissing bool `json:"future_term_missing,omitempty"`
}

// OK reports whether both calendars were updated successfully
func (r *RunResult) OK() bool {
	return r.PublicHolidays.OK && r.SchoolTerms.OK
}
