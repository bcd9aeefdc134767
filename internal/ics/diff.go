package ics

import (
	"sort"

	ical "github.com/arran4/golang-ical"
)

// DiffResult lists the event summaries that appeared or disappeared between
// two published calendars.
type DiffResult struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

// Empty reports whether the two calendars carried the same event set.
func (d *DiffResult) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Diff compares the current calendar against the previously published one,
// keyed by UID. UIDs are deterministic across runs, so a date change shows
// up as one removal plus one addition. previous may be nil on the first run.
func Diff(previous, current *ical.Calendar) *DiffResult {
	result := &DiffResult{
		Added:   make([]string, 0),
		Removed: make([]string, 0),
	}

	prevEvents := eventIndex(previous)
	currEvents := eventIndex(current)

	for uid, summary := range currEvents {
		if _, exists := prevEvents[uid]; !exists {
			result.Added = append(result.Added, summary)
		}
	}
	for uid, summary := range prevEvents {
		if _, exists := currEvents[uid]; !exists {
			result.Removed = append(result.Removed, summary)
		}
	}

	sort.Strings(result.Added)
	sort.Strings(result.Removed)
	return result
}

func eventIndex(cal *ical.Calendar) map[string]string {
	index := make(map[string]string)
	if cal == nil {
		return index
	}
	for _, ev := range cal.Events() {
		uid := propValue(ev, ical.ComponentPropertyUniqueId)
		if uid == "" {
			continue
		}
		index[uid] = propValue(ev, ical.ComponentPropertySummary)
	}
	return index
}
