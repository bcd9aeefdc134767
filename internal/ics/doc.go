// Package ics builds and reads the published iCalendar files.
//
// The package serializes school terms, derived holiday periods, and public
// holidays into RFC 5545 calendars with deterministic UIDs, so regenerating
// a calendar from the same inputs yields byte-identical events and calendar
// clients treat a re-published file as an update rather than a duplicate.
// It also reads all-day term events back out of a calendar, which both the
// official feed adapter and the round-trip tests rely on.
package ics
