// Package source provides HTTP fetching and the fallback chain of term-date
// and public-holiday sources.
//
// Every term source implements the same extract contract over a fetched
// body, so the orchestrator can walk a chain of adapters (the official
// education ICS feed, the holidayswithkids.com.au HTML page, and a generic
// free-text fallback) until one yields a complete set of four terms for
// the target year. Public holidays come from the officeholidays ICS feed
// with the SafeWork SA PDF as fallback.
package source
