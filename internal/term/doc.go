// Package term provides types and functions for South Australian school terms,
// school holidays, and public holidays.
//
// The term package handles the calendar domain model, loose Australian date
// parsing ("Tuesday 29th January", "13 Apr"), derivation of holiday periods
// from the gaps between sorted terms, and holiday-name normalization such as
// stripping bracketed annotations and rewriting part-day holiday labels.
package term
