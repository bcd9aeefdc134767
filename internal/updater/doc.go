// Package updater orchestrates a full calendar update run.
//
// A run updates two calendars independently: South Australian public
// holidays and school terms with derived holiday periods. Each calendar has
// a primary source and one or more fallbacks; the first source that yields
// complete data wins. Failures in one calendar never abort the other. The
// run ends by writing both calendars to disk, diffing them against the
// previous output and sending a push notification with the outcome.
package updater
