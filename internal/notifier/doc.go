// Package notifier provides push notification delivery for calendar update runs.
//
// The notifier package posts success and failure summaries to the Pushover
// API. Authentication requires an application token and a user key, read
// from the PUSHOVER_API_TOKEN and PUSHOVER_USER_KEY environment variables.
// A dry-run implementation prints messages instead of sending them.
package notifier
