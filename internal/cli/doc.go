// Package cli implements the command-line interface for sa-calendars.
//
// The cli package provides the Cobra-based CLI that runs a calendar update,
// formats the run report (text/JSON) and wires configuration, storage,
// logging and notifications together.
package cli
