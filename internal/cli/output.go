package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/sa-calendars/internal/updater"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteReport writes the run report in the specified format
func WriteReport(w io.Writer, result *updater.RunResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *updater.RunResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *updater.RunResult) error {
	for _, cr := range []updater.CalendarResult{result.PublicHolidays, result.SchoolTerms} {
		if !cr.OK {
			fmt.Fprintf(w, "%s: FAILED\n", cr.Name)
			fmt.Fprintf(w, "  Source: %s\n", cr.SourceURL)
			fmt.Fprintf(w, "  Error: %s\n", cr.Error)
			continue
		}

		fmt.Fprintf(w, "%s: OK (%d events from %s)\n", cr.Name, cr.Events, cr.Source)
		state := "unchanged"
		if cr.Changed {
			state = "changed"
		}
		fmt.Fprintf(w, "  Written: %s (%s)\n", cr.Path, state)
		for _, summary := range cr.Added {
			fmt.Fprintf(w, "  Added: %s\n", summary)
		}
		for _, summary := range cr.Removed {
			fmt.Fprintf(w, "  Removed: %s\n", summary)
		}
	}

	if result.FutureTermMissing {
		fmt.Fprintln(w, "Warning: next year's Term 1 dates were not available.")
	}
	return nil
}
