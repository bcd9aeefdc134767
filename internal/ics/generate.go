package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/sa-calendars/internal/term"
)

const (
	// Timezone is the calendar display timezone hint.
	Timezone = "Australia/Adelaide"

	// EducationTermsPage is the human-readable page linked from term events.
	EducationTermsPage = "https://www.education.sa.gov.au/parents-and-families/term-dates-south-australian-state-schools"

	schoolUIDDomain  = "sa-school-terms.education.sa.gov.au"
	holidayUIDDomain = "southaustralia.holidays"

	dateLayout = "20060102"
)

// Category labels emitted in CATEGORIES. Exactly one per event.
const (
	CategoryPublicHoliday = "Public Holiday"
	CategorySchoolTerm    = "School Term"
	CategorySchoolHoliday = "School Holiday"
)

// BuildSchoolCalendar serializes school terms and derived holiday periods
// into a calendar. Each term yields a one-day "Term N Start" and
// "Term N End" event; each holiday period yields a single spanning event.
// now is used for DTSTAMP only, so fixing it makes output reproducible.
func BuildSchoolCalendar(terms []term.Term, holidays []term.Holiday, now time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetProductId("-//South Australia School Terms and Holidays//EN")
	cal.SetMethod(ical.MethodPublish)
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRCalName("South Australia School Terms and Holidays")
	cal.SetXWRCalDesc("School terms and holiday periods in South Australia")
	cal.SetXWRTimezone(Timezone)
	cal.SetRefreshInterval("PT48H")
	cal.SetXPublishedTTL("PT48H")

	for _, t := range terms {
		addAllDayEvent(cal, allDayEvent{
			uid:         fmt.Sprintf("START-%s-TERM%d@%s", t.Start.Format(dateLayout), t.Number, schoolUIDDomain),
			summary:     fmt.Sprintf("Term %d Start", t.Number),
			start:       t.Start,
			end:         t.Start,
			category:    CategorySchoolTerm,
			description: "First day of term for South Australian schools.",
			url:         EducationTermsPage,
			opaque:      true,
			now:         now,
		})
		addAllDayEvent(cal, allDayEvent{
			uid:         fmt.Sprintf("END-%s-TERM%d@%s", t.End.Format(dateLayout), t.Number, schoolUIDDomain),
			summary:     fmt.Sprintf("Term %d End", t.Number),
			start:       t.End,
			end:         t.End,
			category:    CategorySchoolTerm,
			description: "Last day of term for South Australian schools.",
			url:         EducationTermsPage,
			opaque:      true,
			now:         now,
		})
	}

	for _, h := range holidays {
		addAllDayEvent(cal, allDayEvent{
			uid:         fmt.Sprintf("HOLIDAY-%s-TERM%d@%s", h.Start.Format(dateLayout), h.TermNumber, schoolUIDDomain),
			summary:     term.CleanSummary(h.Summary),
			start:       h.Start,
			end:         h.End,
			category:    CategorySchoolHoliday,
			description: "School holiday period between terms.",
			url:         EducationTermsPage,
			opaque:      true,
			now:         now,
		})
	}

	return cal
}

// BuildHolidayCalendar serializes public holidays into a calendar of
// transparent single-day events with normalized names.
func BuildHolidayCalendar(holidays []term.PublicHoliday, now time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetProductId("-//South Australia//Public Holidays//EN")
	cal.SetMethod(ical.MethodPublish)
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRCalName("South Australia Public Holidays")
	cal.SetXWRCalDesc("Public holidays in South Australia")
	cal.SetXWRTimezone(Timezone)
	cal.SetRefreshInterval("PT48H")
	cal.SetXPublishedTTL("PT48H")

	for _, h := range holidays {
		name := term.NormalizeHolidayName(h.Name)
		addAllDayEvent(cal, allDayEvent{
			uid:      publicHolidayUID(name, h.Date),
			summary:  name,
			start:    h.Date,
			end:      h.Date,
			category: CategoryPublicHoliday,
			now:      now,
		})
	}

	return cal
}

// allDayEvent carries the fields of a single all-day entry. start and end are
// inclusive dates; the exclusive DTEND convention is applied on emission.
type allDayEvent struct {
	uid         string
	summary     string
	start       time.Time
	end         time.Time
	category    string
	description string
	url         string
	opaque      bool
	now         time.Time
}

func addAllDayEvent(cal *ical.Calendar, e allDayEvent) {
	ev := cal.AddEvent(e.uid)
	ev.SetDtStampTime(e.now.UTC())
	ev.SetSummary(e.summary)
	ev.SetAllDayStartAt(e.start)
	ev.SetAllDayEndAt(e.end.AddDate(0, 0, 1))
	ev.AddProperty(ical.ComponentPropertyCategories, e.category)
	// Outlook ignores VALUE=DATE without this hint
	ev.AddProperty(ical.ComponentProperty("X-MICROSOFT-CDO-ALLDAYEVENT"), "TRUE")
	if e.opaque {
		ev.SetTimeTransparency(ical.TransparencyOpaque)
	} else {
		ev.SetTimeTransparency(ical.TransparencyTransparent)
	}
	if e.description != "" {
		ev.SetDescription(e.description)
	}
	if e.url != "" {
		ev.SetURL(e.url)
	}
	ev.SetLocation("South Australia")
}

// publicHolidayUID reproduces the UID scheme calendar subscribers already
// have: date plus the squashed holiday name at a fixed domain.
func publicHolidayUID(name string, date time.Time) string {
	squashed := strings.ToLower(name)
	squashed = strings.NewReplacer(" ", "", "'", "", "’", "").Replace(squashed)
	return fmt.Sprintf("%s-%s@%s", date.Format(dateLayout), squashed, holidayUIDDomain)
}
