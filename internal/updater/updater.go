package updater

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/pfrederiksen/sa-calendars/internal/config"
	"github.com/pfrederiksen/sa-calendars/internal/ics"
	"github.com/pfrederiksen/sa-calendars/internal/notifier"
	"github.com/pfrederiksen/sa-calendars/internal/source"
	"github.com/pfrederiksen/sa-calendars/internal/storage"
	"github.com/pfrederiksen/sa-calendars/internal/term"
)

// Updater runs calendar updates against the configured sources
type Updater struct {
	cfg     *config.Config
	fetcher *source.Fetcher
	store   *storage.Storage
	notify  notifier.Notifier
	logger  *zap.SugaredLogger
	now     func() time.Time
}

// New creates an Updater. notify may be nil, in which case no notifications
// are sent.
func New(cfg *config.Config, store *storage.Storage, notify notifier.Notifier, logger *zap.SugaredLogger) *Updater {
	return &Updater{
		cfg:     cfg,
		fetcher: source.NewFetcher(logger),
		store:   store,
		notify:  notify,
		logger:  logger,
		now:     time.Now,
	}
}

// Run updates both calendars and sends the outcome notification. It returns
// the run report along with an error when either calendar failed.
func (u *Updater) Run(ctx context.Context) (*RunResult, error) {
	year := u.cfg.Year(u.now())
	u.logger.Infow("starting update run", "year", year, "output", u.cfg.OutputDir)

	result := &RunResult{}
	result.PublicHolidays = u.updatePublicHolidays(ctx)
	result.SchoolTerms, result.FutureTermMissing = u.updateSchoolTerms(ctx, year)

	u.sendNotifications(result)

	if !result.OK() {
		return result, fmt.Errorf("update run completed with failures")
	}
	return result, nil
}

// updatePublicHolidays fetches the public holiday feed, falling back to the
// SafeWork SA PDF when the feed is unusable.
func (u *Updater) updatePublicHolidays(ctx context.Context) CalendarResult {
	result := CalendarResult{Name: "Public Holidays"}

	holidays, src, srcURL, err := u.fetchPublicHolidays(ctx)
	if err != nil {
		u.logger.Errorw("public holiday update failed", "error", err)
		result.Error = err.Error()
		// Failure notices link the human-readable subscribe page, not
		// the raw feed
		result.SourceURL = u.cfg.PublicHolidays.SubscribeURL
		return result
	}
	result.Source = src
	result.SourceURL = srcURL

	sort.Slice(holidays, func(i, j int) bool { return holidays[i].Date.Before(holidays[j].Date) })

	cal := ics.BuildHolidayCalendar(holidays, u.now())
	if err := u.writeCalendar(u.cfg.PublicHolidayFile, cal, &result); err != nil {
		u.logger.Errorw("writing public holiday calendar failed", "error", err)
		result.Error = err.Error()
		return result
	}

	result.OK = true
	result.Events = len(holidays)
	u.logger.Infow("public holidays updated", "source", src, "events", result.Events, "changed", result.Changed)
	return result
}

func (u *Updater) fetchPublicHolidays(ctx context.Context) ([]term.PublicHoliday, string, string, error) {
	feed := &source.HolidayFeed{FeedURL: u.cfg.PublicHolidays.FeedURL}
	holidays, feedErr := u.extractHolidayFeed(ctx, feed)
	if feedErr == nil {
		return holidays, feed.Name(), feed.URL(), nil
	}
	u.logger.Warnw("holiday feed failed, trying PDF fallback", "error", feedErr)

	pdfSrc := &source.PDFHolidays{
		PageURL: u.cfg.PublicHolidays.SafeworkPageURL,
		BaseURL: u.cfg.PublicHolidays.SafeworkBaseURL,
	}
	holidays, pdfErr := u.extractHolidayPDF(ctx, pdfSrc)
	if pdfErr != nil {
		return nil, "", "", fmt.Errorf("all holiday sources failed: feed: %v; pdf: %v", feedErr, pdfErr)
	}
	return holidays, pdfSrc.Name(), pdfSrc.URL(), nil
}

func (u *Updater) extractHolidayFeed(ctx context.Context, feed *source.HolidayFeed) ([]term.PublicHoliday, error) {
	body, err := u.fetcher.Get(ctx, feed.URL())
	if err != nil {
		return nil, err
	}
	return feed.ExtractHolidays(body)
}

func (u *Updater) extractHolidayPDF(ctx context.Context, src *source.PDFHolidays) ([]term.PublicHoliday, error) {
	pageBody, err := u.fetcher.Get(ctx, src.PageURL)
	if err != nil {
		return nil, err
	}
	pdfURL, err := src.ResolvePDFURL(pageBody)
	if err != nil {
		return nil, err
	}
	pdfBody, err := u.fetcher.Get(ctx, pdfURL)
	if err != nil {
		return nil, err
	}
	return src.ExtractHolidays(pdfBody)
}

// updateSchoolTerms walks the term source chain, derives holiday periods and
// writes the school calendar. The second return value reports whether next
// year's Term 1 could not be added.
func (u *Updater) updateSchoolTerms(ctx context.Context, year int) (CalendarResult, bool) {
	result := CalendarResult{Name: "School Terms & Holidays"}

	terms, winner, err := u.fetchTerms(ctx, year)
	if err != nil {
		u.logger.Errorw("school term update failed", "error", err)
		result.Error = err.Error()
		result.SourceURL = u.cfg.SchoolTerms.TermsPageURL
		return result, false
	}
	result.Source = winner.Name()
	result.SourceURL = winner.URL()

	futureMissing := false
	if !hasTerm1For(terms, year+1) {
		future, err := u.fetchFutureTerm1(ctx, year+1)
		if err != nil {
			u.logger.Warnw("future Term 1 unavailable", "year", year+1, "error", err)
			futureMissing = true
		} else {
			terms = append(terms, future)
		}
	}

	term.SortTerms(terms)
	holidays := term.DeriveHolidays(terms)

	cal := ics.BuildSchoolCalendar(terms, holidays, u.now())
	if err := u.writeCalendar(u.cfg.SchoolTermFile, cal, &result); err != nil {
		u.logger.Errorw("writing school calendar failed", "error", err)
		result.Error = err.Error()
		return result, futureMissing
	}

	result.OK = true
	result.Events = 2*len(terms) + len(holidays)
	u.logger.Infow("school terms updated",
		"source", winner.Name(), "terms", len(terms), "holidays", len(holidays), "changed", result.Changed)
	return result, futureMissing
}

// fetchTerms tries each term source in order and returns the first complete
// set for the year.
func (u *Updater) fetchTerms(ctx context.Context, year int) ([]term.Term, source.TermSource, error) {
	sources := []source.TermSource{
		&source.ICSFeed{FeedURL: u.cfg.TermFeedURL(year)},
		&source.HTMLTerms{PageURL: u.cfg.SchoolTerms.TermsPageURL},
		&source.FreeText{SourceName: "education.sa.gov.au term dates page", PageURL: u.cfg.SchoolTerms.MirrorPageURL},
	}

	var failures []string
	for _, src := range sources {
		body, err := u.fetcher.Get(ctx, src.URL())
		if err == nil {
			var terms []term.Term
			terms, err = src.ExtractTerms(body, year)
			if err == nil {
				return terms, src, nil
			}
		}
		u.logger.Warnw("term source failed", "source", src.Name(), "error", err)
		failures = append(failures, fmt.Sprintf("%s: %v", src.Name(), err))
	}
	return nil, nil, fmt.Errorf("all term sources failed: %s", strings.Join(failures, "; "))
}

// fetchFutureTerm1 finds next year's Term 1, trying the official feed for
// that year first and then the future term dates table.
func (u *Updater) fetchFutureTerm1(ctx context.Context, year int) (term.Term, error) {
	if t, err := u.futureTerm1FromFeed(ctx, year); err == nil {
		return t, nil
	}

	body, err := u.fetcher.Get(ctx, u.cfg.SchoolTerms.TermsPageURL)
	if err != nil {
		return term.Term{}, err
	}
	return source.FutureTerm1(body, year)
}

func (u *Updater) futureTerm1FromFeed(ctx context.Context, year int) (term.Term, error) {
	body, err := u.fetcher.Get(ctx, u.cfg.TermFeedURL(year))
	if err != nil {
		return term.Term{}, err
	}
	trimmed := bytes.TrimSpace(body)
	if !bytes.HasPrefix(trimmed, []byte("BEGIN:VCALENDAR")) {
		return term.Term{}, fmt.Errorf("response is not an iCalendar document")
	}
	cal, err := ical.ParseCalendar(bytes.NewReader(trimmed))
	if err != nil {
		return term.Term{}, fmt.Errorf("parsing calendar: %w", err)
	}
	for _, t := range ics.TermsFromCalendar(cal, year) {
		if t.Number == 1 {
			return t, nil
		}
	}
	return term.Term{}, fmt.Errorf("no Term 1 for %d in feed", year)
}

func hasTerm1For(terms []term.Term, year int) bool {
	for _, t := range terms {
		if t.Number == 1 && t.Start.Year() == year {
			return true
		}
	}
	return false
}

// writeCalendar serializes cal, persists it and records path, change flag
// and event-level diff on result.
func (u *Updater) writeCalendar(name string, cal *ical.Calendar, result *CalendarResult) error {
	written, err := u.store.WriteCalendar(name, []byte(cal.Serialize()))
	if err != nil {
		return err
	}
	result.Path = written.Path
	result.Changed = written.Changed

	if written.Previous != nil {
		previous, err := ical.ParseCalendar(bytes.NewReader(written.Previous))
		if err != nil {
			u.logger.Warnw("previous calendar unparsable, skipping diff", "file", name, "error", err)
			return nil
		}
		diff := ics.Diff(previous, cal)
		result.Added = diff.Added
		result.Removed = diff.Removed
	}
	return nil
}

func (u *Updater) sendNotifications(result *RunResult) {
	if u.notify == nil {
		return
	}

	if result.OK() {
		msg := notifier.SuccessMessage(result.FutureTermMissing, u.now())
		if err := u.notify.Notify(msg); err != nil {
			u.logger.Warnw("sending success notification failed", "error", err)
		}
		return
	}

	for _, cr := range []CalendarResult{result.PublicHolidays, result.SchoolTerms} {
		if cr.OK {
			continue
		}
		msg := notifier.FailureMessage(cr.Name, cr.SourceURL, fmt.Errorf("%s", cr.Error))
		if err := u.notify.Notify(msg); err != nil {
			u.logger.Warnw("sending failure notification failed", "calendar", cr.Name, "error", err)
		}
	}
}
