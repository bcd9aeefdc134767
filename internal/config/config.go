package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default source locations and output filenames.
const (
	DefaultHolidayFeedURL      = "https://www.officeholidays.com/ics-all/australia/south-australia"
	DefaultHolidaySubscribeURL = "https://www.officeholidays.com/subscribe/australia/south-australia"
	DefaultSafeworkPageURL     = "https://www.safework.sa.gov.au/resources/public-holidays"
	DefaultSafeworkBaseURL     = "https://www.safework.sa.gov.au"

	DefaultTermFeedURL   = "https://www.education.sa.gov.au/sites/default/files/south-australian-school-and-public-holiday-dates-{year}.ics"
	DefaultTermsPageURL  = "https://holidayswithkids.com.au/sa-school-holidays/"
	DefaultMirrorPageURL = "https://www.education.sa.gov.au/parents-and-families/term-dates-south-australian-state-schools"

	DefaultPublicHolidayFile = "SA-Public-Holidays.ics"
	DefaultSchoolTermFile    = "SA-School-Terms-Holidays.ics"

	DefaultTimezone = "Australia/Adelaide"
)

// PublicHolidaySources configures where public holiday data comes from
type PublicHolidaySources struct {
	// FeedURL is the primary ICS feed of public holidays
	FeedURL string `yaml:"feed_url"`
	// SubscribeURL is the human-readable page linked from failure notices
	SubscribeURL string `yaml:"subscribe_url"`
	// SafeworkPageURL is the fallback page carrying a link to the holiday PDF
	SafeworkPageURL string `yaml:"safework_page_url"`
	// SafeworkBaseURL resolves relative PDF links found on the page
	SafeworkBaseURL string `yaml:"safework_base_url"`
}

// SchoolTermSources configures where school term data comes from
type SchoolTermSources struct {
	// FeedURL is the official ICS feed; "{year}" is replaced at fetch time
	FeedURL string `yaml:"feed_url"`
	// TermsPageURL is the primary HTML fallback page
	TermsPageURL string `yaml:"terms_page_url"`
	// MirrorPageURL is the last-resort free-text page
	MirrorPageURL string `yaml:"mirror_page_url"`
}

// Config is the full runtime configuration
type Config struct {
	// OutputDir is where generated calendars are written; "~" expands to $HOME
	OutputDir string `yaml:"output_dir"`
	// TermsYear selects the school year to fetch; 0 means the current
	// year in the configured timezone
	TermsYear int    `yaml:"terms_year"`
	Timezone  string `yaml:"timezone"`

	PublicHolidays PublicHolidaySources `yaml:"public_holidays"`
	SchoolTerms    SchoolTermSources    `yaml:"school_terms"`

	PublicHolidayFile string `yaml:"public_holiday_file"`
	SchoolTermFile    string `yaml:"school_term_file"`
}

// Load reads configuration from a YAML file and applies defaults.
// An empty path or a missing file yields the pure default configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize fills in defaults for any unset field
func (c *Config) Normalize() {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.PublicHolidays.FeedURL == "" {
		c.PublicHolidays.FeedURL = DefaultHolidayFeedURL
	}
	if c.PublicHolidays.SubscribeURL == "" {
		c.PublicHolidays.SubscribeURL = DefaultHolidaySubscribeURL
	}
	if c.PublicHolidays.SafeworkPageURL == "" {
		c.PublicHolidays.SafeworkPageURL = DefaultSafeworkPageURL
	}
	if c.PublicHolidays.SafeworkBaseURL == "" {
		c.PublicHolidays.SafeworkBaseURL = DefaultSafeworkBaseURL
	}
	if c.SchoolTerms.FeedURL == "" {
		c.SchoolTerms.FeedURL = DefaultTermFeedURL
	}
	if c.SchoolTerms.TermsPageURL == "" {
		c.SchoolTerms.TermsPageURL = DefaultTermsPageURL
	}
	if c.SchoolTerms.MirrorPageURL == "" {
		c.SchoolTerms.MirrorPageURL = DefaultMirrorPageURL
	}
	if c.PublicHolidayFile == "" {
		c.PublicHolidayFile = DefaultPublicHolidayFile
	}
	if c.SchoolTermFile == "" {
		c.SchoolTermFile = DefaultSchoolTermFile
	}
}

// Year resolves TermsYear, falling back to the current year in the
// configured timezone
func (c *Config) Year(now time.Time) int {
	if c.TermsYear != 0 {
		return c.TermsYear
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return now.In(loc).Year()
}

// TermFeedURL expands the {year} placeholder in the term feed URL
func (c *Config) TermFeedURL(year int) string {
	return strings.ReplaceAll(c.SchoolTerms.FeedURL, "{year}", fmt.Sprintf("%d", year))
}

// LoadCredentials reads Pushover credentials from the environment. A .env
// file in the working directory is loaded first if present.
func LoadCredentials() (token, user string) {
	_ = godotenv.Load()
	return os.Getenv("PUSHOVER_API_TOKEN"), os.Getenv("PUSHOVER_USER_KEY")
}
