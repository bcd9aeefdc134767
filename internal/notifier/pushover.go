package notifier

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dghubble/sling"
)

const (
	apiBaseURL = "https://api.pushover.net/"
	timeout    = 10 * time.Second
)

// PushoverNotifier posts messages to the Pushover API
type PushoverNotifier struct {
	token string
	user  string
	base  *sling.Sling
}

// NewPushoverNotifier creates a new Pushover notifier using environment variables
// Required environment variables:
// - PUSHOVER_API_TOKEN
// - PUSHOVER_USER_KEY
func NewPushoverNotifier() (*PushoverNotifier, error) {
	token := os.Getenv("PUSHOVER_API_TOKEN")
	user := os.Getenv("PUSHOVER_USER_KEY")

	if token == "" || user == "" {
		return nil, fmt.Errorf("missing required Pushover credentials in environment variables")
	}

	return newPushoverNotifier(token, user, apiBaseURL), nil
}

func newPushoverNotifier(token, user, baseURL string) *PushoverNotifier {
	return &PushoverNotifier{
		token: token,
		user:  user,
		base: sling.New().
			Base(baseURL).
			Client(&http.Client{Timeout: timeout}),
	}
}

type messageParams struct {
	Token   string `url:"token"`
	User    string `url:"user"`
	Message string `url:"message"`
}

type apiResponse struct {
	Status  int      `json:"status"`
	Request string   `json:"request"`
	Errors  []string `json:"errors"`
}

// Notify posts a message to the configured Pushover user
func (n *PushoverNotifier) Notify(text string) error {
	if text == "" {
		return fmt.Errorf("message text is required")
	}

	params := &messageParams{
		Token:   n.token,
		User:    n.user,
		Message: text,
	}

	result := new(apiResponse)
	resp, err := n.base.New().Post("1/messages.json").BodyForm(params).Receive(result, result)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pushover API error (status %d): %s", resp.StatusCode, strings.Join(result.Errors, "; "))
	}
	if result.Status != 1 {
		return fmt.Errorf("pushover API error: %s", strings.Join(result.Errors, "; "))
	}

	return nil
}
