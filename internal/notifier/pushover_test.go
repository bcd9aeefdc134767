package notifier

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestPushoverNotify(t *testing.T) {
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/1/messages.json" {
			t.Errorf("path = %s, want /1/messages.json", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		gotForm = map[string]string{
			"token":   r.PostFormValue("token"),
			"user":    r.PostFormValue("user"),
			"message": r.PostFormValue("message"),
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":1,"request":"abc123"}`)
	}))
	defer server.Close()

	n := newPushoverNotifier("app-token", "user-key", server.URL+"/")
	if err := n.Notify("calendars updated"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	want := map[string]string{
		"token":   "app-token",
		"user":    "user-key",
		"message": "calendars updated",
	}
	for k, v := range want {
		if gotForm[k] != v {
			t.Errorf("form %s = %q, want %q", k, gotForm[k], v)
		}
	}
}

func TestPushoverNotifyAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"status":0,"errors":["application token is invalid"]}`)
	}))
	defer server.Close()

	n := newPushoverNotifier("bad-token", "user-key", server.URL+"/")
	err := n.Notify("calendars updated")
	if err == nil {
		t.Fatal("expected error for rejected request")
	}
	if !strings.Contains(err.Error(), "application token is invalid") {
		t.Errorf("error %q should include API error detail", err)
	}
}

func TestPushoverNotifyEmptyMessage(t *testing.T) {
	n := newPushoverNotifier("app-token", "user-key", apiBaseURL)
	if err := n.Notify(""); err == nil {
		t.Fatal("expected error for empty message")
	}
}

func TestNewPushoverNotifierMissingCredentials(t *testing.T) {
	os.Unsetenv("PUSHOVER_API_TOKEN")
	os.Unsetenv("PUSHOVER_USER_KEY")

	if _, err := NewPushoverNotifier(); err == nil {
		t.Fatal("expected error when credentials are missing")
	}

	t.Setenv("PUSHOVER_API_TOKEN", "app-token")
	t.Setenv("PUSHOVER_USER_KEY", "user-key")
	if _, err := NewPushoverNotifier(); err != nil {
		t.Fatalf("NewPushoverNotifier failed with credentials set: %v", err)
	}
}
