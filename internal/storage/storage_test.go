package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCalendar(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	first, err := store.WriteCalendar("test.ics", []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))
	if err != nil {
		t.Fatalf("WriteCalendar failed: %v", err)
	}
	if !first.Changed {
		t.Error("first write should report changed")
	}
	if first.Previous != nil {
		t.Error("first write should have no previous payload")
	}

	// Same payload again: file rewritten but unchanged
	second, err := store.WriteCalendar("test.ics", []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))
	if err != nil {
		t.Fatalf("WriteCalendar failed: %v", err)
	}
	if second.Changed {
		t.Error("identical payload should not report changed")
	}

	// Different payload: changed with previous returned
	third, err := store.WriteCalendar("test.ics", []byte("BEGIN:VCALENDAR\r\nX:1\r\nEND:VCALENDAR\r\n"))
	if err != nil {
		t.Fatalf("WriteCalendar failed: %v", err)
	}
	if !third.Changed {
		t.Error("different payload should report changed")
	}
	if string(third.Previous) != "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n" {
		t.Errorf("previous payload = %q", third.Previous)
	}

	data, err := os.ReadFile(filepath.Join(dir, "test.ics"))
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(data) != "BEGIN:VCALENDAR\r\nX:1\r\nEND:VCALENDAR\r\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	if _, err := New(dir); err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}
