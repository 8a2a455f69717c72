// ABOUTME: Tests for the research output file writer
// ABOUTME: Verifies block format, append semantics and destination handling
package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestFormatBlock(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 5, 7, 0, time.Local)
	got := FormatBlock("Otters are mammals.", at)
	want := "--- Research Output ---\nTimestamp: 2026-03-14_09-05-07\n\nOtters are mammals.\n\n"
	if got != want {
		t.Errorf("FormatBlock() = %q, want %q", got, want)
	}
}

func TestResearchFile_SaveAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "research_output.txt")
	rf := NewResearchFile(path)
	rf.now = fixedClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local))

	for _, text := range []string{"first", "second"} {
		msg, err := rf.Save(context.Background(), text)
		if err != nil {
			t.Fatalf("Save(%q) error = %v", text, err)
		}
		if msg != "Data successfully saved to "+path {
			t.Errorf("Save() = %q", msg)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	block := func(text string) string {
		return "--- Research Output ---\nTimestamp: 2026-01-02_03-04-05\n\n" + text + "\n\n"
	}
	if want := block("first") + block("second"); string(data) != want {
		t.Errorf("file contents = %q, want %q", data, want)
	}
}

func TestResearchFile_KeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("existing notes\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	rf := NewResearchFile(path)
	if _, err := rf.Save(context.Background(), "new"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "existing notes\n--- Research Output ---") {
		t.Errorf("file should keep existing content, got %q", data)
	}
}

func TestResearchFile_SaveTo(t *testing.T) {
	dir := t.TempDir()
	rf := NewResearchFile(filepath.Join(dir, "default.txt"))

	dest := filepath.Join(dir, "nested", "otters.txt")
	msg, err := rf.SaveTo(context.Background(), "otters", dest)
	if err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	if !strings.Contains(msg, dest) {
		t.Errorf("confirmation %q should name %s", msg, dest)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("destination not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "default.txt")); !os.IsNotExist(err) {
		t.Errorf("default file should not be written, stat err = %v", err)
	}
}

func TestResearchFile_DefaultPath(t *testing.T) {
	if got := NewResearchFile("").Path(); got != DefaultOutputFile {
		t.Errorf("Path() = %q, want %q", got, DefaultOutputFile)
	}
}

func TestResearchFile_CancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewResearchFile(path).Save(ctx, "text"); err == nil {
		t.Error("Save() should fail with a cancelled context")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be created for a cancelled save")
	}
}

func TestResearchFile_UnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	// a directory cannot be opened for append
	if _, err := NewResearchFile(dir).Save(context.Background(), "text"); err == nil {
		t.Error("Save() should fail when the destination is a directory")
	}
}
