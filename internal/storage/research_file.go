// ABOUTME: Save collaborator appending timestamped research blocks to a flat text file
// ABOUTME: Opens, appends and closes the file on every call; never truncates
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// DefaultOutputFile is written in the working directory when no destination is given
	DefaultOutputFile = "research_output.txt"

	// TimestampFormat is the layout of the Timestamp line in each block
	TimestampFormat = "2006-01-02_15-04-05"
)

// ResearchFile appends research output blocks to a text file
type ResearchFile struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewResearchFile creates a writer for path (DefaultOutputFile when empty)
func NewResearchFile(path string) *ResearchFile {
	if path == "" {
		path = DefaultOutputFile
	}
	return &ResearchFile{path: path, now: time.Now}
}

// Path returns the default destination
func (f *ResearchFile) Path() string {
	return f.path
}

// Save appends text to the default destination
func (f *ResearchFile) Save(ctx context.Context, text string) (string, error) {
	return f.SaveTo(ctx, text, f.path)
}

// SaveTo appends text to destination, creating the file if needed,
// and returns a confirmation naming the destination.
func (f *ResearchFile) SaveTo(ctx context.Context, text, destination string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if destination == "" {
		destination = f.path
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if dir := filepath.Dir(destination); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.OpenFile(destination, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", destination, err)
	}

	if _, err := file.WriteString(FormatBlock(text, f.now())); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("writing %s: %w", destination, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", destination, err)
	}

	return fmt.Sprintf("Data successfully saved to %s", destination), nil
}

// FormatBlock renders one research output block
func FormatBlock(text string, at time.Time) string {
	return fmt.Sprintf("--- Research Output ---\nTimestamp: %s\n\n%s\n\n", at.Format(TimestampFormat), text)
}
