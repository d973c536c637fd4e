package log

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"
)

// dailyFile is an io.Writer appending to dir/YYYY-MM-DD.jsonl, rotating
// when the date changes.
type dailyFile struct {
	dir string

	mu   sync.Mutex
	file *os.File
	date string
}

func newDailyFile(dir string) (*dailyFile, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating debug log dir: %w", err)
	}
	df := &dailyFile{dir: dir}
	df.mu.Lock()
	defer df.mu.Unlock()
	if err := df.rotateLocked(); err != nil {
		return nil, err
	}
	return df, nil
}

// Write implements io.Writer, rotating to a new file on date change.
func (df *dailyFile) Write(p []byte) (int, error) {
	df.mu.Lock()
	defer df.mu.Unlock()

	if today := time.Now().Format("2006-01-02"); today != df.date {
		if err := df.rotateLocked(); err != nil {
			return 0, err
		}
	}
	return df.file.Write(p)
}

// Close closes the underlying file.
func (df *dailyFile) Close() error {
	df.mu.Lock()
	defer df.mu.Unlock()
	if df.file == nil {
		return nil
	}
	err := df.file.Close()
	df.file = nil
	return err
}

func (df *dailyFile) rotateLocked() error {
	if df.file != nil {
		df.file.Close()
	}

	today := time.Now().Format("2006-01-02")
	path := filepath.Join(df.dir, today+".jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	df.file = f
	df.date = today
	return nil
}

// datePattern matches YYYY-MM-DD.jsonl filenames.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.jsonl$`)

// cleanup removes debug files older than retentionDays. Best effort.
func cleanup(dir string, retentionDays int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !datePattern.MatchString(name) {
			continue
		}
		fileDate, err := time.Parse("2006-01-02", name[:10])
		if err != nil {
			continue
		}
		if fileDate.Before(cutoff) {
			os.Remove(filepath.Join(dir, name))
		}
	}
}
