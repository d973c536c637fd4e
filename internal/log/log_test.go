package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInit_FileLogging(t *testing.T) {
	tmpDir := t.TempDir()

	if err := Init(Options{DebugDir: tmpDir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("session started", "rows", 24, "cols", 80)
	Close()

	today := time.Now().Format("2006-01-02")
	content, err := os.ReadFile(filepath.Join(tmpDir, today+".jsonl"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(content), "session started") {
		t.Errorf("expected log file to contain 'session started', got: %s", content)
	}
}

func TestInit_InteractiveSuppressesInfo(t *testing.T) {
	var stderr bytes.Buffer
	if err := Init(Options{Verbose: true, Interactive: true, Stderr: &stderr}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("should not reach stderr")
	Warn("should reach stderr")

	out := stderr.String()
	if strings.Contains(out, "should not reach stderr") {
		t.Errorf("interactive mode leaked info to stderr: %s", out)
	}
	if !strings.Contains(out, "should reach stderr") {
		t.Errorf("warn missing from stderr: %s", out)
	}
}

func TestInit_VerboseEnablesDebug(t *testing.T) {
	var stderr bytes.Buffer
	if err := Init(Options{Verbose: true, Stderr: &stderr}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Debug("debug detail")

	if !strings.Contains(stderr.String(), "debug detail") {
		t.Errorf("verbose non-interactive should emit debug, got: %s", stderr.String())
	}
}

func TestInit_DefaultLevelIsWarn(t *testing.T) {
	var stderr bytes.Buffer
	if err := Init(Options{Stderr: &stderr}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("quiet by default")
	Error("always visible")

	out := stderr.String()
	if strings.Contains(out, "quiet by default") {
		t.Errorf("info leaked at default level: %s", out)
	}
	if !strings.Contains(out, "always visible") {
		t.Errorf("error missing from stderr: %s", out)
	}
}
