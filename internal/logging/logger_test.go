package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/assetforge/internal/config"
)

func TestLogger_FileSink(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "nested", "run.log")

	log, err := NewLogger(config.ColorNever, logPath)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	log.Info("processing %s", "icon_a.png")
	log.Success("repaired %d files", 3)
	log.Warn("skipping %s", "icon_b.png")
	log.Error("cannot read %s", "icon_c.png")
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"[INFO] processing icon_a.png",
		"[SUCCESS] repaired 3 files",
		"[WARN] skipping icon_b.png",
		"[ERROR] cannot read icon_c.png",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %q\ngot:\n%s", want, content)
		}
	}
	if strings.Contains(content, "\033[") {
		t.Error("file sink should receive plain lines, found ANSI escapes")
	}
}

func TestLogger_FileSinkAppends(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "run.log")

	for i := 0; i < 2; i++ {
		log, err := NewLogger(config.ColorNever, logPath)
		if err != nil {
			t.Fatalf("NewLogger: %v", err)
		}
		log.Info("run %d", i)
		log.Close()
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "run 0") || !strings.Contains(string(data), "run 1") {
		t.Errorf("log file should contain both runs, got:\n%s", data)
	}
}

func TestLogger_DebugGatedByVerbose(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "run.log")

	log, err := NewLogger(config.ColorNever, logPath)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Debug(false, "hidden detail")
	log.Debug(true, "visible detail")
	log.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "hidden detail") {
		t.Error("Debug with verbose=false should be a no-op")
	}
	if !strings.Contains(content, "[DEBUG] visible detail") {
		t.Errorf("Debug with verbose=true missing, got:\n%s", content)
	}
}

func TestLogger_NoFileSink(t *testing.T) {
	log, err := NewLogger(config.ColorNever, "")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	// No sink: logging and closing must be safe no-ops on the file side.
	log.Info("stdout only")
	if err := log.Close(); err != nil {
		t.Errorf("Close without file: %v", err)
	}
}
