package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   DEBUG,
		"INFO":    INFO,
		"warning": WARN,
		" error ": ERROR,
		"fatal":   FATAL,
		"bogus":   INFO,
		"":        INFO,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogger_LevelFilterAndFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: WARN}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("hidden")
	l.WithFields(map[string]interface{}{"b": 2, "a": 1}).Warn("visible %s", "entry")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("INFO line written at WARN level: %q", out)
	}
	if !strings.Contains(out, "[WARN] visible entry | a=1, b=2") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestLogger_FatalCallsExit(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: DEBUG}, &buf)
	code := -1
	l.exit = func(c int) { code = c }

	l.WithFields(nil).Fatal("boom")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestLogger_WritesFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	l, err := New(Config{Level: DEBUG, LogDir: dir, UseColor: true}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Info("to file")

	files, _ := filepath.Glob(filepath.Join(dir, "server-*.log"))
	if len(files) != 1 {
		t.Fatalf("log files = %v, want 1", files)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "[INFO] to file") {
		t.Errorf("file content = %q", data)
	}
	if strings.Contains(string(data), "\033[") {
		t.Error("file output must not contain colour codes")
	}
	if !strings.Contains(buf.String(), "\033[32m") {
		t.Error("console output should be coloured")
	}
}

func TestRotatingFile_SizeLimit(t *testing.T) {
	dir := t.TempDir()
	rf := &rotatingFile{dir: dir, maxSize: 10}
	if err := rf.open(time.Now()); err != nil {
		t.Fatalf("open() error = %v", err)
	}
	rf.Write([]byte("0123456789"))
	rf.Write([]byte("abc"))

	files, _ := filepath.Glob(filepath.Join(dir, "server-*.log"))
	if len(files) != 2 {
		t.Fatalf("files after rotation = %v, want 2", files)
	}
}

func TestRemoveOldLogFiles(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "server-2000-01-01.log")
	fresh := filepath.Join(dir, "server-2999-01-01.log")
	os.WriteFile(old, []byte("x"), 0644)
	os.WriteFile(fresh, []byte("x"), 0644)
	past := time.Now().Add(-72 * time.Hour)
	os.Chtimes(old, past, past)

	removeOldLogFiles(dir, 1, time.Now())

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("old log file should be removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Error("fresh log file should remain")
	}
}
