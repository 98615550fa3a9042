package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestLoggerWritesLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Out: &buf})
	l.Infof("loaded %d faces", 6)
	l.Warnf("Mismatched sizes: %dx%d to %dx%d - having to resize", 4, 4, 8, 8)
	l.Errorf("boom")
	l.Debugf("hidden")

	want := "[INFO] loaded 6 faces\n[WARN] Mismatched sizes: 4x4 to 8x8 - having to resize\n[ERROR] boom\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if got := len(l.Lines()); got != 3 {
		t.Errorf("len(Lines()) = %d, want 3", got)
	}
}

func TestLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Out: &buf, Debug: true})
	l.Debugf("skip %s", "notes.txt")
	if buf.String() != "[DEBUG] skip notes.txt\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLoggerAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "skyboxmaker.log")
	l := New(Options{Out: &bytes.Buffer{}, FilePath: path})
	l.Infof("first")
	l.Infof("second")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("log file has %d lines, want 2", len(lines))
	}
	stamp := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[INFO\] first$`)
	if !stamp.MatchString(lines[0]) {
		t.Errorf("line %q lacks timestamp prefix", lines[0])
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	l := Discard()
	l.Infof("a")
	lines := l.Lines()
	lines[0] = "changed"
	if l.Lines()[0] != "[INFO] a" {
		t.Error("Lines() exposes internal storage")
	}
}
