package env

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "# skybox settings\n\nSKYBOXMAKER_TEST_INPUT=\"faces dir\"\nexport SKYBOXMAKER_TEST_OUTPUT='sky.bmp'\nnot a pair\n=novalue\nSKYBOXMAKER_TEST_KEEP=from-file\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SKYBOXMAKER_TEST_KEEP", "from-env")
	// Registered so the variables Load sets are restored after the test.
	t.Setenv("SKYBOXMAKER_TEST_INPUT", "")
	t.Setenv("SKYBOXMAKER_TEST_OUTPUT", "")
	os.Unsetenv("SKYBOXMAKER_TEST_INPUT")
	os.Unsetenv("SKYBOXMAKER_TEST_OUTPUT")

	set, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if want := []string{"SKYBOXMAKER_TEST_INPUT", "SKYBOXMAKER_TEST_OUTPUT"}; !reflect.DeepEqual(set, want) {
		t.Errorf("set = %v, want %v", set, want)
	}
	if got := os.Getenv("SKYBOXMAKER_TEST_INPUT"); got != "faces dir" {
		t.Errorf("INPUT = %q", got)
	}
	if got := os.Getenv("SKYBOXMAKER_TEST_OUTPUT"); got != "sky.bmp" {
		t.Errorf("OUTPUT = %q", got)
	}
	if got := os.Getenv("SKYBOXMAKER_TEST_KEEP"); got != "from-env" {
		t.Errorf("existing variable overwritten: %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil || set != nil {
		t.Errorf("Load(missing) = %v, %v, want nil, nil", set, err)
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line       string
		key, value string
		ok         bool
	}{
		{"A=1", "A", "1", true},
		{"  B = two  ", "B", "two", true},
		{"# C=3", "", "", false},
		{"", "", "", false},
		{"D", "", "", false},
		{"E=\"\"", "E", "", true},
	}
	for _, tt := range tests {
		k, v, ok := parseLine(tt.line)
		if k != tt.key || v != tt.value || ok != tt.ok {
			t.Errorf("parseLine(%q) = %q, %q, %v, want %q, %q, %v", tt.line, k, v, ok, tt.key, tt.value, tt.ok)
		}
	}
}
