package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
	if cfg.InputDir != "Skybox" || cfg.Output != "output_cubemap.bmp" {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyboxmaker.yaml")
	data := "output: build/sky.bmp\nfilter: lanczos\naliases:\n  Top: [up]\n  Bottom: [down, dn]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.InputDir != "Skybox" {
		t.Errorf("InputDir = %q, want default", cfg.InputDir)
	}
	if cfg.Output != "build/sky.bmp" || cfg.Filter != "lanczos" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.VertexFormat != "c" {
		t.Errorf("VertexFormat = %q, want default c", cfg.VertexFormat)
	}
	if !reflect.DeepEqual(cfg.Aliases["Bottom"], []string{"down", "dn"}) {
		t.Errorf("Aliases = %v", cfg.Aliases)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("output: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() of invalid YAML should fail")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"SKYBOXMAKER_INPUT_DIR": "faces",
		"SKYBOXMAKER_OUTPUT":    " out.bmp ",
		"SKYBOXMAKER_DEBUG":     "true",
		"SKYBOXMAKER_FILTER":    "",
	}
	cfg := Default()
	if err := ApplyEnv(&cfg, func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.InputDir != "faces" || cfg.Output != "out.bmp" || !cfg.Debug {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Filter != "linear" {
		t.Errorf("empty variable overrode Filter: %q", cfg.Filter)
	}

	env["SKYBOXMAKER_DEBUG"] = "sometimes"
	if err := ApplyEnv(&cfg, func(k string) string { return env[k] }); err == nil {
		t.Error("ApplyEnv() with bad DEBUG should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"obj upper", func(c *Config) { c.VertexFormat = "OBJ" }, false},
		{"bad format", func(c *Config) { c.VertexFormat = "fbx" }, true},
		{"bad filter", func(c *Config) { c.Filter = "smooth" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "skyboxmaker.yaml")
	want := Default()
	want.Aliases = map[string][]string{"Top": {"up"}}
	want.LogFile = "logs/skyboxmaker.log"
	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load(Save(c)) = %+v, want %+v", got, want)
	}
}

func TestCompositeOptions(t *testing.T) {
	cfg := Default()
	cfg.Aliases = map[string][]string{"Left": {"nx"}}
	opts := cfg.CompositeOptions()
	if opts.InputDir != cfg.InputDir || opts.Output != cfg.Output || opts.Filter != cfg.Filter {
		t.Errorf("CompositeOptions() = %+v", opts)
	}
	if !reflect.DeepEqual(opts.Aliases, cfg.Aliases) {
		t.Errorf("Aliases = %v", opts.Aliases)
	}
}
