package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"skyboxmaker/internal/cubemap"
	"skyboxmaker/internal/uvgen"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "skyboxmaker.yaml"

// EnvPrefix prefixes every environment override (e.g. SKYBOXMAKER_INPUT_DIR).
const EnvPrefix = "SKYBOXMAKER_"

// Config holds the tool settings. Every field has a default, so the file is optional.
type Config struct {
	InputDir     string              `yaml:"input_dir"`
	Output       string              `yaml:"output"`
	Filter       string              `yaml:"filter"`
	VertexFormat string              `yaml:"vertex_format"`
	LogFile      string              `yaml:"log_file,omitempty"`
	Debug        bool                `yaml:"debug,omitempty"`
	Aliases      map[string][]string `yaml:"aliases,omitempty"`
}

// Default returns the settings the tool uses with no config file: faces from Skybox/, atlas written to
// output_cubemap.bmp, linear resampling, vertex data as C-style literals.
func Default() Config {
	return Config{
		InputDir:     cubemap.DefaultInputDir,
		Output:       cubemap.DefaultOutput,
		Filter:       cubemap.DefaultFilter,
		VertexFormat: uvgen.FormatC,
	}
}

// Load reads the YAML file at path and lays its non-empty values over Default(). A missing file is not an
// error and yields Default(); a file that does not parse is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := copier.CopyWithOption(&cfg, &file, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from SKYBOXMAKER_* variables that are set and non-empty.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	strs := map[string]*string{
		"INPUT_DIR":     &cfg.InputDir,
		"OUTPUT":        &cfg.Output,
		"FILTER":        &cfg.Filter,
		"VERTEX_FORMAT": &cfg.VertexFormat,
		"LOG_FILE":      &cfg.LogFile,
	}
	for key, dst := range strs {
		if v := strings.TrimSpace(getenv(EnvPrefix + key)); v != "" {
			*dst = v
		}
	}
	if v := strings.TrimSpace(getenv(EnvPrefix + "DEBUG")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %sDEBUG: %w", EnvPrefix, err)
		}
		cfg.Debug = b
	}
	return nil
}

// Validate checks the values that name something: the resampling filter and the vertex format.
func (c Config) Validate() error {
	if _, err := cubemap.ParseFilter(c.Filter); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for _, f := range uvgen.Formats {
		if strings.EqualFold(c.VertexFormat, f) {
			return nil
		}
	}
	return fmt.Errorf("config: unknown vertex_format %q (want one of %s)", c.VertexFormat, strings.Join(uvgen.Formats, ", "))
}

// CompositeOptions returns the cubemap options described by c.
func (c Config) CompositeOptions() cubemap.Options {
	return cubemap.Options{
		InputDir: c.InputDir,
		Output:   c.Output,
		Filter:   c.Filter,
		Aliases:  c.Aliases,
	}
}

// Save writes c as YAML to path, creating the directory if needed.
func Save(path string, c Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
