package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the benchmark run configuration.
type Config struct {
	Host      string   `yaml:"host"`       // Ollama base URL
	Models    []string `yaml:"models"`     // model identifiers to benchmark
	Prompt    string   `yaml:"prompt"`     // scene prompt sent to every model
	OutputDir string   `yaml:"output_dir"` // where generated .obj files go
	RenderDir string   `yaml:"render_dir"` // where preview .png files go
	Render    bool     `yaml:"render"`     // enable the render stage
	Workers   int    `yaml:"workers"`    // worker pool size, 0 = default heuristic
	Timeout   string `yaml:"timeout"`    // per-request timeout as a duration string, e.g. "2m"; empty = none
	FileTag   string `yaml:"file_tag"`   // date tag appended to output filenames
}

// DefaultModels is the built-in registry of Ollama models to benchmark.
var DefaultModels = []string{
	"dolphin-mixtral:latest",
	"llama3.2-vision:11b",
	"mxbai-embed-large:latest",
	"qwq:latest",
	"mistral-small3.1:latest",
	"gemma3:12b",
	"qwen2.5:14b",
	"llama3.2:latest",
	"llama3:latest",
	"llama3:8b",
	"deepseek-r1:14b",
	"qwen2.5:7b",
	"deepseek-r1:32b",
}

// DefaultPrompt is the scene prompt sent to every model.
const DefaultPrompt = "generate the following scene using the OBJ file format as a text file: " +
	"a 19th century wooden cabin with a horse standing next to it"

// DefaultConfig returns a Config with sensible defaults.
// OLLAMA_HOST overrides the default host if set.
func DefaultConfig() *Config {
	host := os.Getenv("OLLAMA_HOST")
	if host == "" {
		host = "http://localhost:11434"
	}
	return &Config{
		Host:      host,
		Models:    DefaultModels,
		Prompt:    DefaultPrompt,
		OutputDir: "test_results",
		RenderDir: "renders",
		FileTag:   "July_2025",
	}
}

// LoadFile merges a YAML config file into cfg. Only fields present in the
// file are overwritten.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// PoolSize returns the effective worker pool size: the configured value, or
// NumCPU+4 capped at 32 when unset.
func (c *Config) PoolSize() int {
	if c.Workers > 0 {
		return c.Workers
	}
	n := runtime.NumCPU() + 4
	if n > 32 {
		n = 32
	}
	return n
}

// RequestTimeout parses the configured timeout. Zero means no timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// EnsureDirs creates the output directories if they don't exist.
func (c *Config) EnsureDirs() error {
	dirs := []string{c.OutputDir}
	if c.Render {
		dirs = append(dirs, c.RenderDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// SafeModelName rewrites a model identifier to a filesystem-safe form.
// Ollama tags use ':' between name and size, which is not portable in paths.
func SafeModelName(model string) string {
	return strings.ReplaceAll(model, ":", "_")
}

// MeshPath returns the deterministic output path for a model's generated mesh.
func (c *Config) MeshPath(model string) string {
	return filepath.Join(c.OutputDir, SafeModelName(model)+"_"+c.FileTag+".obj")
}

// RenderPath returns the deterministic output path for a model's preview image.
func (c *Config) RenderPath(model string) string {
	return filepath.Join(c.RenderDir, SafeModelName(model)+"_"+c.FileTag+".png")
}
