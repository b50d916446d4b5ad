package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Options are the scan and probe settings read from config.yaml
type Options struct {
	Scan  ScanOptions  `yaml:"scan"`
	Probe ProbeOptions `yaml:"probe"`
	Watch WatchOptions `yaml:"watch"`
}

// ScanOptions controls directory scanning
type ScanOptions struct {
	Workers int      `yaml:"workers"`           // 0 means one per CPU
	Include []string `yaml:"include,omitempty"` // glob patterns on raw file names
	Exclude []string `yaml:"exclude,omitempty"`
}

// ProbeOptions controls the audio fallback probe
type ProbeOptions struct {
	Engine string `yaml:"engine"` // decoder, ffprobe or none
}

// WatchOptions controls the directory watcher
type WatchOptions struct {
	Enabled    bool `yaml:"enabled"`
	DebounceMS int  `yaml:"debounce_ms"`
}

// DefaultOptions returns default options
func DefaultOptions() *Options {
	return &Options{
		Scan: ScanOptions{
			Workers: 0,
		},
		Probe: ProbeOptions{
			Engine: "decoder",
		},
		Watch: WatchOptions{
			Enabled:    true,
			DebounceMS: 500,
		},
	}
}

// Debounce returns the watcher debounce as a duration
func (o *Options) Debounce() time.Duration {
	return time.Duration(o.Watch.DebounceMS) * time.Millisecond
}

// LoadOptions loads options from path; a missing file yields defaults.
// Keys absent from the file keep their default values.
func LoadOptions(path string) (*Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse options file: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// SaveOptions writes options to path, creating its directory
func SaveOptions(path string, opts *Options) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create options directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write options file: %w", err)
	}
	return nil
}

// Validate checks value ranges
func (o *Options) Validate() error {
	if o.Scan.Workers < 0 {
		return fmt.Errorf("scan.workers must not be negative, got %d", o.Scan.Workers)
	}
	if o.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got %d", o.Watch.DebounceMS)
	}
	switch o.Probe.Engine {
	case "", "decoder", "ffprobe", "none":
	default:
		return fmt.Errorf("probe.engine must be decoder, ffprobe or none, got %q", o.Probe.Engine)
	}
	return nil
}
