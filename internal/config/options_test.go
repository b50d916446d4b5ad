package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadOptions_MissingFile(t *testing.T) {
	opts, err := LoadOptions(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	defaults := DefaultOptions()
	if opts.Probe.Engine != defaults.Probe.Engine {
		t.Errorf("Expected probe engine %s, got %s", defaults.Probe.Engine, opts.Probe.Engine)
	}
	if opts.Debounce() != 500*time.Millisecond {
		t.Errorf("Expected debounce 500ms, got %v", opts.Debounce())
	}
	if !opts.Watch.Enabled {
		t.Error("Expected watcher enabled by default")
	}
}

func TestLoadOptions_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "scan:\n  workers: 3\n  exclude:\n    - \"*.tmp\"\nprobe:\n  engine: none\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if opts.Scan.Workers != 3 {
		t.Errorf("Expected 3 workers, got %d", opts.Scan.Workers)
	}
	if len(opts.Scan.Exclude) != 1 || opts.Scan.Exclude[0] != "*.tmp" {
		t.Errorf("Unexpected exclude patterns %v", opts.Scan.Exclude)
	}
	if opts.Probe.Engine != "none" {
		t.Errorf("Expected probe engine none, got %s", opts.Probe.Engine)
	}
	// untouched keys keep defaults
	if opts.Watch.DebounceMS != 500 {
		t.Errorf("Expected default debounce, got %d", opts.Watch.DebounceMS)
	}
}

func TestLoadOptions_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "scan: [unclosed"},
		{"negative workers", "scan:\n  workers: -1\n"},
		{"unknown engine", "probe:\n  engine: magic\n"},
	}

	for _, test := range tests {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(test.content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadOptions(path); err == nil {
			t.Errorf("%s: expected error, got nil", test.name)
		}
	}
}

func TestSaveOptions_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	opts := DefaultOptions()
	opts.Scan.Include = []string{"*"}
	opts.Probe.Engine = "ffprobe"

	if err := SaveOptions(path, opts); err != nil {
		t.Fatalf("SaveOptions failed: %v", err)
	}

	loaded, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if loaded.Probe.Engine != "ffprobe" || len(loaded.Scan.Include) != 1 {
		t.Errorf("Unexpected loaded options %+v", loaded)
	}
}
