package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0644); err != nil {
		t.Fatalf("writing %s: %v", FileName, err)
	}
}

func TestLoadMissingFileIsNotPresent(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Present {
		t.Fatalf("expected Present=false for a directory with no %s", FileName)
	}
	if cfg.CC != "" || cfg.Output != "" || cfg.LogLevel != "" || cfg.KeepLL {
		t.Fatalf("expected a zero-value Config, got %+v", cfg)
	}
}

func TestLoadParsesFields(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[coal]
cc = "gcc"
output = "prog"
loglevel = "verbose"
keep-ll = true
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Present {
		t.Fatalf("expected Present=true")
	}
	if cfg.CC != "gcc" {
		t.Errorf("CC = %q, want gcc", cfg.CC)
	}
	if cfg.Output != "prog" {
		t.Errorf("Output = %q, want prog", cfg.Output)
	}
	if cfg.LogLevel != "verbose" {
		t.Errorf("LogLevel = %q, want verbose", cfg.LogLevel)
	}
	if !cfg.KeepLL {
		t.Errorf("KeepLL = false, want true")
	}
}

func TestLoadMissingCoalTableLeavesZeroValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `other = "value"`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Present {
		t.Fatalf("expected Present=true once the file exists, regardless of its contents")
	}
	if cfg.CC != "" || cfg.Output != "" {
		t.Fatalf("expected zero-value fields when [coal] is absent, got %+v", cfg)
	}
}

func TestLoadPartialTableLeavesRestZero(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[coal]
cc = "clang-15"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CC != "clang-15" {
		t.Errorf("CC = %q, want clang-15", cfg.CC)
	}
	if cfg.Output != "" || cfg.LogLevel != "" || cfg.KeepLL {
		t.Fatalf("expected unset fields to stay zero-valued, got %+v", cfg)
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `[coal\nthis is not valid toml`)

	if _, err := Load(dir); err == nil {
		t.Fatalf("expected an error for malformed TOML")
	}
}
