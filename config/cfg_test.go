package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if !cfg.Output.Indent {
		t.Error("Default config should request indented output")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console log level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("Default file log level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
output:
  indent: false
logging:
  console:
    level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("unable to write test config: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Output.Indent {
		t.Error("file value for output.indent was not applied")
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("console log level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
	// values absent from the file keep template defaults
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("file log level = %q, want default none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_UnknownField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: 1\nnot_a_field: true\n"), 0644); err != nil {
		t.Fatalf("unable to write test config: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Fatal("LoadConfiguration() expected error for unknown field")
	}
}

func TestLoadConfiguration_BadLogLevel(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
logging:
  console:
    level: verbose
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("unable to write test config: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Fatal("LoadConfiguration() expected validation error for bad log level")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "version: 1") {
		t.Errorf("Dump() output missing version: %s", data)
	}
}
