package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Assistant.WindowDays != 7 {
		t.Errorf("default window days = %d, want 7", cfg.Assistant.WindowDays)
	}
	if cfg.UI.Plain {
		t.Error("default plain = true, want false")
	}
	if cfg.UI.Prompt != "Enter a command: " {
		t.Errorf("default prompt = %q, want %q", cfg.UI.Prompt, "Enter a command: ")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
assistant:
  window_days: 14
ui:
  plain: true
  prompt: "> "
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Assistant.WindowDays != 14 {
		t.Errorf("window days = %d, want 14", cfg.Assistant.WindowDays)
	}
	if !cfg.UI.Plain {
		t.Error("plain = false, want true")
	}
	if cfg.UI.Prompt != "> " {
		t.Errorf("prompt = %q, want %q", cfg.UI.Prompt, "> ")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/rolodex.yaml")
	if err != nil {
		t.Fatalf("Load() should return defaults for missing file, got error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(missing) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte("{{invalid yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("Load(invalid YAML) should return error")
	}
}

func TestLoad_UnknownFields(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
assistant:
  window_days: 7
  unknown_setting: true
`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("Load(unknown fields) should return error")
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
assistant:
  window_days: 3
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Assistant.WindowDays != 3 {
		t.Errorf("window days = %d, want 3", cfg.Assistant.WindowDays)
	}
	// Unset fields should retain defaults.
	if cfg.UI.Prompt != "Enter a command: " {
		t.Errorf("prompt = %q, want default", cfg.UI.Prompt)
	}
}

func TestLoadLayered_Priority(t *testing.T) {
	// Setup: user config sets the window, project config overrides the prompt.
	userDir := t.TempDir()
	projectDir := t.TempDir()

	userCfg := filepath.Join(userDir, "rolodex.yaml")
	if err := os.WriteFile(userCfg, []byte(`
assistant:
  window_days: 14
ui:
  prompt: "user> "
`), 0o644); err != nil {
		t.Fatal(err)
	}

	projectCfg := filepath.Join(projectDir, "rolodex.yaml")
	if err := os.WriteFile(projectCfg, []byte(`
ui:
  prompt: "project> "
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLayered(userCfg, projectCfg)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	// Project layer wins for prompt; user layer's window survives.
	if cfg.UI.Prompt != "project> " {
		t.Errorf("prompt = %q, want %q", cfg.UI.Prompt, "project> ")
	}
	if cfg.Assistant.WindowDays != 14 {
		t.Errorf("window days = %d, want 14", cfg.Assistant.WindowDays)
	}
}

func TestLoadLayered_MissingFilesSkipped(t *testing.T) {
	cfg, err := LoadLayered("/nonexistent/a.yaml", "/nonexistent/b.yaml")
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("LoadLayered(missing) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"zero window", func(c *Config) { c.Assistant.WindowDays = 0 }, true},
		{"negative window", func(c *Config) { c.Assistant.WindowDays = -1 }, true},
		{"empty prompt", func(c *Config) { c.UI.Prompt = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ROLODEX_WINDOW_DAYS", "21")
	t.Setenv("ROLODEX_PLAIN", "true")
	t.Setenv("ROLODEX_PROMPT", "env> ")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Assistant.WindowDays != 21 {
		t.Errorf("window days = %d, want 21", cfg.Assistant.WindowDays)
	}
	if !cfg.UI.Plain {
		t.Error("plain = false, want true")
	}
	if cfg.UI.Prompt != "env> " {
		t.Errorf("prompt = %q, want %q", cfg.UI.Prompt, "env> ")
	}
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	t.Setenv("ROLODEX_WINDOW_DAYS", "soon")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("ApplyEnv() with non-numeric window should return error")
	}
}
