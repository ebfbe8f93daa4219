package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"vennsets/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Affix != "default_out" {
		t.Errorf("Affix = %s, want default_out", cfg.Affix)
	}
	if cfg.Output.Dir != "./figures" {
		t.Errorf("Output.Dir = %s, want ./figures", cfg.Output.Dir)
	}
	if cfg.Display {
		t.Error("Display should default to false")
	}
	if cfg.Watch.Debounce == nil || cfg.Watch.Debounce.Duration() != 500*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 500ms", cfg.Watch.Debounce)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Affix = "tumor_vs_normal"
	cfg.Labels = []string{"Tumor", "Normal"}
	cfg.Output.Reports = []string{"json"}
	d := Duration(2 * time.Second)
	cfg.Watch.Debounce = &d

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, path, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if path != configPath {
		t.Errorf("path = %s, want %s", path, configPath)
	}
	if loaded.Affix != "tumor_vs_normal" {
		t.Errorf("Affix = %s, want tumor_vs_normal", loaded.Affix)
	}
	if len(loaded.Labels) != 2 || loaded.Labels[1] != "Normal" {
		t.Errorf("Labels = %v", loaded.Labels)
	}
	if loaded.Watch.Debounce.Duration() != 2*time.Second {
		t.Errorf("Debounce = %s, want 2s", loaded.Watch.Debounce.Duration())
	}
}

func TestLoadFromPathAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venn.yaml")
	if err := os.WriteFile(path, []byte("display: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if !cfg.Display {
		t.Error("Display should be true")
	}
	if cfg.Affix != DefaultAffix || cfg.Output.Dir != DefaultOutputDir {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadFromPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venn.yaml")
	if err := os.WriteFile(path, []byte("watch:\n  debounce: soon\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadFromPath(path); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestFindConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg := DefaultConfig()
	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	chdir(t, tmpDir)

	found := FindConfigPath()
	if found == "" {
		t.Error("FindConfigPath() should find config in working directory")
	}

	// Explicit path doesn't exist, should fall back
	t.Setenv(EnvConfigPath, "/nonexistent/path.yaml")
	found = FindConfigPath()
	if found == "" {
		t.Error("FindConfigPath() should fall back when env path doesn't exist")
	}

	explicit := filepath.Join(t.TempDir(), "other.yaml")
	if err := cfg.Save(explicit); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, explicit)
	if found = FindConfigPath(); found != explicit {
		t.Errorf("FindConfigPath() = %s, want %s", found, explicit)
	}
}

func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	content := "VENN_AFFIX=from_dotenv\nVENN_REPORT=json, yaml\nVENN_DISPLAY=true\n"
	if err := os.WriteFile(dotenv, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvOutput, "/srv/venn")
	t.Setenv(EnvAffix, "from_process")

	lookup, err := EnvLookup(dotenv)
	if err != nil {
		t.Fatalf("EnvLookup() error: %v", err)
	}

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}

	if cfg.Affix != "from_process" {
		t.Errorf("Affix = %s, process env should win over .env", cfg.Affix)
	}
	if cfg.Output.Dir != "/srv/venn" {
		t.Errorf("Output.Dir = %s", cfg.Output.Dir)
	}
	if len(cfg.Output.Reports) != 2 || cfg.Output.Reports[1] != "yaml" {
		t.Errorf("Reports = %v", cfg.Output.Reports)
	}
	if !cfg.Display {
		t.Error("Display should be true")
	}
}

func TestSummary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Labels = []string{"Ctrl"}
	cfg.Archive.Path = "runs.db"

	got := cfg.Summary()
	for _, want := range []string{"Affix: default_out", "Title: default_out", "Labels: Ctrl, List 2, List 3", `Archive: "runs.db"`, "Log level: info"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() missing %q:\n%s", want, got)
		}
	}
}

func TestApplyEnvInvalidDisplay(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key == EnvDisplay {
			return "sometimes", true
		}
		return "", false
	}

	cfg := DefaultConfig()
	err := cfg.ApplyEnv(lookup)
	if err == nil {
		t.Fatal("expected error for unparsable VENN_DISPLAY")
	}
	if !strings.Contains(err.Error(), EnvDisplay) || !strings.Contains(err.Error(), "sometimes") {
		t.Errorf("error should name the variable and value: %v", err)
	}
	if cfg.Display {
		t.Error("Display should be unchanged")
	}
}

func TestEnvLookupMissingFile(t *testing.T) {
	lookup, err := EnvLookup(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("missing .env should not fail: %v", err)
	}
	if _, ok := lookup("VENN_SURELY_UNSET"); ok {
		t.Error("expected unset variable")
	}
}

func TestResolve(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("defaults", func(t *testing.T) {
		run, err := Resolve(cfg, Overrides{Lists: []string{"a.txt", "b.txt"}})
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if run.Arity() != 2 {
			t.Errorf("Arity() = %d, want 2", run.Arity())
		}
		if run.Lists[0].Label != "List 1" || run.Lists[1].Label != "List 2" {
			t.Errorf("labels = %+v", run.Lists)
		}
		if run.Affix != "default_out" || run.Title != "default_out" {
			t.Errorf("affix/title = %s/%s", run.Affix, run.Title)
		}
		if run.OutDir != "./figures" {
			t.Errorf("OutDir = %s", run.OutDir)
		}
	})

	t.Run("title defaults to affix", func(t *testing.T) {
		run, err := Resolve(cfg, Overrides{Lists: []string{"a.txt"}, Affix: "exp1"})
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if run.Title != "exp1" {
			t.Errorf("Title = %s, want exp1", run.Title)
		}
	})

	t.Run("flags beat config", func(t *testing.T) {
		c := DefaultConfig()
		c.Labels = []string{"Cfg A", "Cfg B", "Cfg C"}
		c.Display = true
		off := false
		run, err := Resolve(c, Overrides{
			Lists:   []string{" a.txt ", "b.txt", "c.txt"},
			Labels:  []string{"", " Flag B "},
			Display: &off,
			Reports: []string{"yaml"},
		})
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		want := []string{"Cfg A", "Flag B", "Cfg C"}
		for i, l := range run.Lists {
			if l.Label != want[i] {
				t.Errorf("label %d = %q, want %q", i, l.Label, want[i])
			}
		}
		if run.Lists[0].Path != "a.txt" {
			t.Errorf("path not trimmed: %q", run.Lists[0].Path)
		}
		if run.Display {
			t.Error("Display flag should override config")
		}
	})

	t.Run("rejects four lists", func(t *testing.T) {
		_, err := Resolve(cfg, Overrides{Lists: []string{"a", "b", "c", "d"}})
		var arityErr *domain.UnsupportedArityError
		if !errors.As(err, &arityErr) {
			t.Fatalf("expected UnsupportedArityError, got %v", err)
		}
	})

	t.Run("rejects gap", func(t *testing.T) {
		if _, err := Resolve(cfg, Overrides{Lists: []string{"a", "", "c"}}); err == nil {
			t.Error("expected error for list 3 without list 2")
		}
	})

	t.Run("requires list 1", func(t *testing.T) {
		if _, err := Resolve(cfg, Overrides{}); err == nil {
			t.Error("expected error without lists")
		}
		if _, err := Resolve(cfg, Overrides{Lists: []string{"", "b"}}); err == nil {
			t.Error("expected error without list 1")
		}
	})

	t.Run("trailing empty slots ignored", func(t *testing.T) {
		run, err := Resolve(cfg, Overrides{Lists: []string{"a", "", ""}})
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if run.Arity() != 1 {
			t.Errorf("Arity() = %d, want 1", run.Arity())
		}
	})

	t.Run("rejects unknown report", func(t *testing.T) {
		if _, err := Resolve(cfg, Overrides{Lists: []string{"a"}, Reports: []string{"xml"}}); err == nil {
			t.Error("expected error for unknown report format")
		}
	})

	t.Run("rejects separators in labels", func(t *testing.T) {
		if _, err := Resolve(cfg, Overrides{Lists: []string{"a"}, Labels: []string{"x/y"}}); err == nil {
			t.Error("expected error for label with separator")
		}
	})
}

func TestDuration(t *testing.T) {
	d := Duration(5 * time.Minute)

	if d.Duration() != 5*time.Minute {
		t.Errorf("Duration() = %s, want 5m", d.Duration())
	}

	marshaled, err := d.MarshalYAML()
	if err != nil {
		t.Fatalf("MarshalYAML() error: %v", err)
	}
	if marshaled != "5m0s" {
		t.Errorf("MarshalYAML() = %v, want 5m0s", marshaled)
	}
}

// chdir changes the working directory for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
