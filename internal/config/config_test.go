package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "")
	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatal("expected to find the manifest from a nested directory")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want a manifest in %q", path, root)
	}
}

func TestFindAbsent(t *testing.T) {
	_, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if ok {
		t.Error("expected no manifest in an empty tree")
	}
}

func TestLoadRuleOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
required_version = ">= 0.1"

[rule]
condition = true
return = false

[check]
jobs = 4
exclude = ["node_modules", "dist"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	resolved := cfg.RuleConfig()
	if !resolved.Condition {
		t.Error("condition = true override not applied")
	}
	if resolved.Return {
		t.Error("return = false override not applied")
	}
	if !resolved.Declaration {
		t.Error("untouched contexts must keep their defaults")
	}
	if cfg.Check.Jobs != 4 {
		t.Errorf("jobs = %d, want 4", cfg.Check.Jobs)
	}
	if len(cfg.Check.Exclude) != 2 {
		t.Errorf("exclude = %v", cfg.Check.Exclude)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[rule]
declaratoin = true
`)

	_, err := Load(path)
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey for a misspelled context, got %v", err)
	}
}

func TestDiscoverDefaultsWhenAbsent(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("expected an empty Path for defaults, got %q", cfg.Path)
	}
	if cfg.RuleConfig() != (File{}).RuleConfig() {
		t.Error("defaults must match an empty manifest")
	}
}

func TestCheckVersion(t *testing.T) {
	cfg := File{RequiredVersion: ">= 0.3"}
	if err := cfg.CheckVersion("0.3.0"); err != nil {
		t.Errorf("0.3.0 should satisfy >= 0.3: %v", err)
	}
	if err := cfg.CheckVersion("0.2.1"); err == nil {
		t.Error("0.2.1 must not satisfy >= 0.3")
	}
	if err := (File{}).CheckVersion("0.0.1"); err != nil {
		t.Errorf("empty constraint must always pass: %v", err)
	}
	bad := File{RequiredVersion: "not-a-constraint"}
	if err := bad.CheckVersion("0.3.0"); err == nil {
		t.Error("invalid constraint must error")
	}
}

func TestStarterParses(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, Starter)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("the starter manifest must load cleanly: %v", err)
	}
	if len(cfg.Check.Exclude) != 1 || cfg.Check.Exclude[0] != "node_modules" {
		t.Errorf("starter exclude = %v", cfg.Check.Exclude)
	}
}
