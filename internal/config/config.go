// Package config locates and parses jsxwrap.toml, the project manifest of
// the checker. The manifest is optional; every knob has a default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"

	"jsxwrap/internal/rule"
)

// FileName is the manifest file jsxwrap looks for.
const FileName = "jsxwrap.toml"

// ErrUnknownKey indicates the manifest contains a key the schema does not
// define. Unknown keys are rejected rather than ignored so a typo in a
// context name cannot silently re-enable a default.
var ErrUnknownKey = errors.New("unknown configuration key")

// RuleTable is the [rule] section. Each field is a tri-state: nil keeps the
// built-in default, an explicit value wins either way.
type RuleTable struct {
	Declaration *bool `toml:"declaration"`
	Assignment  *bool `toml:"assignment"`
	Return      *bool `toml:"return"`
	Arrow       *bool `toml:"arrow"`
	Condition   *bool `toml:"condition"`
	Logical     *bool `toml:"logical"`
	Prop        *bool `toml:"prop"`
}

// Overrides converts the table into the rule package's override set.
func (t RuleTable) Overrides() rule.Overrides {
	return rule.Overrides{
		Declaration: t.Declaration,
		Assignment:  t.Assignment,
		Return:      t.Return,
		Arrow:       t.Arrow,
		Condition:   t.Condition,
		Logical:     t.Logical,
		Prop:        t.Prop,
	}
}

// CheckTable is the [check] section.
type CheckTable struct {
	// Jobs caps the parallel file workers. Zero means one per CPU.
	Jobs int `toml:"jobs"`
	// MaxDiagnostics caps collected diagnostics per run. Zero keeps the
	// CLI default.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Exclude lists directory names skipped during directory walks.
	Exclude []string `toml:"exclude"`
}

// File is the parsed manifest.
type File struct {
	// RequiredVersion is a semver constraint the running binary must
	// satisfy, e.g. ">= 0.3".
	RequiredVersion string `toml:"required_version"`

	Rule  RuleTable  `toml:"rule"`
	Check CheckTable `toml:"check"`

	// Path is where the manifest was found. Not part of the schema.
	Path string `toml:"-"`
}

// Default returns the manifest used when no jsxwrap.toml exists.
func Default() File {
	return File{}
}

// Find walks up from startDir to locate jsxwrap.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the manifest at path. Keys outside the schema are an error.
func Load(path string) (File, error) {
	var cfg File
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return File{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return File{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	cfg.Path = path
	return cfg, nil
}

// Discover finds and loads the manifest governing startDir. A missing
// manifest yields the defaults, not an error.
func Discover(startDir string) (File, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return File{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// RuleConfig resolves the [rule] section against the built-in defaults.
func (f File) RuleConfig() rule.Config {
	return rule.Merge(rule.DefaultConfig(), f.Rule.Overrides())
}

// CheckVersion verifies the running binary against required_version.
func (f File) CheckVersion(current string) error {
	if f.RequiredVersion == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(f.RequiredVersion)
	if err != nil {
		return fmt.Errorf("invalid required_version %q: %w", f.RequiredVersion, err)
	}
	ver, err := semver.NewVersion(current)
	if err != nil {
		return fmt.Errorf("invalid binary version %q: %w", current, err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("jsxwrap %s does not satisfy required_version %q", current, f.RequiredVersion)
	}
	return nil
}

// Starter is the manifest written by `jsxwrap init`.
const Starter = `# jsxwrap configuration

# required_version = ">= 0.3"

[rule]
# declaration = true
# assignment = true
# return = true
# arrow = true
# condition = false
# logical = false
# prop = false

[check]
# jobs = 0              # 0 means one worker per CPU
# max_diagnostics = 0   # 0 keeps the built-in cap
exclude = ["node_modules"]
`
