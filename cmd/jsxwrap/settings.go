package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jsxwrap/internal/config"
	"jsxwrap/internal/driver"
	"jsxwrap/internal/version"
)

// loadSettings resolves the manifest for targetPath and assembles driver
// options from it plus the root flags. The manifest is searched upward from
// the target unless --config points at one explicitly.
func loadSettings(cmd *cobra.Command, targetPath string) (config.File, driver.Options, error) {
	var opts driver.Options

	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.File{}, opts, err
	}

	var cfg config.File
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return config.File{}, opts, err
		}
	} else {
		startDir, dirErr := searchRoot(targetPath)
		if dirErr != nil {
			return config.File{}, opts, dirErr
		}
		cfg, err = config.Discover(startDir)
		if err != nil {
			return config.File{}, opts, err
		}
	}

	if err := cfg.CheckVersion(version.Number); err != nil {
		return config.File{}, opts, err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return config.File{}, opts, err
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = cfg.Check.MaxDiagnostics
	}

	opts = driver.Options{
		Config:         cfg.RuleConfig(),
		MaxDiagnostics: maxDiagnostics,
		Jobs:           cfg.Check.Jobs,
		Exclude:        cfg.Check.Exclude,
		ToolVersion:    version.Number,
	}
	return cfg, opts, nil
}

// searchRoot returns the directory the manifest search starts from: the
// target itself when it is a directory, its parent otherwise.
func searchRoot(targetPath string) (string, error) {
	abs, err := filepath.Abs(targetPath)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", targetPath, err)
	}
	st, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat %q: %w", targetPath, err)
	}
	if st.IsDir() {
		return abs, nil
	}
	return filepath.Dir(abs), nil
}
