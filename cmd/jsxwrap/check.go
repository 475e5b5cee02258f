package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"jsxwrap/internal/diagfmt"
	"jsxwrap/internal/driver"
	"jsxwrap/internal/source"
	"jsxwrap/internal/watch"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.jsx|directory>",
	Short: "Check for multiline JSX missing parentheses",
	Long:  `Check scans a JSX file or every *.jsx / *.js file under a directory and reports multiline JSX expressions that are not wrapped in parentheses`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "disable the clean-verdict disk cache")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("watch", false, "re-run the check when watched files change")
	checkCmd.Flags().String("ui", "auto", "progress interface for directory runs (auto|on|off)")
}

type checkSettings struct {
	format     string
	quiet      bool
	color      bool
	prettyOpts diagfmt.PrettyOpts
	jsonOpts   diagfmt.JSONOpts
	watch      bool
	ui         uiMode
	opts       driver.Options
}

func runCheck(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return err
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return err
	}
	watchFlag, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}

	_, opts, err := loadSettings(cmd, targetPath)
	if err != nil {
		return err
	}
	if jobs > 0 {
		opts.Jobs = jobs
	}
	if !noCache {
		if cache, cacheErr := driver.OpenResultCache("jsxwrap"); cacheErr == nil {
			opts.Cache = cache
		}
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	colored := useColor(colorFlag, os.Stdout)

	settings := checkSettings{
		format: format,
		quiet:  quiet,
		color:  colored,
		prettyOpts: diagfmt.PrettyOpts{
			Color:     colored,
			Context:   2,
			PathMode:  pathMode,
			ShowNotes: withNotes,
			ShowFixes: suggest,
		},
		jsonOpts: diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
			IncludeFixes:     suggest,
			IncludePreviews:  suggest,
		},
		watch: watchFlag,
		ui:    mode,
		opts:  opts,
	}

	st, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if watchFlag {
		if !st.IsDir() {
			return fmt.Errorf("--watch requires a directory")
		}
		return runCheckWatch(cmd, targetPath, settings)
	}

	var flagged bool
	if st.IsDir() {
		flagged, err = checkDirOnce(cmd.Context(), targetPath, settings)
	} else {
		flagged, err = checkFileOnce(targetPath, settings)
	}
	if err != nil {
		return err
	}
	if flagged {
		// diagnostics already printed, suppress cobra noise
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func checkFileOnce(path string, settings checkSettings) (bool, error) {
	fs := source.NewFileSet()
	result, err := driver.CheckFile(fs, path, settings.opts)
	if err != nil {
		return false, fmt.Errorf("check failed: %w", err)
	}

	switch settings.format {
	case "json":
		if err := diagfmt.JSON(os.Stdout, result.Bag, fs, settings.jsonOpts); err != nil {
			return false, fmt.Errorf("failed to format diagnostics: %w", err)
		}
	default:
		diagfmt.Pretty(os.Stdout, result.Bag, fs, settings.prettyOpts)
		printSummary(os.Stdout, []driver.Result{result}, settings)
	}
	return !result.Clean(), nil
}

func checkDirOnce(ctx context.Context, dir string, settings checkSettings) (bool, error) {
	var (
		fs      *source.FileSet
		results []driver.Result
		err     error
	)

	if settings.format == "pretty" && shouldUseTUI(settings.ui) {
		files, listErr := driver.ListJSXFiles(dir, settings.opts.Exclude)
		if listErr != nil {
			return false, listErr
		}
		if len(files) > 0 {
			fs, results, err = runCheckDirWithUI(ctx, "checking "+dir, dir, files, settings.opts)
		} else {
			fs, results, err = driver.CheckDir(ctx, dir, settings.opts)
		}
	} else {
		fs, results, err = driver.CheckDir(ctx, dir, settings.opts)
	}
	if err != nil {
		return false, fmt.Errorf("check failed: %w", err)
	}

	flagged := false
	for _, r := range results {
		if !r.Clean() {
			flagged = true
			break
		}
	}

	switch settings.format {
	case "json":
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			output[displayPath(fs, r, settings)] = diagfmt.BuildDiagnosticsOutput(r.Bag, fs, settings.jsonOpts)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return false, fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	default:
		for _, r := range results {
			if r.Clean() {
				continue
			}
			diagfmt.Pretty(os.Stdout, r.Bag, fs, settings.prettyOpts)
		}
		printSummary(os.Stdout, results, settings)
	}
	return flagged, nil
}

func runCheckWatch(cmd *cobra.Command, dir string, settings checkSettings) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	// watch never mixes with the TUI, the terminal belongs to the report
	settings.ui = uiModeOff

	if _, err := checkDirOnce(ctx, dir, settings); err != nil {
		return err
	}

	watcher, err := watch.New(dir, watch.Options{Exclude: settings.opts.Exclude})
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if !settings.quiet {
		fmt.Fprintf(os.Stdout, "watching %s for changes (interrupt to stop)\n", dir)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors():
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case ev, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if !settings.quiet {
				fmt.Fprintf(os.Stdout, "\nchange detected (%d file(s)), re-checking\n", len(ev.Paths))
			}
			if _, err := checkDirOnce(ctx, dir, settings); err != nil {
				fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
			}
		}
	}
}

func printSummary(out *os.File, results []driver.Result, settings checkSettings) {
	if settings.quiet {
		return
	}
	files := len(results)
	flagged := 0
	cached := 0
	diagnostics := 0
	for _, r := range results {
		if r.Cached {
			cached++
		}
		if r.Clean() {
			continue
		}
		flagged++
		diagnostics += r.Bag.Len()
	}
	if flagged == 0 {
		fmt.Fprintf(out, "checked %d file(s), no issues found", files)
	} else {
		fmt.Fprintf(out, "checked %d file(s), %d issue(s) in %d file(s)", files, diagnostics, flagged)
	}
	if cached > 0 {
		fmt.Fprintf(out, " (%d cached)", cached)
	}
	fmt.Fprintln(out)
}

func displayPath(fs *source.FileSet, r driver.Result, settings checkSettings) string {
	if r.FileID != 0 {
		mode := "auto"
		if settings.jsonOpts.PathMode == diagfmt.PathModeAbsolute {
			mode = "absolute"
		}
		return fs.Get(r.FileID).FormatPath(mode, fs.BaseDir())
	}
	return r.Path
}
