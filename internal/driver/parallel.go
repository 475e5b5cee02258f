package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"jsxwrap/internal/diag"
	"jsxwrap/internal/source"
)

// ListJSXFiles returns every *.jsx and *.js file under dir, sorted for a
// deterministic order. Directories whose basename appears in exclude are
// skipped whole.
func ListJSXFiles(dir string, exclude []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && slices.Contains(exclude, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".jsx") || strings.HasSuffix(path, ".js") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// CheckDir checks every JSX file under dir in parallel. Files that fail to
// load produce a Result carrying an io diagnostic instead of failing the run;
// the returned error reflects walk failures or context cancellation only.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []Result, error) {
	files, err := ListJSXFiles(dir, opts.Exclude)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet mutation is not goroutine-safe; load sequentially, check in
	// parallel.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		opts.Observer.emit(Event{Path: path, Stage: StageLoad, Status: StatusStart})
		fileID, err := fileSet.Load(path)
		opts.Observer.emit(Event{Path: path, Stage: StageLoad, Status: StatusEnd})
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine writes its own index, no mutex needed
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = Result{Path: path, Bag: bag}
				return nil
			}

			results[i] = CheckSource(fileSet, fileIDs[path], opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// MergeBags collects every per-file bag into one, sorted and deduplicated.
func MergeBags(results []Result, maxDiagnostics int) *diag.Bag {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	out := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		if r.Bag != nil {
			out.Merge(r.Bag)
		}
	}
	out.Sort()
	out.Dedup()
	return out
}
