// Package driver runs the lex-parse-check pipeline over files and
// directories, with parallel workers, stage events, and a clean-verdict
// cache.
package driver

import (
	"time"

	"jsxwrap/internal/ast"
	"jsxwrap/internal/diag"
	"jsxwrap/internal/lexer"
	"jsxwrap/internal/parser"
	"jsxwrap/internal/rule"
	"jsxwrap/internal/source"
	"jsxwrap/internal/token"
)

// DefaultMaxDiagnostics caps diagnostics per run unless overridden.
const DefaultMaxDiagnostics = 256

// Options configures a check run.
type Options struct {
	Config         rule.Config
	MaxDiagnostics int
	// Jobs caps parallel workers in CheckDir. Zero means one per CPU.
	Jobs int
	// Exclude lists directory basenames skipped during walks.
	Exclude []string
	// Cache, when set, skips files with a recorded clean verdict.
	Cache *ResultCache
	// ToolVersion participates in cache keys.
	ToolVersion string
	Observer    Observer
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// Result is the outcome for one file.
type Result struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	AST    *ast.File
	Bag    *diag.Bag
	// Cached marks a file skipped via a clean cache verdict; Tokens and
	// AST are nil then.
	Cached bool
}

// Clean reports whether the file produced no diagnostics.
func (r Result) Clean() bool {
	return r.Bag == nil || r.Bag.Len() == 0
}

// CheckSource runs the pipeline over an already-loaded file.
func CheckSource(fs *source.FileSet, fileID source.FileID, opts Options) Result {
	file := fs.Get(fileID)
	path := file.Path
	bag := diag.NewBag(opts.maxDiagnostics())
	rep := &diag.BagReporter{Bag: bag}

	if opts.Cache != nil {
		key := CacheKey(file, opts.Config, opts.ToolVersion)
		var payload CachePayload
		if hit, err := opts.Cache.Get(key, &payload); err == nil && hit && payload.Clean {
			opts.Observer.emit(Event{Path: path, Stage: StageCheck, Status: StatusEnd, Cached: true})
			return Result{Path: path, FileID: fileID, Bag: bag, Cached: true}
		}
	}

	lexStart := time.Now()
	opts.Observer.emit(Event{Path: path, Stage: StageLex, Status: StatusStart})
	toks := lexer.Tokenize(file, lexer.Options{Reporter: rep})
	opts.Observer.emit(Event{Path: path, Stage: StageLex, Status: StatusEnd, Elapsed: time.Since(lexStart)})

	parseStart := time.Now()
	opts.Observer.emit(Event{Path: path, Stage: StageParse, Status: StatusStart})
	p := parser.New(file, toks, parser.Options{Reporter: rep})
	parsed := p.ParseFile()
	opts.Observer.emit(Event{Path: path, Stage: StageParse, Status: StatusEnd, Elapsed: time.Since(parseStart)})

	checkStart := time.Now()
	opts.Observer.emit(Event{Path: path, Stage: StageCheck, Status: StatusStart})
	rule.NewChecker(opts.Config, fs, token.NewStream(toks), rep).Check(parsed)
	opts.Observer.emit(Event{
		Path:        path,
		Stage:       StageCheck,
		Status:      StatusEnd,
		Elapsed:     time.Since(checkStart),
		Diagnostics: bag.Len(),
	})

	result := Result{Path: path, FileID: fileID, Tokens: toks, AST: parsed, Bag: bag}

	if opts.Cache != nil && result.Clean() {
		key := CacheKey(file, opts.Config, opts.ToolVersion)
		// a failed cache write never fails the check
		_ = opts.Cache.Put(key, &CachePayload{
			Schema:      cacheSchemaVersion,
			ToolVersion: opts.ToolVersion,
			Clean:       true,
		})
	}
	return result
}

// CheckFile loads one file from disk and checks it.
func CheckFile(fs *source.FileSet, path string, opts Options) (Result, error) {
	opts.Observer.emit(Event{Path: path, Stage: StageLoad, Status: StatusStart})
	fileID, err := fs.Load(path)
	opts.Observer.emit(Event{Path: path, Stage: StageLoad, Status: StatusEnd})
	if err != nil {
		return Result{Path: path}, err
	}
	return CheckSource(fs, fileID, opts), nil
}
