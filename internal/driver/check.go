package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"checkattr/internal/attrform"
	"checkattr/internal/checkattr"
	"checkattr/internal/diag"
	"checkattr/internal/hir"
	"checkattr/internal/observ"
	"checkattr/internal/source"
	"checkattr/internal/trace"
)

// Options control one check run.
type Options struct {
	// MaxDiagnostics caps each file's bag; 0 means unbounded.
	MaxDiagnostics   int
	IgnoreWarnings   bool
	WarningsAsErrors bool
	// Jobs bounds how many crates are checked at once; 0 uses GOMAXPROCS.
	Jobs          int
	EnableTimings bool
	// BaseDir is the directory relative paths are rendered against.
	BaseDir string
}

// FileResult is the outcome for one crate document.
type FileResult struct {
	Path string
	// DocID is the document itself; SourceID is the file diagnostics point
	// into, which is the document when it names no source.
	DocID    source.FileID
	SourceID source.FileID
	Crate    *hir.Crate
	Bag      *diag.Bag
	// Forms counts the attributes the form gate inspected.
	Forms  int
	Check  checkattr.Result
	Timing *observ.Report
}

// Result collects every file of a run in input order.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
}

// Bag merges the per-file bags in input order.
func (r *Result) Bag() *diag.Bag {
	out := diag.NewBag(0)
	for i := range r.Files {
		out.Merge(r.Files[i].Bag)
	}
	return out
}

func (r *Result) HasErrors() bool {
	for i := range r.Files {
		if r.Files[i].Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Check loads every crate document found under paths and runs the attribute
// form gate followed by the attribute checker on each of them. Documents are
// loaded one after another; crates are then checked in parallel, each into
// its own bag. Within a file diagnostics keep traversal order, and files keep
// the order CollectDocuments produced.
//
// The returned error is reserved for problems with the run itself (bad
// paths, cancellation). A document that fails to load shows up as an
// IO9001 or IO9002 diagnostic in its FileResult.
func Check(ctx context.Context, paths []string, opts Options) (*Result, error) {
	docs, err := CollectDocuments(paths)
	if err != nil {
		return nil, err
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		if wd, werr := os.Getwd(); werr == nil {
			baseDir = wd
		}
	}

	runSpan, ctx := trace.Start(ctx, trace.ScopeDriver, "check")

	fileSet := source.NewFileSetWithBase(baseDir)
	units := make([]*unit, len(docs))

	loadSpan, _ := trace.Start(ctx, trace.ScopePass, "load")
	for i, path := range docs {
		u := &unit{path: path, bag: diag.NewBag(opts.MaxDiagnostics)}
		if opts.EnableTimings {
			u.timer = observ.NewTimer()
		}
		load(fileSet, u)
		units[i] = u
	}
	loadSpan.WithExtra("files", fmt.Sprint(len(docs))).End("")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(units))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(units)))

	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = checkUnit(gctx, u, opts)
			return nil
		})
	}
	err = g.Wait()
	runSpan.WithExtra("files", fmt.Sprint(len(units))).End("")
	if err != nil {
		return nil, fmt.Errorf("check canceled: %w", err)
	}

	return &Result{FileSet: fileSet, Files: results}, nil
}

func checkUnit(ctx context.Context, u *unit, opts Options) FileResult {
	res := FileResult{
		Path:     u.path,
		DocID:    u.docID,
		SourceID: u.srcID,
		Crate:    u.crate,
		Bag:      u.bag,
	}

	if u.loaded {
		fileSpan, fctx := trace.Start(ctx, trace.ScopeFile, "file")

		r := diag.BagReporter{Bag: u.bag}

		idx := u.timer.Begin("attrform")
		formSpan, _ := trace.Start(fctx, trace.ScopePass, "attr_forms")
		res.Forms = attrform.Check(u.crate, r)
		formSpan.WithExtra("attrs", fmt.Sprint(res.Forms)).End("")
		u.timer.End(idx, fmt.Sprintf("attrs=%d", res.Forms))

		idx = u.timer.Begin("check")
		res.Check = checkattr.Check(fctx, u.crate, checkattr.Options{Reporter: r})
		u.timer.End(idx, fmt.Sprintf("visited=%d fns=%d", res.Check.Visited, res.Check.Functions))

		fileSpan.WithExtra("diags", fmt.Sprint(u.bag.Len())).End(u.path)
	}

	applyFilters(u.bag, opts)

	if u.timer != nil {
		report := u.timer.Report()
		res.Timing = &report
	}
	return res
}

// applyFilters drops or promotes warnings. Order is preserved.
func applyFilters(bag *diag.Bag, opts Options) {
	if opts.IgnoreWarnings {
		bag.Filter(func(d diag.Diagnostic) bool {
			return d.Severity >= diag.SevError
		})
	}
	if opts.WarningsAsErrors {
		bag.Transform(func(d diag.Diagnostic) diag.Diagnostic {
			if d.Severity == diag.SevWarning {
				d.Severity = diag.SevError
			}
			return d
		})
	}
}
