package driver

import (
	"fmt"
	"path/filepath"

	"fortio.org/safecast"

	"checkattr/internal/diag"
	"checkattr/internal/hir"
	"checkattr/internal/hir/hirdoc"
	"checkattr/internal/observ"
	"checkattr/internal/source"
)

// unit is one document on its way through the pipeline.
type unit struct {
	path   string
	docID  source.FileID
	srcID  source.FileID
	crate  *hir.Crate
	bag    *diag.Bag
	timer  *observ.Timer
	loaded bool
}

// load reads, decodes and builds one document. Any failure is recorded as a
// diagnostic in u.bag and leaves u.crate nil; it never aborts the run.
// FileSet is not safe for concurrent use, so load runs sequentially.
func load(fileSet *source.FileSet, u *unit) {
	r := diag.BagReporter{Bag: u.bag}

	idx := u.timer.Begin("load")
	format, ferr := hirdoc.FormatFromPath(u.path)
	var err error
	if ferr == nil && format == hirdoc.FormatMsgpack {
		u.docID, err = fileSet.LoadRaw(u.path)
	} else {
		u.docID, err = fileSet.Load(u.path)
	}
	u.timer.End(idx, "")
	if err != nil {
		// keep a placeholder so the diagnostic still names the file
		u.docID = fileSet.AddVirtual(u.path, nil)
		diag.ReportError(r, diag.IOLoadFileError, source.Span{File: u.docID}, "failed to load file: "+err.Error()).Emit()
		return
	}
	docSpan := source.Span{File: u.docID}
	if ferr != nil {
		diag.ReportError(r, diag.IODecodeError, docSpan, ferr.Error()).Emit()
		return
	}

	idx = u.timer.Begin("decode")
	doc, err := hirdoc.Decode(fileSet.Get(u.docID).Content, format)
	u.timer.End(idx, format.String())
	if err != nil {
		diag.ReportError(r, diag.IODecodeError, docSpan, fmt.Sprintf("cannot decode crate document: %v", err)).Emit()
		return
	}

	opts := hirdoc.BuildOptions{File: u.docID}
	u.srcID = u.docID
	if doc.Source != "" {
		srcPath := doc.Source
		if !filepath.IsAbs(srcPath) {
			srcPath = filepath.Join(filepath.Dir(u.path), srcPath)
		}
		idx = u.timer.Begin("source")
		srcID, err := fileSet.LoadRaw(srcPath)
		u.timer.End(idx, "")
		if err != nil {
			diag.ReportError(r, diag.IOLoadFileError, docSpan, fmt.Sprintf("failed to load source %s: %v", doc.Source, err)).Emit()
			return
		}
		limit, err := safecast.Conv[uint32](len(fileSet.Get(srcID).Content))
		if err != nil {
			diag.ReportError(r, diag.IOLoadFileError, docSpan, fmt.Sprintf("source %s is too large: %v", doc.Source, err)).Emit()
			return
		}
		u.srcID = srcID
		opts = hirdoc.BuildOptions{File: srcID, Limit: limit}
	}

	idx = u.timer.Begin("build")
	crate, err := hirdoc.Build(doc, opts)
	note := ""
	if crate != nil {
		note = fmt.Sprintf("nodes=%d", crate.NumNodes())
	}
	u.timer.End(idx, note)
	if err != nil {
		diag.ReportError(r, diag.IODecodeError, docSpan, fmt.Sprintf("invalid crate document: %v", err)).Emit()
		return
	}
	u.crate = crate
	u.loaded = true
}
