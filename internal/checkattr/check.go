package checkattr

import (
	"context"
	"fmt"

	"checkattr/internal/codegen"
	"checkattr/internal/diag"
	"checkattr/internal/hir"
	"checkattr/internal/trace"
)

// FnAttrsProvider computes the function attribute record code generation
// reads. Check calls it once for every function-like construct it visits.
type FnAttrsProvider interface {
	FnAttrs(id hir.NodeID) codegen.FnAttrs
}

type Options struct {
	Reporter diag.Reporter
	// FnAttrs defaults to a fresh codegen.Context reporting into Reporter.
	FnAttrs FnAttrsProvider
}

// Result summarises one pass over a crate.
type Result struct {
	Visited   int // constructs whose attributes were checked
	Functions int // function-like constructs handed to FnAttrs
}

// Checker validates attribute placement on one crate. It is not safe for
// concurrent use; run one Checker per crate.
type Checker struct {
	crate    *hir.Crate
	reporter diag.Reporter
	fns      FnAttrsProvider
	tracer   trace.Tracer

	visited   int
	functions int
}

func NewChecker(crate *hir.Crate, opts Options) *Checker {
	r := opts.Reporter
	if r == nil {
		r = diag.NopReporter{}
	}
	fns := opts.FnAttrs
	if fns == nil {
		fns = codegen.NewContext(crate, r)
	}
	return &Checker{crate: crate, reporter: r, fns: fns, tracer: trace.Nop}
}

// Check walks every item, trait item, impl item and foreign item of crate in
// declaration order, outer constructs before the ones nested in them, and
// reports misplaced or conflicting attributes. The crate root, generic
// parameters, macro definitions and function bodies are not checked.
// Violations never stop the walk.
func Check(ctx context.Context, crate *hir.Crate, opts Options) Result {
	c := NewChecker(crate, opts)
	c.tracer = trace.FromContext(ctx)

	span, _ := trace.Start(ctx, trace.ScopePass, "check_attrs")
	crate.Walk(c)
	span.WithExtra("visited", fmt.Sprint(c.visited)).
		WithExtra("functions", fmt.Sprint(c.functions)).
		End("")

	return c.Result()
}

func (c *Checker) Result() Result {
	return Result{Visited: c.visited, Functions: c.functions}
}

func (c *Checker) check(t Target) {
	c.visited++
	if c.tracer.Level().ShouldEmit(trace.ScopeNode) {
		trace.Point(c.tracer, trace.ScopeNode, "check_target", t.Describe())
	}
	c.CheckTarget(t)
}

func (c *Checker) VisitItem(it *hir.Item) {
	c.check(ItemTarget(it))
	c.crate.WalkItem(c, it)
}

func (c *Checker) VisitTraitItem(ti *hir.TraitItem) {
	c.check(TraitItemTarget(ti))
	c.crate.WalkTraitItem(c, ti)
}

func (c *Checker) VisitImplItem(ii *hir.ImplItem) {
	c.check(ImplItemTarget(ii))
	c.crate.WalkImplItem(c, ii)
}

func (c *Checker) VisitForeignItem(fi *hir.ForeignItem) {
	c.check(ForeignItemTarget(fi))
	c.crate.WalkForeignItem(c, fi)
}

// Attributes on generic parameters and macro definitions are not validated
// by this pass.
func (c *Checker) VisitGenericParam(*hir.GenericParam) {}
func (c *Checker) VisitMacroDef(*hir.MacroDef)         {}
