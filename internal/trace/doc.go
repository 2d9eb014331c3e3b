// Package trace records what the checker is doing while it runs.
//
// Tracing is off unless asked for:
//
//	checkattr check --trace=- --trace-level=phase crates/
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Reserved for failures; emits no spans
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Per-file loading and checking
//   - LevelDebug: Everything, including every checked construct
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "check_attrs", parentID)
//	defer span.End("")
package trace
