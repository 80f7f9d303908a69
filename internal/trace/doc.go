// Package trace records what a scan run is doing while it does it.
//
// Tracing is off by default and costs one interface call per span when
// disabled. The CLI turns it on with:
//
//	numlit scan --trace=- --trace-level=detail ./src
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: only error events
//   - LevelPhase: run boundaries (config, lex, parse, cache)
//   - LevelDetail: one span per scanned file
//   - LevelDebug: one point per parsed literal
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//
//	ctx, span := trace.StartSpan(ctx, trace.ScopeFile, "file:"+path)
//	defer span.End("")
//	trace.Point(trace.FromContext(ctx), trace.ScopeLiteral, "literal", span.ID(), "0x1F = 31")
package trace
