package trace

import "time"

// Kind is the type of a trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	// KindError passes every level except LevelOff.
	KindError
)

var kindNames = [...]string{
	KindSpanBegin: "begin",
	KindSpanEnd:   "end",
	KindPoint:     "point",
	KindError:     "error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event; higher levels admit finer scopes.
type Scope uint8

const (
	// ScopeRun covers a whole invocation: config, the scan fan-out.
	ScopeRun Scope = iota + 1
	// ScopeFile covers one source file.
	ScopeFile
	// ScopeLiteral covers one numeric literal.
	ScopeLiteral
)

var scopeNames = [...]string{
	ScopeRun:     "run",
	ScopeFile:    "file",
	ScopeLiteral: "literal",
}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is one trace record. Seq is assigned by the tracer that writes it.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64 // 0 for points and errors
	ParentID uint64
	Name     string // "scan", "file:src/a.py", "literal"
	Detail   string
	Extra    map[string]string
}
