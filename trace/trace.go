// SPDX-License-Identifier: MIT

// Package trace provides the conditional diagnostic output used while
// developing numerical code.
//
// Purpose:
//   - Let algorithms emit optional snapshots ("matrix at entry", "after
//     elimination") without depending on a process-wide logger.
//   - Gate output twice: per call (the enable flag) and per logger
//     (development mode). Both must be on for anything to be written.
//
// A Tracer is injected by the caller (see matrix.WithTracer). Algorithms never
// read anything back from it, so the result of a computation is the same with
// Discard and with a live Logger.
package trace

import (
	"fmt"
	"io"
	"log"
	"runtime"
	"strings"
	"sync"

	"github.com/katalvlaran/lalg/internal/textfmt"
)

// Defaults for Logger.
const (
	DefaultIndentLimit = 90 // wrap column for trace lines
	DefaultIndent      = 6  // indentation of continuation lines
)

// Tracer receives optional diagnostic text. Implementations must not panic and
// must treat a false enable flag as "do nothing".
type Tracer interface {
	Tracef(enable bool, format string, args ...any)
}

// Discard is a Tracer that drops everything without formatting it.
var Discard Tracer = discard{}

type discard struct{}

func (discard) Tracef(bool, string, ...any) {}

// Option configures a Logger.
type Option func(*Logger)

// WithDevelopmentMode sets the initial development-mode flag.
func WithDevelopmentMode(on bool) Option {
	return func(l *Logger) { l.dev = on }
}

// WithIndentLimit sets the column at which long trace lines are wrapped.
// Panics when limit is not positive.
func WithIndentLimit(limit int) Option {
	if limit <= 0 {
		panic("trace: WithIndentLimit: limit must be > 0")
	}

	return func(l *Logger) { l.limit = limit }
}

// WithPrefix sets a prefix written at the start of every output block.
func WithPrefix(prefix string) Option {
	return func(l *Logger) { l.out.SetPrefix(prefix) }
}

// Logger is a Tracer backed by a *log.Logger.
// It is safe for concurrent use; writes of one block are never interleaved.
type Logger struct {
	mu    sync.Mutex
	out   *log.Logger
	dev   bool
	limit int
}

var _ Tracer = (*Logger)(nil)

// New returns a Logger writing to w. Development mode is off unless enabled
// with WithDevelopmentMode or SetDevelopmentMode.
func New(w io.Writer, opts ...Option) *Logger {
	l := &Logger{
		out:   log.New(w, "", 0),
		limit: DefaultIndentLimit,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// SetDevelopmentMode turns development mode on or off.
func (l *Logger) SetDevelopmentMode(on bool) {
	l.mu.Lock()
	l.dev = on
	l.mu.Unlock()
}

// DevelopmentMode reports whether development mode is on.
func (l *Logger) DevelopmentMode() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.dev
}

// Tracef writes the formatted text, preceded by a header naming the calling
// function, when enable is true and development mode is on. Long lines are
// wrapped at the indent limit.
func (l *Logger) Tracef(enable bool, format string, args ...any) {
	if !enable {
		return
	}
	header := fmt.Sprintf("----- %s ---- trace output:\n", callPoint(2))
	l.write(header + fmt.Sprintf(format, args...))
}

// Debugf is Tracef without the call-point header.
func (l *Logger) Debugf(enable bool, format string, args ...any) {
	if !enable {
		return
	}
	l.write(fmt.Sprintf(format, args...))
}

// write emits text as an indented block when development mode is on.
// The first line is written as is; every following line is indented and
// wrapped. Empty lines are dropped.
func (l *Logger) write(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.dev {
		return
	}

	indent := strings.Repeat(" ", DefaultIndent)
	lines := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			line = indent + line
		}
		b.WriteString(textfmt.WrapIndent(line+"\n", l.limit, DefaultIndent))
	}
	l.out.Print(b.String())
}

// callPoint describes the function skip frames above callPoint's caller as
// "<pkg.Func[line]>".
func callPoint(skip int) string {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "<unknown>"
	}
	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
	}

	return fmt.Sprintf("<%s[%03d]>", name, line)
}
