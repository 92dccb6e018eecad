package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	current ErrorHandler = &LogHandler{}
)

// Handler returns the handler that receives reported errors.
func Handler() ErrorHandler {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetHandler installs h and returns the handler it replaced, so callers can
// restore it. Nil installs a LogHandler on slog.Default().
func SetHandler(h ErrorHandler) (previous ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	mu.Lock()
	defer mu.Unlock()
	previous, current = current, h
	return previous
}

// Report hands err to the installed handler, stamping the time. Precondition
// errors are contract violations by the caller, so they also record the
// stack of the offending call when none is attached yet.
func Report(err *HighlightError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.Kind == KindPrecondition && err.StackTrace == "" {
		err.StackTrace = callerStack()
	}
	Handler().HandleError(err)
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in a user callback instead of letting it unwind
// through the label. It must be deferred directly:
//
//	defer errors.Recover("highlight.onTap")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: callerStack()})
}

// callerStack formats the stack starting at the caller of Report or Recover,
// one "function\n\tfile:line" entry per frame. Runtime frames (the panic
// machinery between a deferred Recover and the panicking function) are left
// out.
func callerStack() string {
	var pcs [32]uintptr
	// Skip runtime.Callers, callerStack and Report/Recover.
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
