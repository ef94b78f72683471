package console

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"unicode/utf8"
)

// DefaultThreshold is the threshold of the package-level default Logger.
const DefaultThreshold = 1

const (
	panicNilLogger = "console: SetDefault: logger must not be nil"
	panicNilWriter = "console: New: writer must not be nil"
)

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// syncer is implemented by *os.File.
type syncer interface {
	Sync() error
}

// Logger writes messages whose level does not exceed its threshold.
// One call's message and terminator are written with a single Write.
type Logger struct {
	mu        sync.Mutex
	w         io.Writer
	threshold int
}

// New returns a Logger writing to w with the given threshold.
// Panics on a nil writer (programmer error); pass io.Discard to silence output.
func New(w io.Writer, threshold int) *Logger {
	if w == nil {
		panic(panicNilWriter)
	}

	return &Logger{w: w, threshold: threshold}
}

// Threshold returns the configured threshold.
func (l *Logger) Threshold() int { return l.threshold }

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level int) bool { return l.threshold >= level }

// Msg writes message followed by the terminator when Enabled(level).
// Write and flush errors are dropped.
func (l *Logger) Msg(message string, level int, opts ...MsgOption) {
	if !l.Enabled(level) {
		return
	}
	o := gatherOptions(opts...)

	buf := make([]byte, 0, len(message)+utf8.UTFMax)
	buf = append(buf, message...)
	buf = utf8.AppendRune(buf, o.end)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(buf)
	if o.flush {
		l.flush()
	}
}

// Msgf formats according to format and writes the result at level with the
// default terminator. Arguments are not formatted when the level is disabled.
func (l *Logger) Msgf(level int, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.Msg(fmt.Sprintf(format, args...), level)
}

// flush pushes buffered output down; callers hold l.mu.
func (l *Logger) flush() {
	switch w := l.w.(type) {
	case flusher:
		_ = w.Flush()
	case syncer:
		_ = w.Sync()
	}
}

var std atomic.Pointer[Logger]

func init() {
	std.Store(New(os.Stdout, DefaultThreshold))
}

// Default returns the package-level Logger.
func Default() *Logger { return std.Load() }

// SetDefault replaces the package-level Logger. Panics on nil.
func SetDefault(l *Logger) {
	if l == nil {
		panic(panicNilLogger)
	}
	std.Store(l)
}

// Msg writes through the package-level Logger.
func Msg(message string, level int, opts ...MsgOption) {
	Default().Msg(message, level, opts...)
}
