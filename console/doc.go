// Package console writes threshold-filtered messages to a text stream and
// renders arbitrary values as strings.
//
// A Logger has one integer threshold. Msg(message, level) writes message and a
// terminator (newline by default) when threshold >= level, and nothing
// otherwise. There are no timestamps, tags or structured fields: the bytes
// written are exactly the message and the terminator.
//
// The package-level Msg uses Default(), a Logger on os.Stdout. Programs set
// it once at start-up from their configuration:
//
//	console.SetDefault(console.New(os.Stdout, params.LogLevel))
//	console.Msg("starting", 1)
//
// WithFlush forces the writer to flush after the message. It costs a syscall
// per call on os.Stdout; reserve it for lines that must survive a crash.
package console
