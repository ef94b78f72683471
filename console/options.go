// SPDX-License-Identifier: MIT

// Package console: functional options for a single Msg call.
package console

import "unicode/utf8"

// DefaultEnd terminates every message unless WithEnd overrides it.
const DefaultEnd = '\n'

// DefaultFlush controls whether Msg flushes the writer after each message.
const DefaultFlush = false

const panicEndInvalid = "console: WithEnd: terminator must be a valid rune"

// MsgOption adjusts one Msg call.
type MsgOption func(*msgOptions)

// msgOptions is the effective per-call configuration.
type msgOptions struct {
	end   rune // DefaultEnd
	flush bool // DefaultFlush
}

// WithEnd replaces the trailing newline with r.
// Panics if r is not a valid rune (programmer error).
func WithEnd(r rune) MsgOption {
	if !utf8.ValidRune(r) {
		panic(panicEndInvalid)
	}

	return func(o *msgOptions) { o.end = r }
}

// WithFlush flushes the underlying writer right after the message is written.
func WithFlush() MsgOption {
	return func(o *msgOptions) { o.flush = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...MsgOption) msgOptions {
	o := msgOptions{end: DefaultEnd, flush: DefaultFlush}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
