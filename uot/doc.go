// Package uot frames discrete messages over a byte-stream transport with a
// 2-byte big-endian length prefix, so that one Read returns exactly one
// message regardless of how the underlying stream chunks or coalesces
// bytes.
//
// Wire format:
//
//	+----------------+--------------------------+
//	| length (u16 BE)|  payload  (length bytes)  |
//	+----------------+--------------------------+
//
// Maximum payload is 65535 bytes. Reader and Writer are independent state
// machines — an explicit tagged state per half — so that a suspended
// Read or Write (partial syscall, short accept from the transport) leaves
// no ambiguity about what has already reached the wire or been consumed
// from it. Stream combines both halves over one net.Conn.
//
// ReadFrame and WriteFrame are the stateless counterpart: each call blocks
// until exactly one whole frame has been read or written (or an error
// occurs), for callers that would rather not drive the state machine by
// hand.
package uot
