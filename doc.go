// Package udpflow exposes connection-oriented, byte-stream semantics over
// connectionless UDP, and the inverse: framing a datagram boundary over a
// byte stream. It targets relay/proxy code that shuttles UDP flows through
// TCP-only (or otherwise stream-oriented) links and back, preserving message
// boundaries end-to-end.
//
// Two pieces cooperate:
//
//   - Listener/LocalConn demultiplex a single shared UDP socket by source
//     address, surfacing each remote peer as an independent, ordered,
//     stream-like endpoint with its own idle-timeout lifecycle. RemoteConn is
//     the mirror image: a fixed-peer UDP socket with the same read/write and
//     idle-timeout contract.
//   - Package uot frames a byte-stream transport (e.g. TCP) with a 2-byte
//     length prefix so a single Read returns exactly one message.
//
// LocalConn, RemoteConn, and uot.Stream all satisfy net.Conn, so Bridge (or
// any generic bidirectional copy) can relay between any pair of them without
// special-casing which side is a datagram socket and which is a framed
// stream.
//
// Out of scope: reliability, retransmission, congestion/flow control beyond
// the back-pressure the transports natively offer, authentication, and
// encryption. The datagram leg does not preserve boundaries across multiple
// Reads of one oversized payload — a single Read delivers (a truncated view
// of) one datagram, never a merge or split of several.
package udpflow
