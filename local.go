package udpflow

import (
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"udpflow/internal/flog"
	"udpflow/internal/sockmap"
)

// LocalConn is one peer's session against a Listener's shared socket: reads
// dequeue payloads routed by the listener, writes send directly on the
// shared socket to this peer. It satisfies net.Conn.
type LocalConn struct {
	sessions *sockmap.Map
	key      string
	queue    chan []byte

	conn net.PacketConn
	addr net.Addr

	idle      atomic.Bool
	closeOnce sync.Once
}

func newLocalConn(sessions *sockmap.Map, queue chan []byte, conn net.PacketConn, addr net.Addr) *LocalConn {
	return &LocalConn{
		sessions: sessions,
		key:      addr.String(),
		queue:    queue,
		conn:     conn,
		addr:     addr,
	}
}

// Read dequeues the next payload routed by the owning Listener and copies
// it into b, truncating if b is smaller than the payload. It resets the
// idle-read timer on every call; once that timer expires without a payload
// arriving, this and every subsequent Read return (0, io.EOF).
func (c *LocalConn) Read(b []byte) (int, error) {
	if c.idle.Load() {
		return 0, io.EOF
	}

	timer := time.NewTimer(Timeout())
	defer timer.Stop()

	select {
	case payload, ok := <-c.queue:
		if !ok {
			c.idle.Store(true)
			return 0, io.EOF
		}
		return copy(b, payload), nil
	case <-timer.C:
		c.idle.Store(true)
		flog.Debugf("local: idle timeout for %s", c.key)
		return 0, io.EOF
	}
}

// Write sends b as a single datagram to this session's peer via the shared
// listening socket.
func (c *LocalConn) Write(b []byte) (int, error) {
	return c.conn.WriteTo(b, c.addr)
}

// Close removes this session's entry from the owning Listener's session
// map; a later datagram from this peer starts a fresh session. The shared
// socket itself is not closed.
func (c *LocalConn) Close() error {
	c.closeOnce.Do(func() {
		c.sessions.Remove(c.key)
		flog.Debugf("local: session closed for %s", c.key)
	})
	return nil
}

// LocalAddr returns the shared listening socket's address.
func (c *LocalConn) LocalAddr() net.Addr { return c.conn.LocalAddr() }

// RemoteAddr returns this session's peer address.
func (c *LocalConn) RemoteAddr() net.Addr { return c.addr }

// Socket returns the underlying shared datagram socket, for callers that
// need socket-level configuration.
func (c *LocalConn) Socket() net.PacketConn { return c.conn }

// SetDeadline, SetReadDeadline and SetWriteDeadline are no-ops: the idle
// timeout is the only read-side deadline this endpoint observes, and it is
// process-wide (see SetTimeout), not per-connection.
func (c *LocalConn) SetDeadline(t time.Time) error      { return nil }
func (c *LocalConn) SetReadDeadline(t time.Time) error  { return nil }
func (c *LocalConn) SetWriteDeadline(t time.Time) error { return nil }
