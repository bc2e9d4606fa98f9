package udpflow

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync/atomic"
	"time"

	"udpflow/internal/flog"
)

// RemoteConn wraps a datagram socket connected (or addressed) to a single
// fixed peer, presenting the same idle-timeout read/write contract as
// LocalConn. It satisfies net.Conn.
type RemoteConn struct {
	conn *net.UDPConn
	peer *net.UDPAddr

	idle atomic.Bool
}

// DialRemote resolves peerAddr and opens a UDP socket connected to it.
func DialRemote(network, peerAddr string) (*RemoteConn, error) {
	addr, err := net.ResolveUDPAddr(network, peerAddr)
	if err != nil {
		return nil, fmt.Errorf("udpflow: resolve %s: %w", peerAddr, err)
	}
	conn, err := net.DialUDP(network, nil, addr)
	if err != nil {
		return nil, fmt.Errorf("udpflow: dial %s: %w", peerAddr, err)
	}
	return NewRemoteConn(conn, addr), nil
}

// NewRemoteConn wraps an already-connected UDP socket.
func NewRemoteConn(conn *net.UDPConn, peer *net.UDPAddr) *RemoteConn {
	return &RemoteConn{conn: conn, peer: peer}
}

// Read receives one datagram into b. It arms a deadline of Timeout() before
// every receive; once that deadline is exceeded this and every subsequent
// Read return (0, io.EOF) rather than a timeout error.
func (c *RemoteConn) Read(b []byte) (int, error) {
	if c.idle.Load() {
		return 0, io.EOF
	}

	if err := c.conn.SetReadDeadline(time.Now().Add(Timeout())); err != nil {
		return 0, err
	}

	n, err := c.conn.Read(b)
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			c.idle.Store(true)
			flog.Debugf("remote: idle timeout for %s", c.peer)
			return 0, io.EOF
		}
		return n, err
	}
	return n, nil
}

// Write sends b to the fixed peer.
func (c *RemoteConn) Write(b []byte) (int, error) {
	return c.conn.Write(b)
}

// Close closes the underlying socket.
func (c *RemoteConn) Close() error { return c.conn.Close() }

// LocalAddr returns the socket's local address.
func (c *RemoteConn) LocalAddr() net.Addr { return c.conn.LocalAddr() }

// RemoteAddr returns the fixed peer address.
func (c *RemoteConn) RemoteAddr() net.Addr { return c.peer }

// Socket returns the underlying UDP socket, for callers that need
// socket-level configuration.
func (c *RemoteConn) Socket() *net.UDPConn { return c.conn }

// SetDeadline and SetWriteDeadline are no-ops: the idle timeout (see
// SetTimeout) is the only read-side deadline this endpoint observes, and
// writes are not subject to it. SetReadDeadline is likewise a no-op since
// Read arms its own deadline from Timeout() on every call.
func (c *RemoteConn) SetDeadline(t time.Time) error      { return nil }
func (c *RemoteConn) SetReadDeadline(t time.Time) error  { return nil }
func (c *RemoteConn) SetWriteDeadline(t time.Time) error { return nil }
