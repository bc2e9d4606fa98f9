package udpflow

import (
	"context"
	"fmt"
	"net"
	"sync"

	"udpflow/internal/flog"
	"udpflow/internal/sockmap"
	"udpflow/internal/sockopt"
)

// sessionQueueCapacity bounds the per-peer datagram queue. 32 matches the
// upper end of the range this library's queues are sized to.
const sessionQueueCapacity = 32

// Listener demultiplexes a single shared datagram socket by source address,
// surfacing each previously-unseen peer as an independent LocalConn.
type Listener struct {
	conn     net.PacketConn
	sessions *sockmap.Map

	closeOnce sync.Once
	closed    chan struct{}
}

// Listen opens a UDP socket at address with address reuse enabled
// (SO_REUSEADDR and, where supported, SO_REUSEPORT) and wraps it in a
// Listener.
func Listen(network, address string) (*Listener, error) {
	lc := net.ListenConfig{Control: sockopt.Control}
	conn, err := lc.ListenPacket(context.Background(), network, address)
	if err != nil {
		return nil, fmt.Errorf("udpflow: listen %s %s: %w", network, address, err)
	}
	return NewListener(conn), nil
}

// NewListener wraps an already-bound datagram socket. Useful for tests and
// for callers who configure the socket themselves.
func NewListener(conn net.PacketConn) *Listener {
	return &Listener{
		conn:     conn,
		sessions: sockmap.New(),
		closed:   make(chan struct{}),
	}
}

// Accept receives datagrams on the shared socket until one arrives from a
// peer with no live session, then returns that peer's new LocalConn. It
// routes datagrams from already-known peers onto their session queue
// (blocking if that queue is full) before looping again. scratch must be
// large enough for the largest datagram the caller expects; it is reused
// across receives and never retained by the returned LocalConn.
func (l *Listener) Accept(scratch []byte) (*LocalConn, net.Addr, error) {
	for {
		n, addr, err := l.conn.ReadFrom(scratch)
		if err != nil {
			return nil, nil, err
		}

		key := addr.String()
		payload := append([]byte(nil), scratch[:n]...)

		if queue, ok := l.sessions.Get(key); ok {
			select {
			case queue <- payload:
			case <-l.closed:
				return nil, nil, ErrClosed
			}
			continue
		}

		queue := make(chan []byte, sessionQueueCapacity)
		l.sessions.Insert(key, queue)
		queue <- payload

		flog.Debugf("sockmap: new session for %s", key)
		return newLocalConn(l.sessions, queue, l.conn, addr), addr, nil
	}
}

// Close closes the shared socket. In-flight LocalConns continue to operate
// against the session map but lose their write path once the socket closes.
func (l *Listener) Close() error {
	var err error
	l.closeOnce.Do(func() {
		close(l.closed)
		err = l.conn.Close()
	})
	return err
}

// Addr returns the listener's bound address.
func (l *Listener) Addr() net.Addr { return l.conn.LocalAddr() }

// Sessions reports the number of currently live peer sessions.
func (l *Listener) Sessions() int { return l.sessions.Len() }
