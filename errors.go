package udpflow

import "errors"

// ErrClosed is returned by Listener.Accept when the Listener is closed while
// Accept is waiting for room in a full session queue.
var ErrClosed = errors.New("udpflow: use of closed endpoint")
