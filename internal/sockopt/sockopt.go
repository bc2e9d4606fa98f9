// Package sockopt provides the net.ListenConfig.Control hook that enables
// address reuse on the listening datagram socket, matching the teacher's
// per-platform autodetect split in internal/conf.
package sockopt

import "syscall"

// Control is installed as net.ListenConfig.Control. It enables SO_REUSEADDR
// (and, where supported, SO_REUSEPORT) on the socket before it is bound.
func Control(network, address string, c syscall.RawConn) error {
	var ctrlErr error
	err := c.Control(func(fd uintptr) {
		ctrlErr = setReuse(fd)
	})
	if err != nil {
		return err
	}
	return ctrlErr
}
