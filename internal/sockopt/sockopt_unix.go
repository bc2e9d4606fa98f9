//go:build unix

package sockopt

import "golang.org/x/sys/unix"

func setReuse(fd uintptr) error {
	if err := unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		return err
	}
	// Best-effort: older kernels may reject SO_REUSEPORT even though the
	// constant is defined, so its failure does not fail Control.
	_ = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	return nil
}
