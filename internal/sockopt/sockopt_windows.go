//go:build windows

package sockopt

import "golang.org/x/sys/windows"

func setReuse(fd uintptr) error {
	// SO_REUSEPORT has no Windows equivalent; SO_REUSEADDR is the best
	// available address-reuse knob on this platform.
	return windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_REUSEADDR, 1)
}
