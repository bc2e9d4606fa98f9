package udpflow

import (
	"io"

	"golang.org/x/sync/errgroup"
)

// Bridge relays data bidirectionally between a and b until either side's
// copy returns (typically on EOF or an I/O error), then closes both sides
// so the other direction's copy unblocks. Closing a LocalConn does not
// interrupt a pending Read on it; a copy reading from a LocalConn ends at
// its idle timeout. It returns the byte counts
// copied in each direction and the first non-EOF error encountered.
func Bridge(a, b io.ReadWriteCloser) (aToB, bToA int64, err error) {
	var g errgroup.Group

	g.Go(func() error {
		defer b.Close()
		defer a.Close()
		n, err := io.Copy(b, a)
		aToB = n
		return err
	})

	g.Go(func() error {
		defer a.Close()
		defer b.Close()
		n, err := io.Copy(a, b)
		bToA = n
		return err
	})

	err = g.Wait()
	return aToB, bToA, err
}
