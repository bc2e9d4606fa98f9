package uot

import (
	"encoding/binary"
	"errors"
	"io"
)

type readState int

const (
	readExpectLength readState = iota
	readExpectPayload
	readTerminated
)

// Reader decodes a stream of length-prefixed frames from an inner
// io.Reader. A single Read call returns at most one frame's payload (or a
// prefix of it, if the caller's buffer is smaller than the frame — the
// remainder is delivered by subsequent Read calls without being dropped).
// Read keeps reading from the inner reader until that much has arrived, so
// a frame split across several inner reads still comes back from one Read.
//
// Reader is not safe for concurrent use; it is driven by a single reader
// half, matching the single-mutator-per-state-machine-half discipline the
// rest of this module follows.
type Reader struct {
	r     io.Reader
	state readState

	lenBuf  [2]byte
	lenHave int

	remaining uint16
}

// NewReader returns a Reader decoding frames from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read implements io.Reader. It returns (0, nil) at a completed frame
// boundary with a zero-length frame, and (0, nil) forever once the inner
// reader has signaled end-of-stream. End-of-stream is thus a zero-byte
// completion with a nil error, not io.EOF; LocalConn and RemoteConn, by
// contrast, report end-of-stream as (0, io.EOF).
func (r *Reader) Read(p []byte) (int, error) {
	for {
		switch r.state {
		case readTerminated:
			return 0, nil

		case readExpectLength:
			if err := r.fillLength(); err != nil {
				return 0, err
			}
			if r.state == readTerminated {
				return 0, nil
			}
			continue

		case readExpectPayload:
			if r.remaining == 0 {
				r.state = readExpectLength
				return 0, nil
			}
			if len(p) == 0 {
				return 0, nil
			}

			dst := p
			if len(dst) > int(r.remaining) {
				dst = dst[:r.remaining]
			}

			got := 0
			for got < len(dst) {
				n, err := r.r.Read(dst[got:])
				got += n
				r.remaining -= uint16(n)
				if err != nil {
					if errors.Is(err, io.EOF) {
						r.state = readTerminated
						return got, nil
					}
					return got, err
				}
			}
			if r.remaining == 0 {
				r.state = readExpectLength
			}
			return got, nil
		}
	}
}

// fillLength accumulates the 2-byte length prefix, possibly across several
// inner reads, and transitions to readExpectPayload once complete.
func (r *Reader) fillLength() error {
	for r.lenHave < 2 {
		n, err := r.r.Read(r.lenBuf[r.lenHave:2])
		r.lenHave += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.state = readTerminated
				return nil
			}
			return err
		}
	}
	r.remaining = binary.BigEndian.Uint16(r.lenBuf[:])
	r.lenHave = 0
	r.state = readExpectPayload
	return nil
}
