package uot

import (
	"encoding/binary"
	"io"
	"net"
)

// WriteFrame writes one complete length-prefixed frame of payload to w,
// blocking until the whole frame is committed or an error occurs. It uses
// a vectored write (net.Buffers) so the prefix and payload reach w in a
// single underlying Write call where the implementation supports it.
//
// This is the non-cooperative counterpart to Writer.Write: callers that
// just want "send one frame, block until done" use WriteFrame instead of
// driving a Writer by hand.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxPayload {
		return ErrFrameTooLarge
	}
	var header [2]byte
	binary.BigEndian.PutUint16(header[:], uint16(len(payload)))

	bufs := net.Buffers{header[:], payload}
	_, err := bufs.WriteTo(w)
	return err
}

// ReadFrame reads one complete length-prefixed frame into buf, blocking
// until the whole frame has arrived or an error occurs. It returns
// io.ErrShortBuffer if buf is too small to hold the frame's payload.
func ReadFrame(r io.Reader, buf []byte) (int, error) {
	var header [2]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, err
	}
	n := int(binary.BigEndian.Uint16(header[:]))
	if n > len(buf) {
		return 0, io.ErrShortBuffer
	}
	if _, err := io.ReadFull(r, buf[:n]); err != nil {
		return 0, err
	}
	return n, nil
}
