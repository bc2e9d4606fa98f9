package uot

import (
	"bytes"
	"io"
	"net"
	"testing"
)

func TestWriteFrameReadFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFrame(&buf, []byte("Ciallo")); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	got := make([]byte, 64)
	n, err := ReadFrame(&buf, got)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if string(got[:n]) != "Ciallo" {
		t.Fatalf("got %q, want %q", got[:n], "Ciallo")
	}
}

func TestReadFrameShortBuffer(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFrame(&buf, []byte("too long")); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	_, err := ReadFrame(&buf, make([]byte, 3))
	if err != io.ErrShortBuffer {
		t.Fatalf("err = %v, want io.ErrShortBuffer", err)
	}
}

func TestWriteFrameOversized(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFrame(&buf, make([]byte, MaxPayload+1))
	if err != ErrFrameTooLarge {
		t.Fatalf("err = %v, want ErrFrameTooLarge", err)
	}
}

func TestStreamOverPipe(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	sa := NewStream(a)
	sb := NewStream(b)

	done := make(chan error, 1)
	go func() {
		_, err := sa.Write([]byte("Ciallo"))
		done <- err
	}()

	buf := make([]byte, 64)
	n, err := sb.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf[:n]) != "Ciallo" {
		t.Fatalf("got %q, want %q", buf[:n], "Ciallo")
	}
	if err := <-done; err != nil {
		t.Fatalf("Write: %v", err)
	}
}
