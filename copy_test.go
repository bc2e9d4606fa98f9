package udpflow

import (
	"net"
	"testing"
)

func TestBridgeRelaysBothDirections(t *testing.T) {
	a1, a2 := net.Pipe()
	b1, b2 := net.Pipe()

	done := make(chan struct{})
	go func() {
		Bridge(a2, b1)
		close(done)
	}()

	if _, err := a1.Write([]byte("ping")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	buf := make([]byte, 64)
	n, err := b2.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf[:n]) != "ping" {
		t.Fatalf("got %q, want %q", buf[:n], "ping")
	}

	if _, err := b2.Write([]byte("pong")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	n, err = a1.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf[:n]) != "pong" {
		t.Fatalf("got %q, want %q", buf[:n], "pong")
	}

	a1.Close()
	b2.Close()
	<-done
}
