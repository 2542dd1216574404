package tpuconn

import (
	"net"
	"testing"
	"time"
)

func TestSenderSendsDatagramsInOrder(t *testing.T) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	if err != nil {
		t.Fatalf("ListenUDP() error = %v", err)
	}
	defer conn.Close()

	addr := conn.LocalAddr().(*net.UDPAddr)
	sender := &Sender{Timeout: time.Second}

	batch := [][]byte{[]byte("one"), []byte("two"), []byte("three")}
	errCh := make(chan error, 1)
	go func() { errCh <- sender.Send(addr, batch) }()

	buf := make([]byte, 64)
	if err := conn.SetReadDeadline(time.Now().Add(time.Second)); err != nil {
		t.Fatalf("SetReadDeadline() error = %v", err)
	}

	for i, want := range batch {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			t.Fatalf("ReadFromUDP() datagram %d error = %v", i, err)
		}
		if got := string(buf[:n]); got != string(want) {
			t.Errorf("datagram %d = %q, want %q", i, got, want)
		}
	}

	if err := <-errCh; err != nil {
		t.Fatalf("Send() error = %v", err)
	}
}

func TestSenderDefaultsTimeoutWhenZero(t *testing.T) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	if err != nil {
		t.Fatalf("ListenUDP() error = %v", err)
	}
	defer conn.Close()

	sender := &Sender{} // zero-value Timeout
	addr := conn.LocalAddr().(*net.UDPAddr)

	if err := sender.Send(addr, [][]byte{[]byte("ping")}); err != nil {
		t.Fatalf("Send() with zero Timeout error = %v, want the 2s default to apply", err)
	}
}
