package tpuconn

import (
	"fmt"
	"net"
	"time"

	"github.com/cuemby/ledgerd/pkg/forwarding"
)

// Sender pushes wire-encoded transactions at a leader's TPU over UDP. It
// satisfies forwarding.TPUSender.
type Sender struct {
	// Timeout bounds each dial and write. Defaults to 2 seconds when
	// zero.
	Timeout time.Duration
}

// NewSender builds a Sender with the default timeout.
func NewSender() *Sender {
	return &Sender{Timeout: 2 * time.Second}
}

var _ forwarding.TPUSender = (*Sender)(nil)

// Send dials addr and writes each entry of batch as a separate UDP
// datagram, in order. It stops and returns the first write error;
// datagrams already sent are not retried by Sender itself, that is the
// processor loop's job on the next tick.
func (s *Sender) Send(addr *net.UDPAddr, batch [][]byte) error {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	dialer := &net.Dialer{Timeout: timeout}
	conn, err := dialer.Dial("udp", addr.String())
	if err != nil {
		return fmt.Errorf("tpuconn: dial %s: %w", addr, err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return fmt.Errorf("tpuconn: set write deadline: %w", err)
	}

	for i, wire := range batch {
		if _, err := conn.Write(wire); err != nil {
			return fmt.Errorf("tpuconn: write datagram %d/%d to %s: %w", i, len(batch), addr, err)
		}
	}
	return nil
}
