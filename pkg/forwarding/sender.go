package forwarding

import "github.com/cuemby/ledgerd/pkg/types"

// sendTransactions snapshots the current leader addresses, projects the
// batch's wire bytes, and pushes that batch to every resolved leader
// address. Transport errors are surfaced to the caller.
func (s *Service) sendTransactions(batch []types.TransactionInfo) error {
	addrs, err := s.serviceInfo.GetLeaderAddresses(s.now())
	if err != nil {
		return err
	}

	wire := make([][]byte, len(batch))
	for i, info := range batch {
		wire[i] = info.WireBytes
	}

	for _, addr := range addrs {
		if err := s.tpu.Send(addr, wire); err != nil {
			return err
		}
	}
	return nil
}
