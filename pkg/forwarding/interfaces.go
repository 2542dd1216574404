package forwarding

import (
	"context"
	"net"

	"github.com/cuemby/ledgerd/pkg/types"
)

// SignatureStatus is one element of RPCOracle.GetSignatureStatuses'
// result: nil Confirmations means rooted; a non-empty Err means the
// transaction failed execution.
type SignatureStatus struct {
	Confirmations *uint64
	Err           types.TransactionErrorCode
}

// RPCOracle is the external RPC client this package consumes: epoch info,
// blockhash, leader schedule, block height, and signature statuses.
// pkg/rpcoracle provides the production implementation over
// gagliardetto/solana-go/rpc.
type RPCOracle interface {
	GetEpochInfo(ctx context.Context) (types.EpochInfo, error)
	GetLatestBlockhash(ctx context.Context) (types.Hash, error)
	// GetLeaderSchedule returns, for the current epoch, every leader's
	// assigned slot indices (relative to the epoch's start slot).
	GetLeaderSchedule(ctx context.Context) (map[types.Pubkey][]uint64, error)
	GetBlockHeight(ctx context.Context) (uint64, error)
	// GetSignatureStatuses returns one status per requested signature, in
	// the same order, nil where the RPC node has no record.
	GetSignatureStatuses(ctx context.Context, sigs []types.Signature, searchTransactionHistory bool) ([]*SignatureStatus, error)
}

// GossipTable is the external contact-info lookup this package consumes.
// pkg/gossip provides the production implementation.
type GossipTable interface {
	GetThreadSafeContactInfo(pubkey types.Pubkey) (tpuAddr *net.UDPAddr, found bool)
}

// TPUSender pushes a batch of already-serialized transactions to a
// leader's TPU socket. pkg/tpuconn provides the production UDP
// implementation; transport errors are surfaced, not retried here (the
// processor thread owns retry policy).
type TPUSender interface {
	Send(addr *net.UDPAddr, wireBatch [][]byte) error
}
