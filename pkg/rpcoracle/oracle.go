package rpcoracle

import (
	"context"
	"fmt"

	"github.com/cuemby/ledgerd/pkg/forwarding"
	"github.com/cuemby/ledgerd/pkg/types"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Oracle implements forwarding.RPCOracle over a solana-go/rpc client.
type Oracle struct {
	client *rpc.Client
}

// New wraps an already-constructed rpc.Client. Callers typically build one
// with rpc.New(endpoint).
func New(client *rpc.Client) *Oracle {
	return &Oracle{client: client}
}

var _ forwarding.RPCOracle = (*Oracle)(nil)

// GetEpochInfo fetches the current epoch's position and bounds.
func (o *Oracle) GetEpochInfo(ctx context.Context) (types.EpochInfo, error) {
	info, err := o.client.GetEpochInfo(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return types.EpochInfo{}, fmt.Errorf("rpcoracle: GetEpochInfo: %w", err)
	}
	return types.EpochInfo{
		Epoch:        info.Epoch,
		SlotIndex:    info.SlotIndex,
		SlotsInEpoch: info.SlotsInEpoch,
		AbsoluteSlot: types.Slot(info.AbsoluteSlot),
	}, nil
}

// GetLatestBlockhash fetches the most recent blockhash.
func (o *Oracle) GetLatestBlockhash(ctx context.Context) (types.Hash, error) {
	out, err := o.client.GetLatestBlockhash(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return types.Hash{}, fmt.Errorf("rpcoracle: GetLatestBlockhash: %w", err)
	}
	var h types.Hash
	copy(h[:], out.Value.Blockhash[:])
	return h, nil
}

// GetLeaderSchedule fetches the current epoch's leader schedule, keyed by
// leader pubkey, each mapped to its assigned (epoch-relative) slot
// indices.
func (o *Oracle) GetLeaderSchedule(ctx context.Context) (map[types.Pubkey][]uint64, error) {
	schedule, err := o.client.GetLeaderSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("rpcoracle: GetLeaderSchedule: %w", err)
	}
	out := make(map[types.Pubkey][]uint64, len(schedule))
	for pubkey, slots := range schedule {
		key, err := types.PubkeyFromBytes(solana.PublicKey(pubkey).Bytes())
		if err != nil {
			continue
		}
		out[key] = slots
	}
	return out, nil
}

// GetBlockHeight fetches the current block height.
func (o *Oracle) GetBlockHeight(ctx context.Context) (uint64, error) {
	height, err := o.client.GetBlockHeight(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("rpcoracle: GetBlockHeight: %w", err)
	}
	return height, nil
}

// GetSignatureStatuses fetches statuses for sigs, in the same order, with
// searchTransactionHistory forwarded as given. The forwarding processor
// depends on response order matching request order.
func (o *Oracle) GetSignatureStatuses(ctx context.Context, sigs []types.Signature, searchTransactionHistory bool) ([]*forwarding.SignatureStatus, error) {
	solanaSigs := make([]solana.Signature, len(sigs))
	for i, s := range sigs {
		solanaSigs[i] = solana.Signature(s)
	}

	resp, err := o.client.GetSignatureStatuses(ctx, searchTransactionHistory, solanaSigs...)
	if err != nil {
		return nil, fmt.Errorf("rpcoracle: GetSignatureStatuses: %w", err)
	}

	out := make([]*forwarding.SignatureStatus, len(resp.Value))
	for i, v := range resp.Value {
		if v == nil {
			continue
		}
		status := &forwarding.SignatureStatus{}
		if v.Confirmations != nil {
			c := uint64(*v.Confirmations)
			status.Confirmations = &c
		}
		if v.Err != nil {
			status.Err = types.TransactionErrorCode(fmt.Sprintf("%v", v.Err))
		}
		out[i] = status
	}
	return out, nil
}
