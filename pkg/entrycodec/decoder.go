package entrycodec

import (
	"fmt"

	bin "github.com/gagliardetto/binary"

	"github.com/cuemby/ledgerd/pkg/blockstore"
	"github.com/cuemby/ledgerd/pkg/types"
)

var _ blockstore.EntryDecoder = (*Decoder)(nil)

// wireMessage mirrors the bincode layout of a transaction message's
// signature-count-relevant fields.
type wireMessage struct {
	Version               int8
	NumRequiredSignatures uint8
	KeyCount              uint64 `bin:"sizeof=AccountKeys"`
	AccountKeys           [][32]byte
}

// wireTransaction mirrors the bincode layout of one transaction.
type wireTransaction struct {
	SigCount   uint64 `bin:"sizeof=Signatures"`
	Signatures [][64]byte
	Message    wireMessage
}

// wireEntry mirrors the bincode layout of one Proof-of-History entry, the
// same shape the reference blockstore reader decodes its deshredded
// payload into: a length-prefixed vector of entries, each a hash-chain
// step with an optional vector of transactions.
type wireEntry struct {
	NumHashes    uint64
	Hash         [32]byte
	TxCount      uint64 `bin:"sizeof=Transactions"`
	Transactions []wireTransaction
}

// Decoder implements blockstore.EntryDecoder over the bincode-encoded
// entry vector format.
type Decoder struct{}

// New builds a Decoder.
func New() *Decoder {
	return &Decoder{}
}

// DecodeEntries decodes buf as a length-prefixed vector of entries.
func (d *Decoder) DecodeEntries(buf []byte) ([]types.Entry, error) {
	var wire struct {
		Count   uint64 `bin:"sizeof=Entries"`
		Entries []wireEntry
	}
	dec := bin.NewBinDecoder(buf)
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("entrycodec: decode entries: %w", err)
	}

	entries := make([]types.Entry, len(wire.Entries))
	for i, we := range wire.Entries {
		entries[i] = types.Entry{
			NumHashes:    we.NumHashes,
			Hash:         types.Hash(we.Hash),
			Transactions: convertTransactions(we.Transactions),
		}
	}
	return entries, nil
}

func convertTransactions(wire []wireTransaction) []types.VersionedTransaction {
	out := make([]types.VersionedTransaction, len(wire))
	for i, wt := range wire {
		sigs := make([]types.Signature, len(wt.Signatures))
		for j, s := range wt.Signatures {
			sigs[j] = types.Signature(s)
		}
		keys := make([]types.Pubkey, len(wt.Message.AccountKeys))
		for j, k := range wt.Message.AccountKeys {
			keys[j] = types.Pubkey(k)
		}
		out[i] = types.VersionedTransaction{
			Signatures: sigs,
			Message: types.VersionedMessage{
				Version:               wt.Message.Version,
				NumRequiredSignatures: wt.Message.NumRequiredSignatures,
				AccountKeys:           keys,
			},
		}
	}
	return out
}
