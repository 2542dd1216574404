package main

import (
	"fmt"

	"github.com/cuemby/ledgerd/pkg/blockstore"
	"github.com/cuemby/ledgerd/pkg/types"
)

// passthroughShredCodec and passthroughDeshredder mirror the ledgerd
// daemon's placeholders: the real shred erasure-coding library is out of
// scope, so this CLI reads stores populated by a test harness that writes
// raw entry bytes as single-shred payloads.
type passthroughShredCodec struct{}

func (passthroughShredCodec) DecodeDataShred(slot types.Slot, index uint64, raw []byte) (types.Shred, error) {
	return types.Shred{Kind: types.DataShredKind, Slot: slot, Index: index, Payload: raw, DataComplete: true}, nil
}

func (passthroughShredCodec) DecodeCodeShred(slot types.Slot, index uint64, raw []byte) (types.Shred, error) {
	return types.Shred{Kind: types.CodeShredKind, Slot: slot, Index: index, Payload: raw}, nil
}

func (passthroughShredCodec) EncodeShred(shred types.Shred) ([]byte, error) {
	return shred.Payload, nil
}

var _ blockstore.ShredCodec = passthroughShredCodec{}

type passthroughDeshredder struct{}

func (passthroughDeshredder) Deshred(shreds []types.Shred) ([]byte, error) {
	var out []byte
	for _, s := range shreds {
		if !s.IsData() {
			return nil, fmt.Errorf("passthroughDeshredder: code shred in data range at index %d", s.Index)
		}
		out = append(out, s.Payload...)
	}
	return out, nil
}

var _ blockstore.Deshredder = passthroughDeshredder{}
