package blockstore

import "github.com/cuemby/ledgerd/pkg/types"

// ShredCodec decodes the raw bytes a data_shred/code_shred column family
// entry stores into a types.Shred — parsing its header flags
// (dataComplete, isLastInSlot, referenceTick) and encoding the inverse.
// Shred wire parsing is a protocol-format concern kept external to this
// package, the same way Deshredder and EntryDecoder are.
type ShredCodec interface {
	DecodeDataShred(slot types.Slot, index uint64, raw []byte) (types.Shred, error)
	DecodeCodeShred(slot types.Slot, index uint64, raw []byte) (types.Shred, error)
	// EncodeShred serializes a shred back to its on-disk representation,
	// used by isShredDuplicate to rewrite a stored copy's retransmitter
	// signature before comparing.
	EncodeShred(shred types.Shred) ([]byte, error)
}
