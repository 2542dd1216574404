package types

import "encoding/binary"

// Column-family key encoders. All keys are fixed-width, big-endian encoded
// field-by-field so that the lexicographic byte order a column-family
// store imposes (bbolt, RocksDB) equals numeric/tuple order — see
// pkg/kvstore's doc comment for why this matters.

// SlotKeySize is the width of a slot_meta/roots/blocktime/block_height key.
const SlotKeySize = 8

// SlotKey encodes a Slot as an 8-byte big-endian key.
func SlotKey(slot Slot) [SlotKeySize]byte {
	var key [SlotKeySize]byte
	binary.BigEndian.PutUint64(key[:], uint64(slot))
	return key
}

// ParseSlotKey decodes an 8-byte big-endian slot key.
func ParseSlotKey(key []byte) (Slot, bool) {
	if len(key) != SlotKeySize {
		return 0, false
	}
	return Slot(binary.BigEndian.Uint64(key)), true
}

// ShredKeySize is the width of a data_shred/code_shred key.
const ShredKeySize = 16

// ShredKey encodes (slot, index) as a 16-byte big-endian key.
func ShredKey(slot Slot, index uint64) [ShredKeySize]byte {
	var key [ShredKeySize]byte
	binary.BigEndian.PutUint64(key[0:8], uint64(slot))
	binary.BigEndian.PutUint64(key[8:16], index)
	return key
}

// ParseShredKey decodes a 16-byte big-endian (slot, index) key.
func ParseShredKey(key []byte) (slot Slot, index uint64, ok bool) {
	if len(key) != ShredKeySize {
		return 0, 0, false
	}
	slot = Slot(binary.BigEndian.Uint64(key[0:8]))
	index = binary.BigEndian.Uint64(key[8:16])
	return slot, index, true
}

// TransactionStatusKeySize is the width of a transaction_status/
// transaction_memos key: (signature, slot).
const TransactionStatusKeySize = SignatureSize + SlotKeySize

// TransactionStatusKey encodes (signature, slot).
func TransactionStatusKey(sig Signature, slot Slot) [TransactionStatusKeySize]byte {
	var key [TransactionStatusKeySize]byte
	copy(key[0:SignatureSize], sig[:])
	binary.BigEndian.PutUint64(key[SignatureSize:], uint64(slot))
	return key
}

// ParseTransactionStatusKey decodes a (signature, slot) key.
func ParseTransactionStatusKey(key []byte) (sig Signature, slot Slot, ok bool) {
	if len(key) != TransactionStatusKeySize {
		return sig, 0, false
	}
	copy(sig[:], key[0:SignatureSize])
	slot = Slot(binary.BigEndian.Uint64(key[SignatureSize:]))
	return sig, slot, true
}

// AddressSignatureKeySize is the width of an address_signatures key:
// (pubkey, slot, tx-index, signature).
const AddressSignatureKeySize = PubkeySize + SlotKeySize + 4 + SignatureSize

// AddressSignatureKey encodes (address, slot, txIndex, signature).
func AddressSignatureKey(addr Pubkey, slot Slot, txIndex uint32, sig Signature) [AddressSignatureKeySize]byte {
	var key [AddressSignatureKeySize]byte
	off := 0
	copy(key[off:off+PubkeySize], addr[:])
	off += PubkeySize
	binary.BigEndian.PutUint64(key[off:off+SlotKeySize], uint64(slot))
	off += SlotKeySize
	binary.BigEndian.PutUint32(key[off:off+4], txIndex)
	off += 4
	copy(key[off:off+SignatureSize], sig[:])
	return key
}

// ParseAddressSignatureKey decodes an (address, slot, txIndex, signature)
// key.
func ParseAddressSignatureKey(key []byte) (addr Pubkey, slot Slot, txIndex uint32, sig Signature, ok bool) {
	if len(key) != AddressSignatureKeySize {
		return addr, 0, 0, sig, false
	}
	off := 0
	copy(addr[:], key[off:off+PubkeySize])
	off += PubkeySize
	slot = Slot(binary.BigEndian.Uint64(key[off : off+SlotKeySize]))
	off += SlotKeySize
	txIndex = binary.BigEndian.Uint32(key[off : off+4])
	off += 4
	copy(sig[:], key[off:off+SignatureSize])
	return addr, slot, txIndex, sig, true
}
