package blockstore

import "encoding/json"

// Structured column-family values (slot_meta, transaction_status, rewards,
// perf_samples, bank_hash, optimistic_slots, duplicate_slots,
// program_costs) are persisted as JSON, the same way pkg/storage's
// BoltStore persists its domain records. This is metadata serialization,
// not the ledger's wire format — shreds and entries (EntryDecoder,
// ShredCodec) use the real binary encoding; these auxiliary records do
// not need to match any external protocol.
func encodeValue(v any) ([]byte, error) {
	return json.Marshal(v)
}

func decodeValue(raw []byte, v any) error {
	return json.Unmarshal(raw, v)
}
