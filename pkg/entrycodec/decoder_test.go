package entrycodec

import (
	"bytes"
	"testing"

	bin "github.com/gagliardetto/binary"
)

func TestDecodeEntriesRoundTrip(t *testing.T) {
	wire := struct {
		Count   uint64 `bin:"sizeof=Entries"`
		Entries []wireEntry
	}{
		Entries: []wireEntry{
			{
				NumHashes: 5,
				Hash:      [32]byte{1, 2, 3},
				Transactions: []wireTransaction{
					{
						Signatures: [][64]byte{{9, 9}},
						Message: wireMessage{
							Version:               0,
							NumRequiredSignatures: 1,
							AccountKeys:           [][32]byte{{4, 4}, {5, 5}},
						},
					},
				},
			},
			{
				NumHashes:    8,
				Hash:         [32]byte{7},
				Transactions: nil,
			},
		},
	}

	var buf bytes.Buffer
	enc := bin.NewBinEncoder(&buf)
	if err := enc.Encode(wire); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	entries, err := New().DecodeEntries(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("DecodeEntries() returned %d entries, want 2", len(entries))
	}

	if entries[0].NumHashes != 5 {
		t.Errorf("entries[0].NumHashes = %d, want 5", entries[0].NumHashes)
	}
	if len(entries[0].Transactions) != 1 {
		t.Fatalf("entries[0].Transactions length = %d, want 1", len(entries[0].Transactions))
	}
	tx := entries[0].Transactions[0]
	if len(tx.Signatures) != 1 || len(tx.Message.AccountKeys) != 2 {
		t.Errorf("entries[0].Transactions[0] = %+v, want 1 signature and 2 account keys", tx)
	}

	if entries[1].NumHashes != 8 || len(entries[1].Transactions) != 0 {
		t.Errorf("entries[1] = %+v, want NumHashes=8 and no transactions", entries[1])
	}
}

func TestDecodeEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	enc := bin.NewBinEncoder(&buf)
	wire := struct {
		Count   uint64 `bin:"sizeof=Entries"`
		Entries []wireEntry
	}{}
	if err := enc.Encode(wire); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	entries, err := New().DecodeEntries(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeEntries() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("DecodeEntries() on empty vector = %d entries, want 0", len(entries))
	}
}
