package types

import "testing"

func TestSlotKeyOrdersNumerically(t *testing.T) {
	k9 := SlotKey(9)
	k10 := SlotKey(10)
	if !(string(k9[:]) < string(k10[:])) {
		t.Error("SlotKey(9) does not sort before SlotKey(10) byte-lexicographically")
	}

	slot, ok := ParseSlotKey(k10[:])
	if !ok || slot != 10 {
		t.Errorf("ParseSlotKey() = (%d, %v), want (10, true)", slot, ok)
	}
}

func TestShredKeyRoundTrip(t *testing.T) {
	key := ShredKey(42, 7)
	slot, index, ok := ParseShredKey(key[:])
	if !ok || slot != 42 || index != 7 {
		t.Errorf("ParseShredKey() = (%d, %d, %v), want (42, 7, true)", slot, index, ok)
	}
}

func TestAddressSignatureKeyRoundTrip(t *testing.T) {
	var addr Pubkey
	addr[0] = 1
	var sig Signature
	sig[0] = 2

	key := AddressSignatureKey(addr, 100, 3, sig)
	gotAddr, gotSlot, gotIdx, gotSig, ok := ParseAddressSignatureKey(key[:])
	if !ok || gotAddr != addr || gotSlot != 100 || gotIdx != 3 || gotSig != sig {
		t.Errorf("ParseAddressSignatureKey() = (%v, %d, %d, %v, %v), want (%v, 100, 3, %v, true)",
			gotAddr, gotSlot, gotIdx, gotSig, ok, addr, sig)
	}
}
