package types

import "testing"

func TestSlotMetaIsFull(t *testing.T) {
	m := NewSlotMeta(10)
	if m.IsFull() {
		t.Error("IsFull() on empty SlotMeta = true, want false")
	}

	m.Received = 4
	m.Consumed = 5
	if !m.IsFull() {
		t.Error("IsFull() = false, want true when Consumed == Received+1")
	}

	m.Consumed = 4
	if m.IsFull() {
		t.Error("IsFull() = true, want false when Consumed == Received")
	}
}

func TestSlotMetaIsFullNilSafe(t *testing.T) {
	var m *SlotMeta
	if m.IsFull() {
		t.Error("IsFull() on nil SlotMeta = true, want false")
	}
}
