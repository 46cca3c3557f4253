package modbus

import "testing"

func TestReadHeaderProtocolIDMustBeZero(t *testing.T) {
	buf := []byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x06, 0x03, 0x08, 0x00, 0x04, 0x00, 0x00}
	_, err := readHeader(buf)
	if !IsInvalidData(err) {
		t.Fatalf("expected InvalidData for nonzero protocol id, got %v", err)
	}
}

func TestReadHeaderLengthBelowTwoIsInvalidData(t *testing.T) {
	buf := []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x03}
	_, err := readHeader(buf)
	if !IsInvalidData(err) {
		t.Fatalf("expected InvalidData for length < 2, got %v", err)
	}
}

func TestReadHeaderIncompletePDU(t *testing.T) {
	// Declares length=6 (need 6 total bytes after the prefix) but only
	// supplies the unit_id and function byte, no PDU.
	buf := []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x06, 0x03, 0x08}
	_, err := readHeader(buf)
	e, ok := err.(*Error)
	if !ok || e.Kind != KindIncomplete {
		t.Fatalf("expected Incomplete, got %v", err)
	}
	if e.Needed != 4 {
		t.Fatalf("expected Needed=4, got %d", e.Needed)
	}
}

func TestReadHeaderExactFit(t *testing.T) {
	buf := []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x06, 0x03, 0x08, 0x00, 0x04, 0x00, 0x00}
	h, err := readHeader(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.consumed != len(buf) {
		t.Fatalf("expected consumed=%d, got %d", len(buf), h.consumed)
	}
	if h.unitID != 3 || h.rawFunction != 0x08 {
		t.Fatalf("unexpected unit/function: %d/0x%02X", h.unitID, h.rawFunction)
	}
}
