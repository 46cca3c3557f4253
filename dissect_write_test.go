package modbus

import "testing"

// TestWriteResponsePolarityInversion exercises the "apparent issue"
// preserved from the reference parser: for a bit-access (coils)
// multiple-write response, the quantity is checked against the
// word-access ceiling (125), not the bit-access ceiling (2000), and
// vice versa for non-bit access.
func TestWriteResponsePolarityInversion(t *testing.T) {
	// Coils response, quantity=200: exceeds the (inverted) 125 ceiling
	// applied here, so DATA_VALUE must be set even though 200 is well
	// under the normal bit-access ceiling of 2000.
	msg := &Message{length: 6, AccessType: AccessCoils | AccessWriteMultiple}
	pdu := []byte{0x00, 0x01, 0x00, 0xC8} // address=1, quantity=200
	if err := dissectWriteResponse(msg, pdu); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !msg.Flags.Has(FlagDataValue) {
		t.Fatalf("expected DATA_VALUE for coils quantity=200 under the inverted ceiling")
	}

	// Holding-register response, quantity=200: under the (inverted)
	// 2000 ceiling applied to non-bit access here, so no flag.
	msg2 := &Message{length: 6, AccessType: AccessHolding | AccessWriteMultiple}
	if err := dissectWriteResponse(msg2, pdu); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg2.Flags.Has(FlagDataValue) {
		t.Fatalf("did not expect DATA_VALUE for holding quantity=200 under the inverted ceiling")
	}
}

func TestWriteSingleCoilValueCheck(t *testing.T) {
	msg := &Message{length: 6, AccessType: AccessCoils | AccessWriteSingle}
	bad := []byte{0x00, 0x01, 0x12, 0x34}
	if err := dissectWriteRequest(msg, bad); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !msg.Flags.Has(FlagDataValue) {
		t.Fatalf("expected DATA_VALUE for a coil value outside {0x0000, 0xFF00}")
	}

	okMsg := &Message{length: 6, AccessType: AccessCoils | AccessWriteSingle}
	ok := []byte{0x00, 0x01, 0xFF, 0x00}
	if err := dissectWriteRequest(okMsg, ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if okMsg.Flags.Has(FlagDataValue) {
		t.Fatalf("did not expect DATA_VALUE for 0xFF00")
	}
}

func TestWriteMaskDataLengthFlag(t *testing.T) {
	msg := &Message{length: 9, AccessType: AccessHolding | AccessWrite}
	pdu := []byte{0x00, 0x01, 0x00, 0xFF, 0xFF, 0x00}
	if err := dissectWriteRequest(msg, pdu); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !msg.Flags.Has(FlagDataLength) {
		t.Fatalf("expected DATA_LENGTH when data_length > 6")
	}
	wm, ok := msg.Data.(WriteMaskData)
	if !ok {
		t.Fatalf("expected WriteMaskData, got %T", msg.Data)
	}
	if wm.Address != 1 || wm.AndMask != 0xFF || wm.OrMask != 0xFF00 {
		t.Fatalf("unexpected mask data: %+v", wm)
	}
}
