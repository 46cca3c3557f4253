package capturestore

import (
	"context"
	"testing"

	modbus "github.com/modbus-tools/dissector"
)

func parseOrFail(t *testing.T, raw []byte, dir modbus.Direction) *modbus.Message {
	t.Helper()
	var m modbus.Modbus
	_, msg, err := m.Parse(raw, dir)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return msg
}

func TestRecordAndFlaggedRoundTrip(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	// flags=NONE: a clean diagnostic request.
	clean := parseOrFail(t, []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x06, 0x03, 0x08, 0x00, 0x04, 0x00, 0x00}, modbus.ToServer)
	if clean.Flags != modbus.FlagNone {
		t.Fatalf("expected the fixture message to carry no flags, got %v", clean.Flags)
	}
	if err := store.Record("request", "127.0.0.1:502", clean, []byte{0x08, 0x00, 0x04, 0x00, 0x00}); err != nil {
		t.Fatalf("Record(clean): %v", err)
	}

	// flags!=0: a read-discrete-inputs request with quantity=0.
	flagged := parseOrFail(t, []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x06, 0x01, 0x02, 0x00, 0x01, 0x00, 0x00}, modbus.ToServer)
	if flagged.Flags == modbus.FlagNone {
		t.Fatalf("expected the fixture message to carry DATA_VALUE")
	}
	if err := store.Record("request", "127.0.0.1:502", flagged, []byte{0x02, 0x00, 0x01, 0x00, 0x00}); err != nil {
		t.Fatalf("Record(flagged): %v", err)
	}

	rows, err := store.Flagged(context.Background())
	if err != nil {
		t.Fatalf("Flagged: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly 1 flagged row, got %d", len(rows))
	}
	if rows[0].FunctionRaw != flagged.Function.Raw {
		t.Fatalf("expected flagged row's function_raw to match, got %d", rows[0].FunctionRaw)
	}
}

func TestOperationsAfterCloseReturnErrNotOpen(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	msg := parseOrFail(t, []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x06, 0x03, 0x08, 0x00, 0x04, 0x00, 0x00}, modbus.ToServer)
	if err := store.Record("request", "127.0.0.1:502", msg, nil); err != ErrNotOpen {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}
	if _, err := store.Flagged(context.Background()); err != ErrNotOpen {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}
}
