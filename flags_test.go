package modbus

import "testing"

func TestErrorFlagsHasAndString(t *testing.T) {
	f := FlagDataValue | FlagExcCode
	if !f.Has(FlagDataValue) || !f.Has(FlagExcCode) {
		t.Fatalf("expected both flags set")
	}
	if f.Has(FlagDataLength) {
		t.Fatalf("did not expect DATA_LENGTH set")
	}
	if FlagNone.String() != "NONE" {
		t.Fatalf("expected NONE, got %q", FlagNone.String())
	}
	if f.String() == "" {
		t.Fatalf("expected non-empty flag string")
	}
}
