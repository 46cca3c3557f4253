package modbus

import "testing"

func TestAccessTypeContainsAndIntersects(t *testing.T) {
	a := AccessRead | AccessCoils
	if !a.Contains(AccessRead) {
		t.Fatalf("expected a to contain READ")
	}
	if a.Contains(AccessWrite) {
		t.Fatalf("did not expect a to contain WRITE")
	}
	if !a.Intersects(AccessBitMask) {
		t.Fatalf("expected a to intersect BIT_ACCESS_MASK")
	}
}

func TestParseAccessTypeKeywords(t *testing.T) {
	cases := map[string]AccessType{
		"read":      AccessRead,
		"write":     AccessWrite,
		"discretes": AccessDiscretes,
		"coils":     AccessCoils,
		"input":     AccessInput,
		"holding":   AccessHolding,
		"single":    AccessSingle,
		"multiple":  AccessMultiple,
	}
	for kw, want := range cases {
		got, err := ParseAccessType(kw)
		if err != nil {
			t.Fatalf("ParseAccessType(%q) returned error: %v", kw, err)
		}
		if got != want {
			t.Fatalf("ParseAccessType(%q) = %v, want %v", kw, got, want)
		}
	}
	if _, err := ParseAccessType("bogus"); err == nil {
		t.Fatalf("expected error for unknown keyword")
	}
}

func TestAccessTypeForTable(t *testing.T) {
	cases := map[FunctionCode]AccessType{
		FuncRdCoils:          AccessRead | AccessCoils,
		FuncRdDiscreteInputs: AccessRead | AccessDiscretes,
		FuncRdHoldRegs:       AccessRead | AccessHolding,
		FuncRdInputRegs:      AccessRead | AccessInput,
		FuncWrSingleCoil:     AccessCoils | AccessWriteSingle,
		FuncWrSingleReg:      AccessHolding | AccessWriteSingle,
		FuncWrMultCoils:      AccessCoils | AccessWriteMultiple,
		FuncWrMultRegs:       AccessHolding | AccessWriteMultiple,
		FuncMaskWrReg:        AccessHolding | AccessWrite,
		FuncRdWrMultRegs:     AccessHolding | AccessRead | AccessWriteMultiple,
		FuncDiagnostic:       AccessNone,
		FuncUnknown:          AccessNone,
	}
	for fc, want := range cases {
		if got := accessTypeFor(fc); got != want {
			t.Fatalf("accessTypeFor(%v) = %v, want %v", fc, got, want)
		}
	}
}
