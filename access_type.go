package modbus

import (
	"fmt"
	"strings"
)

// AccessType is a bit set describing how a function code touches the
// data model: which direction (read/write), which item kind (coil,
// discrete input, holding or input register), and whether it's a
// single- or multiple-item operation. It drives dissector dispatch, so
// it is a fixed-width bitfield with named aliases rather than a set of
// strings or a hash set, per the access classifier design.
type AccessType uint8

const (
	AccessNone      AccessType = 0
	AccessRead      AccessType = 1 << 0
	AccessWrite     AccessType = 1 << 1
	AccessDiscretes AccessType = 1 << 2
	AccessCoils     AccessType = 1 << 3
	AccessInput     AccessType = 1 << 4
	AccessHolding   AccessType = 1 << 5
	AccessSingle    AccessType = 1 << 6
	AccessMultiple  AccessType = 1 << 7

	// AccessBitMask covers the two bit-addressed item kinds: coils and
	// discrete inputs. Quantities for these are capped at 2000 rather
	// than 125.
	AccessBitMask = AccessDiscretes | AccessCoils
	// AccessFuncMask covers every item kind a function can touch.
	AccessFuncMask  = AccessDiscretes | AccessCoils | AccessInput | AccessHolding
	AccessWriteSingle   = AccessWrite | AccessSingle
	AccessWriteMultiple = AccessWrite | AccessMultiple
)

// Contains reports whether every bit in other is set in a.
func (a AccessType) Contains(other AccessType) bool {
	return a&other == other
}

// Intersects reports whether a and other share any set bit.
func (a AccessType) Intersects(other AccessType) bool {
	return a&other != 0
}

func (a AccessType) String() string {
	if a == AccessNone {
		return "NONE"
	}
	names := []struct {
		bit  AccessType
		name string
	}{
		{AccessRead, "READ"},
		{AccessWrite, "WRITE"},
		{AccessDiscretes, "DISCRETES"},
		{AccessCoils, "COILS"},
		{AccessInput, "INPUT"},
		{AccessHolding, "HOLDING"},
		{AccessSingle, "SINGLE"},
		{AccessMultiple, "MULTIPLE"},
	}
	var parts []string
	for _, n := range names {
		if a.Intersects(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseAccessType parses the auxiliary keyword form used by rule
// authors: one of read, write, discretes, coils, input, holding,
// single, multiple. Any other string is an error.
func ParseAccessType(s string) (AccessType, error) {
	switch s {
	case "read":
		return AccessRead, nil
	case "write":
		return AccessWrite, nil
	case "discretes":
		return AccessDiscretes, nil
	case "coils":
		return AccessCoils, nil
	case "input":
		return AccessInput, nil
	case "holding":
		return AccessHolding, nil
	case "single":
		return AccessSingle, nil
	case "multiple":
		return AccessMultiple, nil
	default:
		return AccessNone, fmt.Errorf("modbus: unknown access type keyword %q", s)
	}
}

// accessTypeFor is the access classifier: a total function from a
// decoded FunctionCode to the AccessType that drives dispatch.
func accessTypeFor(code FunctionCode) AccessType {
	switch code {
	case FuncRdCoils:
		return AccessRead | AccessCoils
	case FuncRdDiscreteInputs:
		return AccessRead | AccessDiscretes
	case FuncRdHoldRegs:
		return AccessRead | AccessHolding
	case FuncRdInputRegs:
		return AccessRead | AccessInput
	case FuncWrSingleCoil:
		return AccessCoils | AccessWriteSingle
	case FuncWrSingleReg:
		return AccessHolding | AccessWriteSingle
	case FuncWrMultCoils:
		return AccessCoils | AccessWriteMultiple
	case FuncWrMultRegs:
		return AccessHolding | AccessWriteMultiple
	case FuncMaskWrReg:
		return AccessHolding | AccessWrite
	case FuncRdWrMultRegs:
		return AccessHolding | AccessRead | AccessWriteMultiple
	default:
		return AccessNone
	}
}
