package modbus

import "strings"

// CodeCategory classifies a function code the way the protocol
// reference tables do: whether it's a documented public function, a
// public but unassigned slot, a user-defined slot, or reserved.
// Mutually exclusive in practice for any one message, but modeled as
// bit flags like the rest of the taxonomy for consistency.
type CodeCategory uint8

const (
	CategoryNone             CodeCategory = 0
	CategoryPublicAssigned   CodeCategory = 1 << 0
	CategoryPublicUnassigned CodeCategory = 1 << 1
	CategoryUserDefined      CodeCategory = 1 << 2
	CategoryReserved         CodeCategory = 1 << 3
)

func (c CodeCategory) String() string {
	switch c {
	case CategoryNone:
		return "NONE"
	case CategoryPublicAssigned:
		return "PUBLIC_ASSIGNED"
	case CategoryPublicUnassigned:
		return "PUBLIC_UNASSIGNED"
	case CategoryUserDefined:
		return "USER_DEFINED"
	case CategoryReserved:
		return "RESERVED"
	default:
		var parts []string
		if c&CategoryPublicAssigned != 0 {
			parts = append(parts, "PUBLIC_ASSIGNED")
		}
		if c&CategoryPublicUnassigned != 0 {
			parts = append(parts, "PUBLIC_UNASSIGNED")
		}
		if c&CategoryUserDefined != 0 {
			parts = append(parts, "USER_DEFINED")
		}
		if c&CategoryReserved != 0 {
			parts = append(parts, "RESERVED")
		}
		return strings.Join(parts, "|")
	}
}

// categoryFromRaw buckets an unrecognized raw function byte into a
// category using the numeric bands from the protocol reference tables.
func categoryFromRaw(raw byte) CodeCategory {
	switch {
	case raw == 0:
		return CategoryNone
	case raw < 9:
		return CategoryPublicUnassigned
	case raw < 15:
		return CategoryReserved
	case raw < 41:
		return CategoryPublicUnassigned
	case raw < 43:
		return CategoryReserved
	case raw < 65:
		return CategoryPublicUnassigned
	case raw < 73:
		return CategoryUserDefined
	case raw < 90:
		return CategoryPublicUnassigned
	case raw < 92:
		return CategoryReserved
	case raw < 100:
		return CategoryPublicUnassigned
	case raw < 111:
		return CategoryUserDefined
	case raw < 125:
		return CategoryPublicUnassigned
	case raw < 128:
		return CategoryReserved
	default:
		return CategoryNone
	}
}

// resolveCategory assigns the final category to a fully dissected
// message. It must run after dissection since Diagnostic and MEI
// messages derive their category from their decoded sub-content.
func resolveCategory(msg *Message) CodeCategory {
	switch msg.Function.Code {
	case FuncDiagnostic:
		if diag, ok := msg.Data.(DiagnosticData); ok {
			if diag.Subfunction.Code == DiagReserved {
				return CategoryReserved
			}
			return CategoryPublicAssigned
		}
		return CategoryNone
	case FuncMEI:
		if mei, ok := msg.Data.(MEIData); ok {
			if mei.Type.Code == MEIUnknown {
				return CategoryReserved
			}
			return CategoryPublicAssigned
		}
		return CategoryNone
	case FuncUnknown:
		return categoryFromRaw(msg.Function.Raw)
	default:
		return CategoryPublicAssigned
	}
}
