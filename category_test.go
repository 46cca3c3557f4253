package modbus

import "testing"

func TestCategoryFromRawBands(t *testing.T) {
	cases := []struct {
		raw  byte
		want CodeCategory
	}{
		{0, CategoryNone},
		{1, CategoryPublicUnassigned},
		{8, CategoryPublicUnassigned},
		{9, CategoryReserved},
		{14, CategoryReserved},
		{15, CategoryPublicUnassigned},
		{40, CategoryPublicUnassigned},
		{41, CategoryReserved},
		{42, CategoryReserved},
		{43, CategoryPublicUnassigned},
		{64, CategoryPublicUnassigned},
		{65, CategoryUserDefined},
		{72, CategoryUserDefined},
		{73, CategoryPublicUnassigned},
		{89, CategoryPublicUnassigned},
		{90, CategoryReserved},
		{91, CategoryReserved},
		{92, CategoryPublicUnassigned},
		{99, CategoryPublicUnassigned},
		{100, CategoryUserDefined},
		{110, CategoryUserDefined},
		{111, CategoryPublicUnassigned},
		{124, CategoryPublicUnassigned},
		{125, CategoryReserved},
		{127, CategoryReserved},
		{128, CategoryNone},
		{255, CategoryNone},
	}
	for _, c := range cases {
		if got := categoryFromRaw(c.raw); got != c.want {
			t.Fatalf("categoryFromRaw(%d) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestResolveCategoryUnknownFunction(t *testing.T) {
	msg := &Message{Function: newFunction(0x63)} // 99 -> PublicUnassigned
	if got := resolveCategory(msg); got != CategoryPublicUnassigned {
		t.Fatalf("resolveCategory = %v, want PUBLIC_UNASSIGNED", got)
	}
}

func TestResolveCategoryReservedDiagnostic(t *testing.T) {
	msg := &Message{
		Function: newFunction(0x08),
		Data:     DiagnosticData{Subfunction: newDiagnostic(0x1234)},
	}
	if got := resolveCategory(msg); got != CategoryReserved {
		t.Fatalf("resolveCategory = %v, want RESERVED", got)
	}
}

func TestResolveCategoryReservedMEI(t *testing.T) {
	msg := &Message{
		Function: newFunction(0x2B),
		Data:     MEIData{Type: newMEI(0x99)},
	}
	if got := resolveCategory(msg); got != CategoryReserved {
		t.Fatalf("resolveCategory = %v, want RESERVED", got)
	}
}
