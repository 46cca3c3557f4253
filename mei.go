package modbus

// MEIType names the MEI (Modbus Encapsulated Interface) type field of
// an MEI (0x2B) request/response.
type MEIType int

const (
	MEIUnknown MEIType = iota
	MEICANOpenGenRefReqResp
	MEIRdDevId
)

func meiTypeFromRaw(val byte) MEIType {
	switch val {
	case 0x0D:
		return MEICANOpenGenRefReqResp
	case 0x0E:
		return MEIRdDevId
	default:
		return MEIUnknown
	}
}

func (t MEIType) String() string {
	switch t {
	case MEICANOpenGenRefReqResp:
		return "CANOpenGenRefReqResp"
	case MEIRdDevId:
		return "RdDevId"
	default:
		return "Unknown"
	}
}

// MEI pairs the raw MEI type byte with its decoded symbol.
type MEI struct {
	Raw  byte
	Code MEIType
}

func newMEI(raw byte) MEI {
	return MEI{Raw: raw, Code: meiTypeFromRaw(raw)}
}

func (m MEI) String() string {
	return m.Code.String()
}
