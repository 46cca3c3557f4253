package modbus

// Message is the immutable-after-construction result of a single
// dissection. Everything but Flags is set once at construction time;
// Matches is the sole operation permitted to mutate a Message
// afterward, and it only ever touches Flags on its receiver.
type Message struct {
	TransactionID uint16
	ProtocolID    uint16
	// length is the MBAP length field: it counts UnitID, the function
	// byte, and the PDU payload. Kept unexported since DataLength is
	// the meaningful derived quantity callers want.
	length     uint16
	UnitID     uint8
	Function   Function
	AccessType AccessType
	Category   CodeCategory
	Data       Data
	Flags      ErrorFlags
}

// DataLength is length-2: the byte count of the PDU payload after
// UnitID and the function byte.
func (m *Message) DataLength() int {
	return int(m.length) - 2
}
