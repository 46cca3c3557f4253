package modbus

// dissectMEI consumes a u8 MEI-type code then the remaining bytes
// verbatim. No further validation is applied to MEI payloads: an
// unrecognized type byte simply decodes to MEIUnknown.
func dissectMEI(msg *Message, pdu []byte) error {
	if msg.DataLength() < 1 {
		return errInvalidData()
	}
	meiType := newMEI(pdu[0])
	trailing := pdu[1:msg.DataLength()]

	msg.Data = MEIData{Type: meiType, Trailing: trailing}
	return nil
}
