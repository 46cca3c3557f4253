package modbus

// dissectByteVec is the raw fallback: the entire PDU payload is kept
// verbatim and no validation is performed. Used for shapes this
// package doesn't model structurally and for every PDU parsed under
// Direction Unknown that isn't an exception, diagnostic, or MEI.
func dissectByteVec(msg *Message, pdu []byte) error {
	msg.Data = ByteVecData{Bytes: pdu}
	return nil
}
