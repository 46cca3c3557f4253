package modbus

// noPayloadFunctions expect no PDU data beyond the function byte on a
// request; a nonzero data length is padding and is flagged rather than
// rejected.
var noPayloadFunctions = map[FunctionCode]bool{
	FuncRdExcStatus:     true,
	FuncGetCommEventCtr: true,
	FuncGetCommEventLog: true,
	FuncReportServerID:  true,
}

// dissectRequest implements the ToServer dispatch table.
func dissectRequest(msg *Message, pdu []byte) error {
	switch msg.Function.Code {
	case FuncDiagnostic:
		if msg.DataLength() != 4 {
			msg.Flags |= FlagDataLength
		}
		if err := dissectDiagnostic(msg, pdu); err != nil {
			return err
		}
		checkDiagnosticRequestValue(msg)
		return nil

	case FuncMEI:
		return dissectMEI(msg, pdu)

	case FuncRdFileRec, FuncWrFileRec:
		if msg.DataLength() == 0 {
			msg.Flags |= FlagDataLength
		}
		return dissectByteVec(msg, pdu)

	case FuncRdFIFOQueue:
		if msg.DataLength() != 2 {
			msg.Flags |= FlagDataLength
		}
		return dissectByteVec(msg, pdu)
	}

	if noPayloadFunctions[msg.Function.Code] {
		if msg.DataLength() > 0 {
			msg.Flags |= FlagDataLength
		}
		return dissectByteVec(msg, pdu)
	}

	if msg.AccessType.Intersects(AccessRead) {
		rest, err := dissectReadRequest(msg, pdu)
		if err != nil {
			return err
		}
		if msg.AccessType.Intersects(AccessWrite) {
			return dissectWriteRequest(msg, rest)
		}
		return nil
	}

	if msg.AccessType.Intersects(AccessWrite) {
		return dissectWriteRequest(msg, pdu)
	}

	return dissectByteVec(msg, pdu)
}

// dissectResponse implements the ToClient dispatch table.
func dissectResponse(msg *Message, pdu []byte) error {
	if msg.Function.IsException() {
		return dissectException(msg, pdu)
	}

	switch msg.Function.Code {
	case FuncDiagnostic:
		return dissectDiagnostic(msg, pdu)

	case FuncMEI:
		return dissectMEI(msg, pdu)

	case FuncRdExcStatus:
		if msg.DataLength() != 1 {
			msg.Flags |= FlagDataLength
		}
		return dissectByteVec(msg, pdu)

	case FuncGetCommEventCtr:
		if msg.DataLength() != 4 {
			msg.Flags |= FlagDataLength
		}
		return dissectByteVec(msg, pdu)
	}

	if msg.AccessType.Intersects(AccessRead) {
		return dissectReadResponse(msg, pdu)
	}
	if msg.AccessType.Intersects(AccessWrite) {
		return dissectWriteResponse(msg, pdu)
	}
	return dissectByteVec(msg, pdu)
}

// dissectUnknown implements the Unknown-direction dispatch table: only
// the direction-independent shapes are attempted.
func dissectUnknown(msg *Message, pdu []byte) error {
	switch {
	case msg.Function.IsException():
		return dissectException(msg, pdu)
	case msg.Function.Code == FuncDiagnostic:
		return dissectDiagnostic(msg, pdu)
	case msg.Function.Code == FuncMEI:
		return dissectMEI(msg, pdu)
	default:
		return dissectByteVec(msg, pdu)
	}
}
