package modbus

// dissectException consumes a single exception-code byte and records
// EXC_CODE when the code is implausible for the function that raised
// it. The range checks against the raw function byte mirror the
// reference parser's own checks verbatim, including against raw values
// an exception response byte (>=0x80) never actually takes; this is
// carried over rather than "fixed" since it matches the reference
// implementation's behavior exactly.
func dissectException(msg *Message, pdu []byte) error {
	if len(pdu) < 1 {
		return errInvalidData()
	}
	exc := newException(pdu[0])
	msg.Data = ExceptionData{Code: exc}

	raw := msg.Function.Raw
	switch {
	case exc.Code == ExcIllegalDataValue && msg.Function.Code == FuncDiagnostic:
		msg.Flags |= FlagExcCode
	case exc.Code == ExcIllegalDataAddr &&
		((raw > 6 && raw < 15) || (raw > 16 && raw < 22)):
		msg.Flags |= FlagExcCode
	case exc.Code == ExcMemParityErr &&
		msg.Function.Code != FuncRdFileRec && msg.Function.Code != FuncWrFileRec:
		msg.Flags |= FlagExcCode
	}
	return nil
}
