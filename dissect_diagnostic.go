package modbus

import "encoding/binary"

// dissectDiagnostic consumes a u16 sub-function code then the
// remaining data_length-2 bytes verbatim. Shared by requests,
// responses, and the Unknown-direction path; request-only value-range
// checks are layered on top by the caller.
func dissectDiagnostic(msg *Message, pdu []byte) error {
	if msg.DataLength() < 2 {
		return errInvalidData()
	}
	sub := newDiagnostic(binary.BigEndian.Uint16(pdu[0:2]))
	trailing := pdu[2 : 2+(msg.DataLength()-2)]

	msg.Data = DiagnosticData{Subfunction: sub, Trailing: trailing}
	return nil
}

// checkDiagnosticRequestValue layers the request-only value-range
// checks described for each named sub-function onto an already
// dissected DiagnosticData. Only applies when exactly two trailing
// bytes were captured.
func checkDiagnosticRequestValue(msg *Message) {
	diag, ok := msg.Data.(DiagnosticData)
	if !ok || len(diag.Trailing) != 2 {
		return
	}
	data := diag.Trailing

	switch diag.Subfunction.Code {
	case DiagRetQueryData, DiagForceListenOnlyMode, DiagReserved:
		// No check.
	case DiagRestartCommOpt:
		if data[1] != 0x00 || (data[0] != 0x00 && data[0] != 0xFF) {
			msg.Flags |= FlagDataValue
		}
	case DiagChangeInputDelimiter:
		if data[1] != 0x00 {
			msg.Flags |= FlagDataValue
		}
	default:
		if data[0] != 0x00 || data[1] != 0x00 {
			msg.Flags |= FlagDataValue
		}
	}
}
