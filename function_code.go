package modbus

// errorMask is the high bit set on a function byte to indicate an
// exception response; the decoded symbol for such a byte is looked up
// under (raw XOR errorMask).
const errorMask = 0x80

// FunctionCode names a Modbus function the way the protocol reference
// tables do. FuncUnknown covers every raw byte the table doesn't list;
// the raw byte itself is always preserved on Function.Raw.
type FunctionCode int

const (
	FuncRdCoils FunctionCode = iota + 1
	FuncRdDiscreteInputs
	FuncRdHoldRegs
	FuncRdInputRegs
	FuncWrSingleCoil
	FuncWrSingleReg
	FuncRdExcStatus
	FuncDiagnostic
	FuncProgram484
	FuncPoll484
	FuncGetCommEventCtr
	FuncGetCommEventLog
	FuncProgramController
	FuncPollController
	FuncWrMultCoils
	FuncWrMultRegs
	FuncReportServerID
	FuncProgram884
	FuncResetCommLink
	FuncRdFileRec
	FuncWrFileRec
	FuncMaskWrReg
	FuncRdWrMultRegs
	FuncRdFIFOQueue
	FuncMEI
	FuncUnknown
)

// rawToFunctionCode mirrors the protocol reference's numeric function
// code table. FuncMEI sits at 0x2B, well past the contiguous 0x01-0x18
// run, so it gets its own explicit entry rather than an iota offset.
var rawToFunctionCode = map[byte]FunctionCode{
	0x01: FuncRdCoils,
	0x02: FuncRdDiscreteInputs,
	0x03: FuncRdHoldRegs,
	0x04: FuncRdInputRegs,
	0x05: FuncWrSingleCoil,
	0x06: FuncWrSingleReg,
	0x07: FuncRdExcStatus,
	0x08: FuncDiagnostic,
	0x09: FuncProgram484,
	0x0A: FuncPoll484,
	0x0B: FuncGetCommEventCtr,
	0x0C: FuncGetCommEventLog,
	0x0D: FuncProgramController,
	0x0E: FuncPollController,
	0x0F: FuncWrMultCoils,
	0x10: FuncWrMultRegs,
	0x11: FuncReportServerID,
	0x12: FuncProgram884,
	0x13: FuncResetCommLink,
	0x14: FuncRdFileRec,
	0x15: FuncWrFileRec,
	0x16: FuncMaskWrReg,
	0x17: FuncRdWrMultRegs,
	0x18: FuncRdFIFOQueue,
	0x2B: FuncMEI,
}

func functionCodeFromRaw(val byte) FunctionCode {
	if code, ok := rawToFunctionCode[val]; ok {
		return code
	}
	return FuncUnknown
}

func (c FunctionCode) String() string {
	switch c {
	case FuncRdCoils:
		return "RdCoils"
	case FuncRdDiscreteInputs:
		return "RdDiscreteInputs"
	case FuncRdHoldRegs:
		return "RdHoldRegs"
	case FuncRdInputRegs:
		return "RdInputRegs"
	case FuncWrSingleCoil:
		return "WrSingleCoil"
	case FuncWrSingleReg:
		return "WrSingleReg"
	case FuncRdExcStatus:
		return "RdExcStatus"
	case FuncDiagnostic:
		return "Diagnostic"
	case FuncProgram484:
		return "Program484"
	case FuncPoll484:
		return "Poll484"
	case FuncGetCommEventCtr:
		return "GetCommEventCtr"
	case FuncGetCommEventLog:
		return "GetCommEventLog"
	case FuncProgramController:
		return "ProgramController"
	case FuncPollController:
		return "PollController"
	case FuncWrMultCoils:
		return "WrMultCoils"
	case FuncWrMultRegs:
		return "WrMultRegs"
	case FuncReportServerID:
		return "ReportServerID"
	case FuncProgram884:
		return "Program884"
	case FuncResetCommLink:
		return "ResetCommLink"
	case FuncRdFileRec:
		return "RdFileRec"
	case FuncWrFileRec:
		return "WrFileRec"
	case FuncMaskWrReg:
		return "MaskWrReg"
	case FuncRdWrMultRegs:
		return "RdWrMultRegs"
	case FuncRdFIFOQueue:
		return "RdFIFOQueue"
	case FuncMEI:
		return "MEI"
	default:
		return "Unknown"
	}
}

// Function pairs the raw function byte with its decoded symbol. If raw
// has the high bit set, the symbol is derived from raw with that bit
// cleared (an exception response echoes the request's function code).
type Function struct {
	Raw  byte
	Code FunctionCode
}

func newFunction(raw byte) Function {
	val := raw
	if val >= errorMask {
		val ^= errorMask
	}
	return Function{Raw: raw, Code: functionCodeFromRaw(val)}
}

func (f Function) String() string {
	return f.Code.String()
}

// IsException reports whether the raw function byte has the high bit
// set, meaning this is an exception response.
func (f Function) IsException() bool {
	return f.Raw >= errorMask
}
