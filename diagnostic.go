package modbus

// DiagnosticSubfunction names the sub-function of a Diagnostic (0x08)
// request/response, per the protocol reference's diagnostics table.
type DiagnosticSubfunction int

const (
	DiagRetQueryData DiagnosticSubfunction = iota
	DiagRestartCommOpt
	DiagRetDiagReg
	DiagChangeInputDelimiter
	DiagForceListenOnlyMode
	diagReserved5
	diagReserved6
	diagReserved7
	diagReserved8
	diagReserved9
	DiagClearCtrDiagReg
	DiagRetBusMsgCount
	DiagRetBusCommErrCount
	DiagRetBusExcErrCount
	DiagRetServerMsgCount
	DiagRetServerNoRespCount
	DiagRetServerNAKCount
	DiagRetServerBusyCount
	DiagRetBusCharOverrunCount
	DiagRetOverrunErrCount
	DiagClearOverrunCounterFlag
	DiagGetClearPlusStats
	// DiagReserved covers every sub-function code the table doesn't
	// assign, including the 0x0005-0x0009 gap above.
	DiagReserved
)

var rawToDiagnosticSubfunction = map[uint16]DiagnosticSubfunction{
	0x00: DiagRetQueryData,
	0x01: DiagRestartCommOpt,
	0x02: DiagRetDiagReg,
	0x03: DiagChangeInputDelimiter,
	0x04: DiagForceListenOnlyMode,
	0x0A: DiagClearCtrDiagReg,
	0x0B: DiagRetBusMsgCount,
	0x0C: DiagRetBusCommErrCount,
	0x0D: DiagRetBusExcErrCount,
	0x0E: DiagRetServerMsgCount,
	0x0F: DiagRetServerNoRespCount,
	0x10: DiagRetServerNAKCount,
	0x11: DiagRetServerBusyCount,
	0x12: DiagRetBusCharOverrunCount,
	0x13: DiagRetOverrunErrCount,
	0x14: DiagClearOverrunCounterFlag,
	0x15: DiagGetClearPlusStats,
}

func diagnosticSubfunctionFromRaw(val uint16) DiagnosticSubfunction {
	if code, ok := rawToDiagnosticSubfunction[val]; ok {
		return code
	}
	return DiagReserved
}

func (d DiagnosticSubfunction) String() string {
	switch d {
	case DiagRetQueryData:
		return "RetQueryData"
	case DiagRestartCommOpt:
		return "RestartCommOpt"
	case DiagRetDiagReg:
		return "RetDiagReg"
	case DiagChangeInputDelimiter:
		return "ChangeInputDelimiter"
	case DiagForceListenOnlyMode:
		return "ForceListenOnlyMode"
	case DiagClearCtrDiagReg:
		return "ClearCtrDiagReg"
	case DiagRetBusMsgCount:
		return "RetBusMsgCount"
	case DiagRetBusCommErrCount:
		return "RetBusCommErrCount"
	case DiagRetBusExcErrCount:
		return "RetBusExcErrCount"
	case DiagRetServerMsgCount:
		return "RetServerMsgCount"
	case DiagRetServerNoRespCount:
		return "RetServerNoRespCount"
	case DiagRetServerNAKCount:
		return "RetServerNAKCount"
	case DiagRetServerBusyCount:
		return "RetServerBusyCount"
	case DiagRetBusCharOverrunCount:
		return "RetBusCharOverrunCount"
	case DiagRetOverrunErrCount:
		return "RetOverrunErrCount"
	case DiagClearOverrunCounterFlag:
		return "ClearOverrunCounterFlag"
	case DiagGetClearPlusStats:
		return "GetClearPlusStats"
	default:
		return "Reserved"
	}
}

// Diagnostic pairs the raw 16-bit sub-function field of a Diagnostic
// PDU with its decoded symbol.
type Diagnostic struct {
	Raw  uint16
	Code DiagnosticSubfunction
}

func newDiagnostic(raw uint16) Diagnostic {
	return Diagnostic{Raw: raw, Code: diagnosticSubfunctionFromRaw(raw)}
}

func (d Diagnostic) String() string {
	return d.Code.String()
}
