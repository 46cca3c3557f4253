package modbus

// ProbeStatus is the coarse recognition verdict a higher-level
// protocol registry asks for before committing to a full parse.
type ProbeStatus int

const (
	Recognized ProbeStatus = iota
	Incomplete
	Unrecognized
)

func (s ProbeStatus) String() string {
	switch s {
	case Recognized:
		return "Recognized"
	case Incomplete:
		return "Incomplete"
	default:
		return "Unrecognized"
	}
}

// Modbus is the protocol implementation: a stateless dissector for a
// single MBAP-framed PDU.
type Modbus struct{}

// Name returns the protocol name a registry would key this dissector
// under.
func (Modbus) Name() string {
	return "modbus"
}

// Parse extracts one Message from the head of buf. On success it
// returns the unconsumed suffix and the decoded message. On failure it
// returns an *Error (Incomplete or InvalidData, see errors.go) and a
// nil message.
func (Modbus) Parse(buf []byte, direction Direction) ([]byte, *Message, error) {
	h, err := readHeader(buf)
	if err != nil {
		return nil, nil, err
	}

	msg := &Message{
		TransactionID: h.transactionID,
		ProtocolID:    h.protocolID,
		length:        h.length,
		UnitID:        h.unitID,
		Function:      newFunction(h.rawFunction),
	}
	msg.AccessType = accessTypeFor(msg.Function.Code)

	var dissectErr error
	switch direction {
	case ToServer:
		dissectErr = dissectRequest(msg, h.pdu)
	case ToClient:
		dissectErr = dissectResponse(msg, h.pdu)
	default:
		dissectErr = dissectUnknown(msg, h.pdu)
	}
	if dissectErr != nil {
		return nil, nil, dissectErr
	}

	msg.Category = resolveCategory(msg)

	return buf[h.consumed:], msg, nil
}

// Probe reports the coarse recognition verdict Parse would produce
// without requiring the caller to handle the full Message.
func (m Modbus) Probe(buf []byte, direction Direction) ProbeStatus {
	_, msg, err := m.Parse(buf, direction)
	switch {
	case err != nil && IsIncomplete(err):
		return Incomplete
	case err != nil:
		return Unrecognized
	case msg != nil:
		return Recognized
	default:
		return Unrecognized
	}
}
