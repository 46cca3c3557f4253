package modbus

import "encoding/binary"

// mbapHeaderPrefix is the size of the fixed, direction-independent
// prefix of the MBAP header: transaction_id, protocol_id, length.
// unit_id and the function byte follow it and are gated separately
// since their availability depends on the length field just read.
const mbapHeaderPrefix = 6

// header holds the decoded MBAP + function-byte fields common to every
// dissector, plus the byte slices they need.
type header struct {
	transactionID uint16
	protocolID    uint16
	length        uint16
	unitID        uint8
	rawFunction   byte
	pdu           []byte // length-2 bytes following the function byte
	consumed      int    // total bytes consumed from buf for this message
}

// readHeader reads the MBAP header and function byte from the head of
// buf. It never reads past what length declares: once the full 6 +
// length byte span is confirmed present, the PDU slice is exactly
// length-2 bytes.
func readHeader(buf []byte) (header, error) {
	// Fields are gated incrementally, as a streaming reader would: each
	// field reports exactly how many more bytes it needs, rather than
	// the full header prefix at once.
	if len(buf) < 2 {
		return header{}, errIncomplete(2 - len(buf))
	}
	if len(buf) < 4 {
		return header{}, errIncomplete(4 - len(buf))
	}

	protocolID := binary.BigEndian.Uint16(buf[2:4])
	if protocolID != 0 {
		return header{}, errInvalidData()
	}

	if len(buf) < mbapHeaderPrefix {
		return header{}, errIncomplete(mbapHeaderPrefix - len(buf))
	}

	length := binary.BigEndian.Uint16(buf[4:6])
	if length < 2 {
		return header{}, errInvalidData()
	}

	total := mbapHeaderPrefix + int(length)
	if len(buf) < total {
		return header{}, errIncomplete(total - len(buf))
	}

	return header{
		transactionID: binary.BigEndian.Uint16(buf[0:2]),
		protocolID:    protocolID,
		length:        length,
		unitID:        buf[6],
		rawFunction:   buf[7],
		pdu:           buf[8:total],
		consumed:      total,
	}, nil
}
