package modbus

import "encoding/binary"

// dissectWriteRequest consumes the write-request shape from pdu. The
// shape branches on access_type: SINGLE writes one data word, MULTIPLE
// writes a quantity/count/byte-vector, anything else is the mask
// shape. offset is the byte position, counted from the unit id (the
// start of the span the MBAP length field covers), at which the
// multiple-write byte vector begins; it differs for RdWrMultRegs since
// the read half of the request precedes it.
func dissectWriteRequest(msg *Message, pdu []byte) error {
	if len(pdu) < 2 {
		return errInvalidData()
	}
	address := binary.BigEndian.Uint16(pdu[0:2])
	rest := pdu[2:]

	switch {
	case msg.AccessType.Contains(AccessSingle):
		if len(rest) < 2 {
			return errInvalidData()
		}
		data := binary.BigEndian.Uint16(rest[0:2])

		if msg.DataLength() > 4 {
			msg.Flags |= FlagDataLength
		}
		if msg.AccessType.Contains(AccessCoils) && data != 0x0000 && data != 0xFF00 {
			msg.Flags |= FlagDataValue
		}

		msg.Data = WriteOtherData{Address: address, Data: data}
		return nil

	case msg.AccessType.Contains(AccessMultiple):
		if len(rest) < 3 {
			return errInvalidData()
		}
		quantity := binary.BigEndian.Uint16(rest[0:2])
		count := rest[2]

		offset := 7
		if msg.Function.Code == FuncRdWrMultRegs {
			offset += 4
		}
		remaining := int(msg.length) - offset

		if quantity == 0 || remaining != int(count) {
			msg.Flags |= FlagDataValue
		}
		if msg.AccessType.Intersects(AccessBitMask) {
			expectedCount := uint16(count/8) + boolToUint16(count%8 != 0)
			if quantity > maxQuantityBitAccess || quantity != expectedCount {
				msg.Flags |= FlagDataValue
			}
		} else if quantity > maxQuantityWordAccess || int(count) != 2*int(quantity) {
			msg.Flags |= FlagDataValue
		}

		body := rest[3:]
		if remaining < 0 || remaining > len(body) {
			return errInvalidData()
		}
		bytes := body[:remaining]

		multReq := WriteMultReqData{Address: address, Quantity: quantity, Bytes: bytes}
		if read, ok := msg.Data.(ReadRequestData); ok {
			msg.Data = ReadWriteData{Read: read, Write: multReq}
		} else {
			msg.Data = multReq
		}
		return nil

	default:
		if len(rest) < 4 {
			return errInvalidData()
		}
		andMask := binary.BigEndian.Uint16(rest[0:2])
		orMask := binary.BigEndian.Uint16(rest[2:4])

		if msg.DataLength() > 6 {
			msg.Flags |= FlagDataLength
		}

		msg.Data = WriteMaskData{Address: address, AndMask: andMask, OrMask: orMask}
		return nil
	}
}

// dissectWriteResponse consumes the write-response shape from pdu.
func dissectWriteResponse(msg *Message, pdu []byte) error {
	if len(pdu) < 2 {
		return errInvalidData()
	}
	address := binary.BigEndian.Uint16(pdu[0:2])
	rest := pdu[2:]

	switch {
	case msg.AccessType.Contains(AccessSingle):
		if len(rest) < 2 {
			return errInvalidData()
		}
		data := binary.BigEndian.Uint16(rest[0:2])
		if msg.DataLength() > 4 {
			msg.Flags |= FlagDataLength
		}
		msg.Data = WriteOtherData{Address: address, Data: data}
		return nil

	case msg.AccessType.Contains(AccessMultiple):
		if len(rest) < 2 {
			return errInvalidData()
		}
		quantity := binary.BigEndian.Uint16(rest[0:2])
		if msg.DataLength() > 4 {
			msg.Flags |= FlagDataLength
		}
		if quantity == 0 {
			msg.Flags |= FlagDataValue
		}
		// Polarity preserved from the reference parser: for bit-access
		// functions the word-access ceiling applies here, not the
		// bit-access ceiling used on the request side.
		if msg.AccessType.Intersects(AccessBitMask) {
			if quantity > maxQuantityWordAccess {
				msg.Flags |= FlagDataValue
			}
		} else if quantity > maxQuantityBitAccess {
			msg.Flags |= FlagDataValue
		}

		msg.Data = WriteOtherData{Address: address, Data: quantity}
		return nil

	default:
		if len(rest) < 4 {
			return errInvalidData()
		}
		andMask := binary.BigEndian.Uint16(rest[0:2])
		orMask := binary.BigEndian.Uint16(rest[2:4])
		if msg.DataLength() > 6 {
			msg.Flags |= FlagDataLength
		}
		msg.Data = WriteMaskData{Address: address, AndMask: andMask, OrMask: orMask}
		return nil
	}
}

func boolToUint16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
