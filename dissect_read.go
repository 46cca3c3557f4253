package modbus

import "encoding/binary"

const (
	maxQuantityBitAccess  = 2000
	maxQuantityWordAccess = 125
	minReadCount          = 1
	maxReadCount          = 250
)

// dissectReadRequest consumes a u16 address and u16 quantity from the
// front of pdu and returns the unconsumed remainder (used by the
// RdWrMultRegs chain to hand off to the write-request dissector).
func dissectReadRequest(msg *Message, pdu []byte) ([]byte, error) {
	if len(pdu) < 4 {
		return nil, errInvalidData()
	}
	address := binary.BigEndian.Uint16(pdu[0:2])
	quantity := binary.BigEndian.Uint16(pdu[2:4])

	if quantity == 0 {
		msg.Flags |= FlagDataValue
	}
	if msg.Function.Code != FuncRdWrMultRegs && msg.DataLength() > 4 {
		msg.Flags |= FlagDataLength
	}
	if msg.AccessType.Intersects(AccessBitMask) {
		if quantity > maxQuantityBitAccess {
			msg.Flags |= FlagDataValue
		}
	} else if quantity > maxQuantityWordAccess {
		msg.Flags |= FlagDataValue
	}

	msg.Data = ReadRequestData{Address: address, Quantity: quantity}
	return pdu[4:], nil
}

// dissectReadResponse consumes a u8 count then data_length-1 bytes,
// using the message's declared data length rather than the count
// field to decide how much to take.
func dissectReadResponse(msg *Message, pdu []byte) error {
	if msg.DataLength() < 1 {
		return errInvalidData()
	}
	count := pdu[0]
	if count < minReadCount || count > maxReadCount {
		msg.Flags |= FlagDataValue
	}
	if msg.DataLength()-1 != int(count) {
		msg.Flags |= FlagDataValue
	}

	data := pdu[1 : 1+(msg.DataLength()-1)]
	msg.Data = ReadResponseData{Bytes: data}
	return nil
}
