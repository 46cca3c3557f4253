package modbus

// AddressRange is a 1-based inclusive coil/register address span.
type AddressRange struct {
	Low  uint16
	High uint16
}

// Contains reports whether addr1 (a 1-based address) falls within the
// range, inclusive on both ends.
func (r AddressRange) Contains(addr1 uint16) bool {
	return addr1 >= r.Low && addr1 <= r.High
}

// GetAddressRange returns the 1-based inclusive coil/register range a
// read request, a write, or the write half of a read-write touches, if
// any.
func (m *Message) GetAddressRange() (AddressRange, bool) {
	switch data := m.Data.(type) {
	case WriteOtherData:
		return AddressRange{Low: data.Address + 1, High: data.Address + 1}, true
	case WriteMaskData:
		return AddressRange{Low: data.Address + 1, High: data.Address + 1}, true
	case ReadRequestData:
		if data.Quantity == 0 {
			return AddressRange{}, false
		}
		return AddressRange{Low: data.Address + 1, High: data.Address + data.Quantity}, true
	case WriteMultReqData:
		if data.Quantity == 0 {
			return AddressRange{}, false
		}
		return AddressRange{Low: data.Address + 1, High: data.Address + data.Quantity}, true
	case ReadWriteData:
		if data.Write.Quantity == 0 {
			return AddressRange{}, false
		}
		return AddressRange{Low: data.Write.Address + 1, High: data.Write.Address + data.Write.Quantity}, true
	default:
		return AddressRange{}, false
	}
}

// GetWriteValueAtAddress extracts the coil/register value stored at
// the given 1-based address, if this message's write touched it.
func (m *Message) GetWriteValueAtAddress(addr1 uint16) (uint16, bool) {
	if r, ok := m.GetAddressRange(); ok && !r.Contains(addr1) {
		return 0, false
	}

	if m.AccessType.Contains(AccessSingle) {
		wo, ok := m.Data.(WriteOtherData)
		if !ok {
			return 0, false
		}
		if m.AccessType.Contains(AccessCoils) {
			if wo.Data != 0 {
				return 1, true
			}
			return 0, true
		}
		return wo.Data, true
	}

	if m.AccessType.Contains(AccessMultiple) {
		var start uint16
		var bytes []byte
		switch data := m.Data.(type) {
		case WriteMultReqData:
			start, bytes = data.Address, data.Bytes
		case ReadWriteData:
			start, bytes = data.Write.Address, data.Write.Bytes
		default:
			return 0, false
		}

		if start == 0xFFFF || start >= addr1 {
			return 0, false
		}

		// Byte-straddle read, preserved exactly: for registers this is
		// a plain two-byte offset; for coils the same doubled offset is
		// shifted right by three to give a byte offset, and the bit is
		// then picked from the two-byte value at that offset, matching
		// the reference parser rather than a bit-packed coil layout.
		offset := int(addr1-(start+1)) * 2
		if m.AccessType.Contains(AccessCoils) {
			offset >>= 3
		}
		if offset < 0 || offset+1 >= len(bytes) {
			return 0, false
		}

		value := uint16(bytes[offset])<<8 | uint16(bytes[offset+1])
		if m.AccessType.Contains(AccessCoils) {
			value = (value >> ((addr1 - (start + 1)) & 0x7)) & 0x1
		}
		return value, true
	}

	return 0, false
}
