package modbus

// Matches validates the receiver against other, the way a caller would
// cross-check a response against its originating request (either order
// is accepted). It mutates only the receiver's Flags; other is never
// written to.
func (m *Message) Matches(other *Message) bool {
	if m.TransactionID != other.TransactionID ||
		m.UnitID != other.UnitID ||
		m.Function.Code != other.Function.Code ||
		m.AccessType != other.AccessType {
		return false
	}

	// Not a known function: no payload validation is possible.
	if m.Category != CategoryPublicAssigned {
		return true
	}

	// Either side being an exception means the pairing can't be
	// cross-validated; both are checked since the caller may pass
	// either order.
	if _, ok := other.Data.(ExceptionData); ok {
		return true
	}

	switch data := m.Data.(type) {
	case ExceptionData:
		return true

	case ByteVecData:
		return true

	case ReadResponseData:
		count := len(data.Bytes)
		var otherQuantity int
		switch od := other.Data.(type) {
		case ReadRequestData:
			otherQuantity = int(od.Quantity)
		case ReadWriteData:
			otherQuantity = int(od.Read.Quantity)
		default:
			return false
		}

		if m.Function.Code != FuncRdWrMultRegs {
			if count != ceilDiv8(otherQuantity) {
				m.Flags |= FlagDataValue
			}
		} else if count != 2*otherQuantity {
			m.Flags |= FlagDataValue
		}
		return true

	case ReadRequestData, ReadWriteData:
		var quantity int
		if rr, ok := data.(ReadRequestData); ok {
			quantity = int(rr.Quantity)
		} else {
			quantity = int(data.(ReadWriteData).Read.Quantity)
		}
		resp, ok := other.Data.(ReadResponseData)
		if !ok {
			return false
		}
		otherCount := len(resp.Bytes)

		if m.Function.Code != FuncRdWrMultRegs {
			if otherCount != ceilDiv8(quantity) {
				m.Flags |= FlagDataValue
			}
		} else if otherCount != 2*quantity {
			m.Flags |= FlagDataValue
		}
		return true

	case WriteOtherData:
		switch od := other.Data.(type) {
		case WriteOtherData:
			if data.Address != od.Address || data.Data != od.Data {
				m.Flags |= FlagDataValue
			}
			return true
		case WriteMultReqData:
			if data.Address != od.Address || data.Data != od.Quantity {
				m.Flags |= FlagDataValue
			}
			return true
		default:
			return false
		}

	case WriteMultReqData:
		od, ok := other.Data.(WriteOtherData)
		if !ok {
			return false
		}
		if data.Address != od.Address || data.Quantity != od.Data {
			m.Flags |= FlagDataValue
		}
		return true

	case WriteMaskData:
		od, ok := other.Data.(WriteMaskData)
		if !ok {
			return false
		}
		if data.Address != od.Address || data.AndMask != od.AndMask || data.OrMask != od.OrMask {
			m.Flags |= FlagDataValue
		}
		return true

	case DiagnosticData:
		od, ok := other.Data.(DiagnosticData)
		if !ok {
			return false
		}
		return data.Subfunction == od.Subfunction

	case MEIData:
		od, ok := other.Data.(MEIData)
		if !ok {
			return false
		}
		return data.Type == od.Type

	default:
		return true
	}
}

func ceilDiv8(n int) int {
	return n/8 + boolToInt(n%8 != 0)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
