// Package serialgateway treats a serial link as a plain byte-stream
// transport for MBAP-framed Modbus/TCP traffic — the deployment
// pattern of a serial radio or cellular modem tunneling Modbus/TCP end
// to end. It performs no RTU byte-stuffing, CRC, or ASCII LRC framing;
// those are explicit non-goals of the dissector this package feeds.
package serialgateway

import (
	"bufio"
	"fmt"
	"io"

	goserial "github.com/hootrhino/goserial"

	modbus "github.com/modbus-tools/dissector"
)

// Open dials a serial port with cfg and returns it as a plain
// io.ReadWriteCloser transport. The returned stream carries MBAP
// bytes verbatim; callers drive it through the same streaming Parse
// loop used for a TCP connection.
func Open(cfg *goserial.Config) (io.ReadWriteCloser, error) {
	port, err := goserial.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("serialgateway: open %s: %w", cfg.Address, err)
	}
	return port, nil
}

// Reassembler drives Modbus's streaming Parse contract over an
// io.Reader: it accumulates bytes until a full message is available,
// hands it to the caller, and retains any unconsumed suffix for the
// next call.
type Reassembler struct {
	r         io.Reader
	direction modbus.Direction
	buf       []byte
}

// NewReassembler wraps r (typically the stream returned by Open, or a
// bufio.Reader over a TCP connection) for one direction of traffic.
func NewReassembler(r io.Reader, direction modbus.Direction) *Reassembler {
	return &Reassembler{r: bufio.NewReader(r), direction: direction}
}

// Next blocks until one full Message can be dissected from the
// stream, reading more bytes as Parse reports Incomplete. It returns
// the message and the raw bytes the MBAP frame occupied, or a non-nil
// error if the connection fails or a hard parse error occurs.
func (rs *Reassembler) Next() (*modbus.Message, []byte, error) {
	var m modbus.Modbus
	for {
		remaining, msg, err := m.Parse(rs.buf, rs.direction)
		switch {
		case err == nil:
			frameLen := len(rs.buf) - len(remaining)
			raw := append([]byte(nil), rs.buf[:frameLen]...)
			rs.buf = remaining
			return msg, raw, nil
		case modbus.IsIncomplete(err):
			chunk := make([]byte, 4096)
			n, readErr := rs.r.Read(chunk)
			if n > 0 {
				rs.buf = append(rs.buf, chunk[:n]...)
			}
			if readErr != nil {
				return nil, nil, readErr
			}
		default:
			return nil, nil, err
		}
	}
}
