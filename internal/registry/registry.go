// Package registry maps the wire-level numeric codes a dissected
// Modbus message carries to their human-readable descriptions. It is
// purely descriptive: nothing here feeds back into parsing or
// validation decisions, only into log lines and CLI output.
package registry

import (
	"embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	modbus "github.com/modbus-tools/dissector"
)

//go:embed codes.csv
var codesFS embed.FS

const (
	categoryFunction   = "function"
	categoryException  = "exception"
	categoryDiagnostic = "diagnostic"
	categoryMEI        = "mei"
)

// Registry holds the parsed code/description tables, keyed by the raw
// wire value within each category.
type Registry struct {
	function   map[byte]string
	exception  map[byte]string
	diagnostic map[uint16]string
	mei        map[byte]string
}

var defaultRegistry *Registry

func init() {
	r, err := load()
	if err != nil {
		panic(fmt.Sprintf("registry: failed to load embedded codes.csv: %v", err))
	}
	defaultRegistry = r
}

func load() (*Registry, error) {
	f, err := codesFS.Open("codes.csv")
	if err != nil {
		return nil, fmt.Errorf("registry: open codes.csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("registry: read codes.csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("registry: codes.csv is empty")
	}

	header := records[0]
	if len(header) != 4 ||
		header[0] != "category" || header[1] != "code" ||
		header[2] != "symbol" || header[3] != "description" {
		return nil, fmt.Errorf("registry: unexpected codes.csv header %v", header)
	}

	r := &Registry{
		function:   make(map[byte]string),
		exception:  make(map[byte]string),
		diagnostic: make(map[uint16]string),
		mei:        make(map[byte]string),
	}

	for i, row := range records[1:] {
		if len(row) != 4 {
			return nil, fmt.Errorf("registry: codes.csv row %d: expected 4 fields, got %d", i+2, len(row))
		}
		category := strings.TrimSpace(row[0])
		description := strings.TrimSpace(row[3])
		if description == "" {
			return nil, fmt.Errorf("registry: codes.csv row %d: empty description", i+2)
		}

		switch category {
		case categoryFunction, categoryException, categoryMEI:
			val, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 8)
			if err != nil {
				return nil, fmt.Errorf("registry: codes.csv row %d: bad code %q: %w", i+2, row[1], err)
			}
			switch category {
			case categoryFunction:
				r.function[byte(val)] = description
			case categoryException:
				r.exception[byte(val)] = description
			case categoryMEI:
				r.mei[byte(val)] = description
			}
		case categoryDiagnostic:
			val, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
			if err != nil {
				return nil, fmt.Errorf("registry: codes.csv row %d: bad code %q: %w", i+2, row[1], err)
			}
			r.diagnostic[uint16(val)] = description
		default:
			return nil, fmt.Errorf("registry: codes.csv row %d: unknown category %q", i+2, category)
		}
	}

	return r, nil
}

// Default returns the package-level Registry built from the embedded
// codes.csv at init time.
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) functionDescription(raw byte) string {
	if raw >= 0x80 {
		raw ^= 0x80
	}
	if d, ok := r.function[raw]; ok {
		return d
	}
	return "unknown function"
}

// Describe renders a one-line human-readable summary of a dissected
// message, resolving whatever sub-code its Data variant carries.
func (r *Registry) Describe(msg *modbus.Message) string {
	base := fmt.Sprintf("unit=%d function=0x%02X (%s)", msg.UnitID, msg.Function.Raw, r.functionDescription(msg.Function.Raw))

	switch data := msg.Data.(type) {
	case modbus.ExceptionData:
		desc, ok := r.exception[data.Code.Raw]
		if !ok {
			desc = "unknown exception"
		}
		return fmt.Sprintf("%s exception=0x%02X (%s)", base, data.Code.Raw, desc)
	case modbus.DiagnosticData:
		desc, ok := r.diagnostic[data.Subfunction.Raw]
		if !ok {
			desc = "unknown diagnostic subfunction"
		}
		return fmt.Sprintf("%s subfunction=0x%04X (%s)", base, data.Subfunction.Raw, desc)
	case modbus.MEIData:
		desc, ok := r.mei[data.Type.Raw]
		if !ok {
			desc = "unknown MEI type"
		}
		return fmt.Sprintf("%s mei=0x%02X (%s)", base, data.Type.Raw, desc)
	default:
		return fmt.Sprintf("%s flags=%s", base, msg.Flags)
	}
}
