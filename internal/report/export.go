package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"sigs.k8s.io/yaml"

	"github.com/cloudsoda/go-hresult/erref"
	"github.com/cloudsoda/go-hresult/erref/facility"
	"github.com/cloudsoda/go-hresult/internal/utf16le"
)

// Formats lists the formats Export accepts.
var Formats = []string{"yaml", "json", "toml", "mc"}

// Entry is the exported form of a table entry.
type Entry struct {
	Name        string `json:"name" toml:"name"`
	Value       string `json:"value" toml:"value"`
	Description string `json:"description" toml:"description"`
}

// Entries converts table entries for export.
func Entries(codes []erref.HResultCode) []Entry {
	entries := make([]Entry, 0, len(codes))
	for _, c := range codes {
		entries = append(entries, Entry{
			Name:        c.Name,
			Value:       fmt.Sprintf("0x%08X", c.Value),
			Description: c.Description,
		})
	}
	return entries
}

// Export writes the whole HRESULT table to w in declaration order.
// An unknown format returns an *erref.InvalidArgumentError.
func Export(w io.Writer, format string) error {
	codes := erref.HResultCodes()

	switch strings.ToLower(format) {
	case "yaml":
		bs, err := yaml.Marshal(Entries(codes))
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(bs)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(Entries(codes)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "toml":
		doc := struct {
			HResult []Entry `toml:"hresult"`
		}{HResult: Entries(codes)}
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case "mc":
		return writeMessageFile(utf16le.NewWriter(w), codes)
	default:
		return &erref.InvalidArgumentError{
			Message: fmt.Sprintf("unknown export format %q, expected one of %s", format, strings.Join(Formats, ", ")),
		}
	}
}

var severityNames = [4]string{"Success", "Informational", "CoError", "Error"}

// writeMessageFile writes Windows Message Compiler source. MessageId, Severity and Facility
// together rebuild every value in the table since none of them sets the C or N bit.
func writeMessageFile(w *utf16le.Writer, codes []erref.HResultCode) error {
	facilityNames := make(map[uint32]string)
	for _, c := range codes {
		fc := (c.Value >> 16) & 0xFFF
		if _, ok := facilityNames[fc]; ok {
			continue
		}
		if f, err := facility.FindByCode(uint16(fc)); err == nil {
			facilityNames[fc] = f.Name
		} else {
			facilityNames[fc] = fmt.Sprintf("FACILITY_0x%03X", fc)
		}
	}
	facilityCodes := make([]uint32, 0, len(facilityNames))
	for fc := range facilityNames {
		facilityCodes = append(facilityCodes, fc)
	}
	slices.Sort(facilityCodes)

	b := &strings.Builder{}
	b.WriteString("MessageIdTypedef=HRESULT\r\n\r\n")
	b.WriteString("SeverityNames=(")
	for i, name := range severityNames {
		if i > 0 {
			b.WriteString("\r\n               ")
		}
		b.WriteString(fmt.Sprintf("%s=0x%X", name, i))
	}
	b.WriteString(")\r\n\r\n")
	b.WriteString("FacilityNames=(")
	for i, fc := range facilityCodes {
		if i > 0 {
			b.WriteString("\r\n               ")
		}
		b.WriteString(fmt.Sprintf("%s=0x%X", facilityNames[fc], fc))
	}
	b.WriteString(")\r\n\r\n")
	b.WriteString("LanguageNames=(English=0x409:MSG00409)\r\n")
	if _, err := w.WriteString(b.String()); err != nil {
		return err
	}

	for _, c := range codes {
		b.Reset()
		b.WriteString("\r\n")
		b.WriteString(fmt.Sprintf("MessageId=0x%04X\r\n", c.Code()))
		b.WriteString(fmt.Sprintf("Severity=%s\r\n", severityNames[c.Value>>30]))
		b.WriteString(fmt.Sprintf("Facility=%s\r\n", facilityNames[(c.Value>>16)&0xFFF]))
		b.WriteString(fmt.Sprintf("SymbolicName=%s\r\n", c.Name))
		b.WriteString("Language=English\r\n")
		b.WriteString(c.Description)
		b.WriteString("\r\n.\r\n")
		if _, err := w.WriteString(b.String()); err != nil {
			return err
		}
	}
	return nil
}
