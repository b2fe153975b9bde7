// Package report decodes raw HRESULT values into reports for people and tools, and exports
// the HRESULT table in several file formats.
package report

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/cloudsoda/go-hresult/erref"
)

const ntBit = 0x10000000

// Match is a table entry whose value equals the decoded value.
type Match struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Report is the decoded form of a raw HRESULT.
type Report struct {
	Value        string  `json:"value"`
	Matches      []Match `json:"matches"`
	Severity     string  `json:"severity"`
	Customer     bool    `json:"customer"`
	NTBit        bool    `json:"nt_bit"`
	Code         uint16  `json:"code"`
	FacilityCode uint16  `json:"facility_code"`
	Facility     string  `json:"facility"`

	raw uint32
}

// Decode builds the report for v. It never fails: unknown values have no matches and
// unregistered facilities leave Facility empty.
func Decode(v uint32) Report {
	h := erref.HResult(v)

	r := Report{
		Value:        fmt.Sprintf("0x%08X", v),
		Matches:      []Match{},
		Severity:     "success",
		Customer:     h.IsCustomer(),
		NTBit:        v&ntBit != 0,
		Code:         h.Code(),
		FacilityCode: h.FacilityCode(),
		raw:          v,
	}
	if h.IsFailure() {
		r.Severity = "failure"
	}
	if f, err := h.Facility(); err == nil {
		r.Facility = f.Name
	}
	for _, c := range erref.FindByRetval(v) {
		r.Matches = append(r.Matches, Match{Name: c.Name, Description: c.Description})
	}
	return r
}

// Raw returns the decoded value.
func (r Report) Raw() uint32 {
	return r.raw
}

// Text renders the report as an aligned block followed by the bit layout.
func (r Report) Text() string {
	result := &strings.Builder{}
	result.WriteString(r.Value)
	result.WriteString("\n")

	if len(r.Matches) == 0 {
		writeField(result, "name", erref.HResult(r.raw).String())
	}
	for _, m := range r.Matches {
		writeField(result, "name", m.Name)
		writeField(result, "description", m.Description)
	}
	writeField(result, "severity", r.Severity)
	writeField(result, "customer", fmt.Sprintf("%t", r.Customer))
	writeField(result, "nt", fmt.Sprintf("%t", r.NTBit))
	if r.Facility != "" {
		writeField(result, "facility", fmt.Sprintf("%s (%d)", r.Facility, r.FacilityCode))
	} else {
		writeField(result, "facility", fmt.Sprintf("unregistered (%d)", r.FacilityCode))
	}
	writeField(result, "code", fmt.Sprintf("0x%04X (%d)", r.Code, r.Code))
	writeField(result, "bits", DumpBits(r.raw, "  "+strings.Repeat(" ", 13)))
	return result.String()
}

func writeField(b *strings.Builder, name, value string) {
	b.WriteString(fmt.Sprintf("  %-13s%s\n", name+":", value))
}

// JSON renders the report as indented JSON.
func (r Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// YAML renders the report as YAML using the JSON field names.
func (r Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// DumpBits renders v as its four bytes in binary, most significant first. The second line
// marks the field each bit belongs to: S severity, R reserved, C customer, N NTSTATUS,
// X reserved, F facility and c code.
func DumpBits(v uint32, indent string) string {
	var row [4]byte
	binary.BigEndian.PutUint32(row[:], v)

	result := &strings.Builder{}
	result.WriteString(fmt.Sprintf("%08b", row[0]))
	for i := 1; i < len(row); i++ {
		result.WriteString(fmt.Sprintf(" %08b", row[i]))
	}
	result.WriteString("\n")
	result.WriteString(indent)
	result.WriteString("SRCNXFFF FFFFFFFF cccccccc cccccccc")
	return result.String()
}
