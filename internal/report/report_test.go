package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	testData := []struct {
		scenario string
		value    uint32
		expected Report
	}{
		{
			scenario: "out of memory",
			value:    0x8007000E,
			expected: Report{
				Value:        "0x8007000E",
				Matches:      []Match{{Name: "E_OUTOFMEMORY", Description: "Failed to allocate necessary memory."}},
				Severity:     "failure",
				Code:         0x000E,
				FacilityCode: 7,
				Facility:     "FACILITY_WIN32",
				raw:          0x8007000E,
			},
		},
		{
			scenario: "storage success",
			value:    0x00030200,
			expected: Report{
				Value:        "0x00030200",
				Matches:      []Match{{Name: "STG_S_CONVERTED", Description: "The underlying file was converted to compound file format."}},
				Severity:     "success",
				Code:         0x0200,
				FacilityCode: 3,
				Facility:     "FACILITY_STORAGE",
				raw:          0x00030200,
			},
		},
		{
			scenario: "customer value with unregistered facility",
			value:    0x201C0001,
			expected: Report{
				Value:        "0x201C0001",
				Matches:      []Match{},
				Severity:     "success",
				Customer:     true,
				Code:         1,
				FacilityCode: 28,
				raw:          0x201C0001,
			},
		},
		{
			scenario: "nt status mapped to hresult",
			value:    0xD0000022,
			expected: Report{
				Value:        "0xD0000022",
				Matches:      []Match{},
				Severity:     "failure",
				NTBit:        true,
				Code:         0x0022,
				FacilityCode: 0,
				Facility:     "FACILITY_NULL",
				raw:          0xD0000022,
			},
		},
	}

	for _, td := range testData {
		t.Run(td.scenario, func(t *testing.T) {
			t.Parallel()

			r := Decode(td.value)
			require.Equal(t, td.expected, r)
			require.Equal(t, td.value, r.Raw())
		})
	}
}

func TestReportText(t *testing.T) {
	t.Parallel()

	text := Decode(0x8007000E).Text()
	require.True(t, strings.HasPrefix(text, "0x8007000E\n"))
	require.Contains(t, text, "  name:        E_OUTOFMEMORY\n")
	require.Contains(t, text, "  severity:    failure\n")
	require.Contains(t, text, "  facility:    FACILITY_WIN32 (7)\n")
	require.Contains(t, text, "  code:        0x000E (14)\n")
	require.Contains(t, text, "10000000 00000111 00000000 00001110")

	unknown := Decode(0x201C0001).Text()
	require.Contains(t, unknown, "UNKNOWN_HRESULT_0x201C0001")
	require.Contains(t, unknown, "unregistered (28)")
}

func TestReportJSONAndYAML(t *testing.T) {
	t.Parallel()

	r := Decode(0x80004005)

	bs, err := r.JSON()
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(bs, &fromJSON))
	require.Equal(t, "0x80004005", fromJSON["value"])
	require.Equal(t, "failure", fromJSON["severity"])
	require.NotContains(t, fromJSON, "raw")

	bs, err = r.YAML()
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(bs, &fromYAML))
	require.Equal(t, fromJSON, fromYAML)
}

func TestReportJSONEmptyMatches(t *testing.T) {
	t.Parallel()

	bs, err := Decode(0).JSON()
	require.NoError(t, err)
	require.Contains(t, string(bs), `"matches": []`)
}

func TestDumpBits(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"10000000 00000111 00000000 00000101\n>SRCNXFFF FFFFFFFF cccccccc cccccccc",
		DumpBits(0x80070005, ">"))
}
