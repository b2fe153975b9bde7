package erref

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindByRetval(t *testing.T) {
	t.Parallel()

	testData := []struct {
		scenario string
		value    uint32
		expected []string
	}{
		{scenario: "unspecified failure", value: 0x80004005, expected: []string{"E_FAIL"}},
		{scenario: "access denied", value: 0x80070005, expected: []string{"E_ACCESSDENIED"}},
		{scenario: "storage success", value: 0x00030200, expected: []string{"STG_S_CONVERTED"}},
		{scenario: "zero is not in the table", value: 0x00000000, expected: []string{}},
		{scenario: "unknown failure", value: 0xDEADBEEF, expected: []string{}},
	}

	for _, td := range testData {
		t.Run(td.scenario, func(t *testing.T) {
			t.Parallel()

			matches := FindByRetval(td.value)
			require.NotNil(t, matches)

			names := []string{}
			for _, m := range matches {
				require.Equal(t, td.value, m.Value)
				names = append(names, m.Name)
			}
			require.Equal(t, td.expected, names)
		})
	}
}

func TestNamesAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool, len(hresultCodes))
	for _, c := range hresultCodes {
		require.False(t, seen[c.Name], "duplicate name %s", c.Name)
		seen[c.Name] = true
	}
}

func TestTableHasNoZeroValue(t *testing.T) {
	t.Parallel()

	for _, c := range hresultCodes {
		require.NotZero(t, c.Value, c.Name)
	}
}

func TestSortedCodesAreNameOrdered(t *testing.T) {
	t.Parallel()

	require.Len(t, sortedCodes, len(hresultCodes))
	require.True(t, slices.IsSortedFunc(sortedCodes, func(a, b HResultCode) int {
		return strings.Compare(a.Name, b.Name)
	}))
}

func TestFindByRetvalOrdersCollisionsByName(t *testing.T) {
	t.Parallel()

	codes := sortByName([]HResultCode{
		{ErrorCode{"Z_SECOND", 0x80001234, ""}},
		{ErrorCode{"A_FIRST", 0x80001234, ""}},
		{ErrorCode{"M_OTHER", 0x80005678, ""}},
	})
	require.Equal(t, "A_FIRST", codes[0].Name)
	require.Equal(t, "M_OTHER", codes[1].Name)
	require.Equal(t, "Z_SECOND", codes[2].Name)

	idx := indexByValue(codes)
	require.Equal(t, 0, idx[0x80001234])

	names := []string{}
	for _, m := range findByRetval(codes, 0x80001234) {
		names = append(names, m.Name)
	}
	require.Equal(t, []string{"A_FIRST", "Z_SECOND"}, names)

	other := findByRetval(codes, 0x80005678)
	require.Len(t, other, 1)
	require.Equal(t, "M_OTHER", other[0].Name)

	none := findByRetval(codes, 0x80009999)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestLookupHResult(t *testing.T) {
	t.Parallel()

	c, ok := LookupHResult("E_OUTOFMEMORY")
	require.True(t, ok)
	require.Equal(t, uint32(0x8007000E), c.Value)
	require.Equal(t, E_OUTOFMEMORY, c.HResult())

	_, ok = LookupHResult("e_outofmemory")
	require.False(t, ok)
}

func TestHResultCodesReturnsCopy(t *testing.T) {
	t.Parallel()

	codes := HResultCodes()
	require.Len(t, codes, len(hresultCodes))
	first := codes[0].Name
	codes[0].Name = "changed"
	require.Equal(t, first, HResultCodes()[0].Name)
}

func TestSearchHResults(t *testing.T) {
	t.Parallel()

	matches := SearchHResults("outofmemory")
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Name)
	}
	require.Contains(t, names, "E_OUTOFMEMORY")
	require.True(t, slices.IsSorted(names))

	byDescription := SearchHResults("CATASTROPHIC")
	require.NotEmpty(t, byDescription)
	require.Equal(t, "E_UNEXPECTED", byDescription[0].Name)

	require.Empty(t, SearchHResults(""))
	require.NotNil(t, SearchHResults("no such text anywhere"))
}

func TestTableCoversErrorFamilies(t *testing.T) {
	t.Parallel()

	testData := []struct {
		scenario string
		prefix   string
		count    int
	}{
		{scenario: "generic", prefix: "E_", count: 20},
		{scenario: "com", prefix: "CO_E_", count: 114},
		{scenario: "structured storage failures", prefix: "STG_E_", count: 50},
		{scenario: "structured storage successes", prefix: "STG_S_", count: 8},
		{scenario: "rpc", prefix: "RPC_E_", count: 52},
		{scenario: "security", prefix: "SEC_E_", count: 75},
		{scenario: "crypto", prefix: "CRYPT_E_", count: 70},
		{scenario: "crypto providers", prefix: "NTE_", count: 53},
		{scenario: "smart card", prefix: "SCARD_E_", count: 47},
		{scenario: "transaction failures", prefix: "XACT_E_", count: 51},
		{scenario: "transaction successes", prefix: "XACT_S_", count: 12},
		{scenario: "trust", prefix: "TRUST_E_", count: 16},
		{scenario: "certificates", prefix: "CERT_E_", count: 18},
		{scenario: "dispatch", prefix: "DISP_E_", count: 18},
		{scenario: "type library", prefix: "TYPE_E_", count: 26},
		{scenario: "ole", prefix: "OLE_E_", count: 19},
		{scenario: "monikers", prefix: "MK_E_", count: 17},
	}

	for _, td := range testData {
		t.Run(td.scenario, func(t *testing.T) {
			t.Parallel()

			count := 0
			for _, c := range HResultCodes() {
				if !strings.HasPrefix(c.Name, td.prefix) {
					continue
				}
				count++
				found, ok := LookupHResult(c.Name)
				require.True(t, ok, c.Name)
				require.Equal(t, c.Value, found.Value)
				require.Contains(t, FindByRetval(c.Value), c)
			}
			require.Equal(t, td.count, count)
		})
	}

	require.Len(t, HResultCodes(), 827)
}
