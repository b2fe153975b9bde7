package facility

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindByCode(t *testing.T) {
	t.Parallel()

	testData := []struct {
		scenario string
		code     uint16
		expected string
	}{
		{scenario: "null", code: 0, expected: "FACILITY_NULL"},
		{scenario: "rpc", code: 1, expected: "FACILITY_RPC"},
		{scenario: "win32", code: 7, expected: "FACILITY_WIN32"},
		{scenario: "shared code picks first name", code: 9, expected: "FACILITY_SECURITY"},
		{scenario: "smart card", code: 16, expected: "FACILITY_SCARD"},
		{scenario: "highest five bit code", code: 31, expected: "FACILITY_USERMODE_FILTER_MANAGER"},
		{scenario: "code wider than five bits", code: 61, expected: "FACILITY_WEBSERVICES"},
	}

	for _, td := range testData {
		t.Run(td.scenario, func(t *testing.T) {
			t.Parallel()

			f, err := FindByCode(td.code)
			require.NoError(t, err)
			require.Equal(t, td.expected, f.Name)
			require.Equal(t, td.code, f.Code)
			require.NotEmpty(t, f.Description)
		})
	}
}

func TestFindByCodeNotFound(t *testing.T) {
	t.Parallel()

	for _, code := range []uint16{5, 6, 28, 29, 30, 0xFFFF} {
		_, err := FindByCode(code)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrNotFound))

		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		require.Equal(t, code, nf.Code)
	}
}

func TestFindByName(t *testing.T) {
	t.Parallel()

	f, ok := FindByName("FACILITY_SSPI")
	require.True(t, ok)
	require.Equal(t, uint16(9), f.Code)

	_, ok = FindByName("FACILITY_NOPE")
	require.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()

	all := All()
	require.Len(t, all, len(facilities))
	all[0].Name = "changed"
	require.Equal(t, "FACILITY_NULL", All()[0].Name)
}

func TestNamesAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool, len(facilities))
	for _, f := range facilities {
		require.False(t, seen[f.Name], "duplicate facility %s", f.Name)
		seen[f.Name] = true
	}
}
