package erref

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudsoda/go-hresult/erref/facility"
)

func TestDecodeTableValues(t *testing.T) {
	t.Parallel()

	for _, c := range hresultCodes {
		v := c.Value
		h := c.HResult()

		require.Equal(t, uint16(v&0xFFFF), c.Code(), c.Name)
		require.Equal(t, (v>>31)&1 == 1, c.IsFailure(), c.Name)
		require.Equal(t, !c.IsFailure(), c.IsSuccess(), c.Name)
		require.Equal(t, v>>29 == 1, c.IsCustomer(), c.Name)
		require.Equal(t, uint16((v>>16)&0x1F), c.FacilityCode(), c.Name)

		require.Equal(t, c.Code(), h.Code())
		require.Equal(t, c.IsFailure(), h.IsFailure())
		require.Equal(t, c.IsCustomer(), h.IsCustomer())
		require.Equal(t, c.FacilityCode(), h.FacilityCode())
	}
}

func TestIsCustomer(t *testing.T) {
	t.Parallel()

	testData := []struct {
		scenario string
		value    HResult
		expected bool
	}{
		{scenario: "only customer bit", value: 0x20000000, expected: true},
		{scenario: "customer bit with low bits", value: 0x3FFFFFFF, expected: true},
		{scenario: "customer and failure bits", value: 0xA0000000, expected: false},
		{scenario: "customer and reserved bits", value: 0x60000000, expected: false},
		{scenario: "no customer bit", value: 0x00030200, expected: false},
		{scenario: "failure only", value: 0x80004005, expected: false},
	}

	for _, td := range testData {
		t.Run(td.scenario, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, td.expected, td.value.IsCustomer())
		})
	}
}

func TestFacilityOfAccessDenied(t *testing.T) {
	t.Parallel()

	v := uint32(0x80070005)
	require.Equal(t, uint32(0x07), (v>>16)&0b11111)

	c, ok := LookupHResult("E_ACCESSDENIED")
	require.True(t, ok)
	require.Equal(t, uint16(7), c.FacilityCode())

	f, err := c.Facility()
	require.NoError(t, err)
	require.Equal(t, "FACILITY_WIN32", f.Name)
	require.Equal(t, uint16(7), f.Code)
}

func TestFacilityNotRegistered(t *testing.T) {
	t.Parallel()

	_, err := HResult(0x801C0001).Facility()
	require.Error(t, err)
	require.True(t, errors.Is(err, facility.ErrNotFound))
}

func TestOutOfMemoryEndToEnd(t *testing.T) {
	t.Parallel()

	matches := FindByRetval(0x8007000E)
	require.Len(t, matches, 1)

	c := matches[0]
	require.Equal(t, "E_OUTOFMEMORY", c.Name)
	require.Equal(t, uint16(0x000E), c.Code())
	require.True(t, c.IsFailure())
	require.False(t, c.IsSuccess())
	require.False(t, c.IsCustomer())

	f, err := c.Facility()
	require.NoError(t, err)
	require.Equal(t, "FACILITY_WIN32", f.Name)
	require.Equal(t, uint16(0x07), f.Code)
}

func TestAccessorsAreIdempotent(t *testing.T) {
	t.Parallel()

	c, ok := LookupHResult("E_FAIL")
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		require.Equal(t, uint16(0x4005), c.Code())
		require.True(t, c.IsFailure())
		require.False(t, c.IsSuccess())
		require.False(t, c.IsCustomer())
		require.Equal(t, uint16(0), c.FacilityCode())
		require.Equal(t, "E_FAIL", E_FAIL.Name())
	}
}

func TestHResultNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, "E_FAIL", E_FAIL.String())
	require.Equal(t, "Unspecified failure.", E_FAIL.Error())
	require.Equal(t, "Unspecified failure.", E_FAIL.Description())

	unknown := HResult(0x8FFF1234)
	require.Equal(t, "", unknown.Name())
	require.Equal(t, "", unknown.Description())
	require.Equal(t, "UNKNOWN_HRESULT_0x8FFF1234", unknown.String())
	require.Equal(t, "UNKNOWN_HRESULT_0x8FFF1234", unknown.Error())
}

func TestSuccessCodes(t *testing.T) {
	t.Parallel()

	require.True(t, STG_S_CONVERTED.IsSuccess())
	require.False(t, STG_S_CONVERTED.IsFailure())
	require.Equal(t, uint16(3), STG_S_CONVERTED.FacilityCode())
	require.Equal(t, uint16(0x0200), STG_S_CONVERTED.Code())
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	c := ErrorCode{Name: "E_FAIL", Value: 0x80004005, Description: "Unspecified failure."}
	require.True(t, c.Equal(0x80004005))
	require.False(t, c.Equal(0x80004004))
	require.Equal(t, "E_FAIL (0x80004005): Unspecified failure.", c.String())
}
