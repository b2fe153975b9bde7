package erref

import (
	"errors"
	"fmt"
	"testing"

	ole "github.com/go-ole/go-ole"
	"github.com/stretchr/testify/require"
)

func TestHResultFromWin32(t *testing.T) {
	t.Parallel()

	testData := []struct {
		scenario string
		code     uint32
		expected HResult
	}{
		{scenario: "success stays zero", code: 0, expected: 0},
		{scenario: "access denied", code: 5, expected: E_ACCESSDENIED},
		{scenario: "not enough memory", code: 14, expected: E_OUTOFMEMORY},
		{scenario: "invalid parameter", code: 87, expected: E_INVALIDARG},
		{scenario: "high bits are dropped", code: 0x7FFF0006, expected: E_HANDLE},
		{scenario: "already an hresult", code: 0x80004005, expected: E_FAIL},
	}

	for _, td := range testData {
		t.Run(td.scenario, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, td.expected, HResultFromWin32(td.code))
		})
	}
}

func TestHResultFromNT(t *testing.T) {
	t.Parallel()

	h := HResultFromNT(STATUS_ACCESS_DENIED)
	require.Equal(t, HResult(0xD0000022), h)
	require.True(t, h.IsFailure())
	require.Equal(t, uint16(0x0022), h.Code())
	require.Equal(t, h, STATUS_ACCESS_DENIED.HResult())

	require.Equal(t, HResult(0x10000000), HResultFromNT(STATUS_SUCCESS))
}

func TestNtStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, "STATUS_ACCESS_DENIED", STATUS_ACCESS_DENIED.String())
	require.Contains(t, STATUS_ACCESS_DENIED.Error(), "Access Denied")
	require.Equal(t, "UNKNOWN_STATUS_0xc0001234", NtStatus(0xC0001234).String())
	require.Equal(t, "UNKNOWN_STATUS_0xc0001234", NtStatus(0xC0001234).Error())
	require.Len(t, ntStatusByValue, len(ntStatusCodes))
}

func TestNtStatusTableMatchesConstants(t *testing.T) {
	t.Parallel()

	for _, c := range ntStatusCodes {
		status := NtStatus(c.Value)
		require.Equal(t, c.Name, status.String())
		require.Equal(t, c.Description, status.Error())
		require.NotEmpty(t, c.Description, c.Name)
	}
}

func TestFromError(t *testing.T) {
	t.Parallel()

	testData := []struct {
		scenario string
		err      error
		expected HResult
		ok       bool
	}{
		{scenario: "nil", err: nil},
		{scenario: "plain error", err: errors.New("boom")},
		{scenario: "hresult", err: E_FAIL, expected: E_FAIL, ok: true},
		{scenario: "wrapped hresult", err: fmt.Errorf("open: %w", E_ACCESSDENIED), expected: E_ACCESSDENIED, ok: true},
		{scenario: "nt status", err: STATUS_ACCESS_DENIED, expected: 0xD0000022, ok: true},
		{scenario: "ole error", err: ole.NewError(0x80004001), expected: E_NOTIMPL, ok: true},
		{scenario: "wrapped ole error", err: fmt.Errorf("dispatch: %w", ole.NewError(0x8007000E)), expected: E_OUTOFMEMORY, ok: true},
	}

	for _, td := range testData {
		t.Run(td.scenario, func(t *testing.T) {
			t.Parallel()

			h, ok := FromError(td.err)
			require.Equal(t, td.ok, ok)
			require.Equal(t, td.expected, h)
		})
	}
}
