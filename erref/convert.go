package erref

import (
	"errors"

	ole "github.com/go-ole/go-ole"
)

const (
	facilityWin32 = 7
	severityBit   = 0x80000000
	ntBit         = 0x10000000
)

// HResultFromWin32 maps a Win32 error code to an HRESULT the way the HRESULT_FROM_WIN32 macro
// does. Codes that are zero or already have the severity bit set are returned unchanged.
func HResultFromWin32(code uint32) HResult {
	if int32(code) <= 0 {
		return HResult(code)
	}
	return HResult(code&codeMask | facilityWin32<<facilityShift | severityBit)
}

// HResultFromNT maps an NTSTATUS to an HRESULT by setting the N bit, as HRESULT_FROM_NT does.
func HResultFromNT(status NtStatus) HResult {
	return HResult(uint32(status) | ntBit)
}

// FromError extracts an HRESULT from err. It unwraps err and recognizes HResult, NtStatus,
// go-ole's *OleError and, on Windows, Win32 errnos and NTSTATUS values from golang.org/x/sys.
func FromError(err error) (HResult, bool) {
	if err == nil {
		return 0, false
	}

	var h HResult
	if errors.As(err, &h) {
		return h, true
	}

	var status NtStatus
	if errors.As(err, &status) {
		return HResultFromNT(status), true
	}

	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		return HResult(uint32(oleErr.Code())), true
	}

	return fromSystemError(err)
}
