//go:build windows

package erref

import (
	"errors"

	"golang.org/x/sys/windows"
)

// FromHandle converts an HRESULT constant from golang.org/x/sys/windows.
func FromHandle(h windows.Handle) HResult {
	return HResult(uint32(h))
}

// Handle returns the value in the type golang.org/x/sys/windows uses for HRESULT constants.
func (h HResult) Handle() windows.Handle {
	return windows.Handle(h)
}

func fromSystemError(err error) (HResult, bool) {
	var status windows.NTStatus
	if errors.As(err, &status) {
		return HResultFromNT(NtStatus(status)), true
	}

	var errno windows.Errno
	if errors.As(err, &errno) {
		if errno <= codeMask {
			return HResultFromWin32(uint32(errno)), true
		}
		return HResult(uint32(errno)), true
	}

	return 0, false
}
