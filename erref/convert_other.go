//go:build !windows

package erref

// Errno values outside Windows are not Win32 codes.
func fromSystemError(error) (HResult, bool) {
	return 0, false
}
