//go:build windows

package erref

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestHandleRoundTrip(t *testing.T) {
	t.Parallel()

	require.Equal(t, E_FAIL, FromHandle(windows.E_FAIL))
	require.Equal(t, windows.E_OUTOFMEMORY, E_OUTOFMEMORY.Handle())
}

func TestFromErrorWindows(t *testing.T) {
	t.Parallel()

	h, ok := FromError(fmt.Errorf("create: %w", windows.ERROR_ACCESS_DENIED))
	require.True(t, ok)
	require.Equal(t, E_ACCESSDENIED, h)

	h, ok = FromError(windows.STATUS_ACCESS_DENIED)
	require.True(t, ok)
	require.Equal(t, HResult(0xD0000022), h)
}
