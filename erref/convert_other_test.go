//go:build !windows

package erref

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromErrorIgnoresUnixErrno(t *testing.T) {
	t.Parallel()

	_, ok := FromError(syscall.ENOENT)
	require.False(t, ok)
}
