package erref

import "fmt"

// NtStatus is a raw 32-bit NTSTATUS value.
type NtStatus uint32

func (e NtStatus) Error() string {
	if c, ok := ntStatusByValue[e]; ok {
		return c.Description
	}
	return e.String()
}

func (e NtStatus) String() string {
	if c, ok := ntStatusByValue[e]; ok {
		return c.Name
	}
	return fmt.Sprintf("UNKNOWN_STATUS_0x%08x", uint32(e))
}

// HResult converts the status with HResultFromNT.
func (e NtStatus) HResult() HResult {
	return HResultFromNT(e)
}

const (
	STATUS_SUCCESS                  NtStatus = 0x00000000
	STATUS_PENDING                  NtStatus = 0x00000103
	STATUS_NOTIFY_CLEANUP           NtStatus = 0x0000010B
	STATUS_NOTIFY_ENUM_DIR          NtStatus = 0x0000010C
	STATUS_NO_MORE_FILES            NtStatus = 0x80000006
	STATUS_INFO_LENGTH_MISMATCH     NtStatus = 0xC0000004
	STATUS_INVALID_PARAMETER        NtStatus = 0xC000000D
	STATUS_NO_SUCH_FILE             NtStatus = 0xC000000F
	STATUS_END_OF_FILE              NtStatus = 0xC0000011
	STATUS_MORE_PROCESSING_REQUIRED NtStatus = 0xC0000016
	STATUS_ACCESS_DENIED            NtStatus = 0xC0000022
	STATUS_OBJECT_NAME_NOT_FOUND    NtStatus = 0xC0000034
	STATUS_OBJECT_NAME_COLLISION    NtStatus = 0xC0000035
	STATUS_OBJECT_PATH_NOT_FOUND    NtStatus = 0xC000003A
	STATUS_SHARING_VIOLATION        NtStatus = 0xC0000043
	STATUS_LOCK_NOT_GRANTED         NtStatus = 0xC0000055
	STATUS_RANGE_NOT_LOCKED         NtStatus = 0xC000007E
	STATUS_INSTANCE_NOT_AVAILABLE   NtStatus = 0xC00000AB
	STATUS_PIPE_NOT_AVAILABLE       NtStatus = 0xC00000AC
	STATUS_INVALID_PIPE_STATE       NtStatus = 0xC00000AD
	STATUS_PIPE_BUSY                NtStatus = 0xC00000AE
	STATUS_PIPE_DISCONNECTED        NtStatus = 0xC00000B0
	STATUS_PIPE_CLOSING             NtStatus = 0xC00000B1
	STATUS_FILE_IS_A_DIRECTORY      NtStatus = 0xC00000BA
	STATUS_NOT_SUPPORTED            NtStatus = 0xC00000BB
)

var ntStatusCodes = []ErrorCode{
	{"STATUS_SUCCESS", uint32(STATUS_SUCCESS), "The operation completed successfully."},
	{"STATUS_PENDING", uint32(STATUS_PENDING), "The operation that was requested is pending completion."},
	{"STATUS_NOTIFY_CLEANUP", uint32(STATUS_NOTIFY_CLEANUP), "Indicates that a notify change request has been completed due to closing the handle that made the notify change request."},
	{"STATUS_NOTIFY_ENUM_DIR", uint32(STATUS_NOTIFY_ENUM_DIR), "Indicates that a notify change request is being completed and that the information is not being returned in the caller's buffer. The caller now needs to enumerate the files to find the changes."},
	{"STATUS_NO_MORE_FILES", uint32(STATUS_NO_MORE_FILES), "{No More Files} No more files were found which match the file specification."},
	{"STATUS_INFO_LENGTH_MISMATCH", uint32(STATUS_INFO_LENGTH_MISMATCH), "The specified information record length does not match the length that is required for the specified information class."},
	{"STATUS_INVALID_PARAMETER", uint32(STATUS_INVALID_PARAMETER), "An invalid parameter was passed to a service or function."},
	{"STATUS_NO_SUCH_FILE", uint32(STATUS_NO_SUCH_FILE), "{File Not Found} The file %hs does not exist."},
	{"STATUS_END_OF_FILE", uint32(STATUS_END_OF_FILE), "The end-of-file marker has been reached. There is no valid data in the file beyond this marker."},
	{"STATUS_MORE_PROCESSING_REQUIRED", uint32(STATUS_MORE_PROCESSING_REQUIRED), "{Still Busy} The specified I/O request packet (IRP) cannot be disposed of because the I/O operation is not complete."},
	{"STATUS_ACCESS_DENIED", uint32(STATUS_ACCESS_DENIED), "{Access Denied} A process has requested access to an object but has not been granted those access rights."},
	{"STATUS_OBJECT_NAME_NOT_FOUND", uint32(STATUS_OBJECT_NAME_NOT_FOUND), "The object name is not found."},
	{"STATUS_OBJECT_NAME_COLLISION", uint32(STATUS_OBJECT_NAME_COLLISION), "The object name already exists."},
	{"STATUS_OBJECT_PATH_NOT_FOUND", uint32(STATUS_OBJECT_PATH_NOT_FOUND), "{Path Not Found} The path %hs does not exist."},
	{"STATUS_SHARING_VIOLATION", uint32(STATUS_SHARING_VIOLATION), "A file cannot be opened because the share access flags are incompatible."},
	{"STATUS_LOCK_NOT_GRANTED", uint32(STATUS_LOCK_NOT_GRANTED), "A requested file lock cannot be granted due to other existing locks."},
	{"STATUS_RANGE_NOT_LOCKED", uint32(STATUS_RANGE_NOT_LOCKED), "The range specified in NtUnlockFile was not locked."},
	{"STATUS_INSTANCE_NOT_AVAILABLE", uint32(STATUS_INSTANCE_NOT_AVAILABLE), "The maximum named pipe instance count has been reached."},
	{"STATUS_PIPE_NOT_AVAILABLE", uint32(STATUS_PIPE_NOT_AVAILABLE), "An instance of a named pipe cannot be found in the listening state."},
	{"STATUS_INVALID_PIPE_STATE", uint32(STATUS_INVALID_PIPE_STATE), "The named pipe is not in the connected or closing state."},
	{"STATUS_PIPE_BUSY", uint32(STATUS_PIPE_BUSY), "The specified pipe is set to complete operations and there are current I/O operations queued so that it cannot be changed to queue operations."},
	{"STATUS_PIPE_DISCONNECTED", uint32(STATUS_PIPE_DISCONNECTED), "The specified named pipe is in the disconnected state."},
	{"STATUS_PIPE_CLOSING", uint32(STATUS_PIPE_CLOSING), "The specified named pipe is in the closing state."},
	{"STATUS_FILE_IS_A_DIRECTORY", uint32(STATUS_FILE_IS_A_DIRECTORY), "The file that was specified as a target is a directory, and the caller specified that it could be anything but a directory."},
	{"STATUS_NOT_SUPPORTED", uint32(STATUS_NOT_SUPPORTED), "The request is not supported."},
}

var ntStatusByValue = func() map[NtStatus]ErrorCode {
	m := make(map[NtStatus]ErrorCode, len(ntStatusCodes))
	for _, c := range ntStatusCodes {
		m[NtStatus(c.Value)] = c
	}
	return m
}()
