// Package erref provides types and constants for Windows HRESULT codes as defined in [MS-ERREF]
// section 2.1. It exposes a strongly typed HResult type, the table of named HRESULT values with
// their descriptions, and the accessors that decode the bit fields of a raw HRESULT.
//
// The HRESULT layout is:
//
//	 3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 1 1 1 1 1 1
//	 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	+-+-+-+-+-+---------------------+-------------------------------+
//	|S|R|C|N|X|      Facility       |             Code              |
//	+-+-+-+-+-+---------------------+-------------------------------+
//
// The hresult_codes.go file containing the table was generated from the official Microsoft
// documentation. The table is fixed at compile time and every function in this package is safe
// for concurrent use.
//
// A small set of NTSTATUS values is kept as NtStatus so that HRESULT_FROM_NT can be applied to
// status codes returned by the NT kernel and Windows file servers.
//
// For more information about the error codes, see:
// https://learn.microsoft.com/en-us/openspecs/windows_protocols/ms-erref/0642cb2f-2075-4469-918c-4441e69c548a
package erref
