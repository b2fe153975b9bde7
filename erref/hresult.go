package erref

import (
	"fmt"

	"github.com/cloudsoda/go-hresult/erref/facility"
)

// HResult is a raw 32-bit HRESULT value. It is never sign-interpreted.
type HResult uint32

const (
	severityShift = 31
	customerShift = 29
	facilityShift = 16
	facilityMask  = 0x1F
	codeMask      = 0xFFFF
)

// Code returns the low 16 bits of the value.
func (h HResult) Code() uint16 {
	return uint16(h & codeMask)
}

// IsCustomer reports whether the top three bits of the value are exactly 001.
// A failure value with the C bit set (0xA0000000) is therefore not a customer code.
func (h HResult) IsCustomer() bool {
	return h>>customerShift == 1
}

// FacilityCode returns bits 16 through 20 of the value.
func (h HResult) FacilityCode() uint16 {
	return uint16(h>>facilityShift) & facilityMask
}

// Facility resolves FacilityCode in the facility registry.
// An unregistered code returns a *facility.NotFoundError.
func (h HResult) Facility() (facility.Facility, error) {
	return facility.FindByCode(h.FacilityCode())
}

// IsFailure reports whether the severity bit is set.
func (h HResult) IsFailure() bool {
	return h>>severityShift == 1
}

// IsSuccess reports whether the severity bit is clear.
func (h HResult) IsSuccess() bool {
	return !h.IsFailure()
}

// Name returns the symbolic name of the value, or "" if the table has no entry for it.
func (h HResult) Name() string {
	if c, ok := lookupValue(h); ok {
		return c.Name
	}
	return ""
}

// Description returns the description of the value, or "" if the table has no entry for it.
func (h HResult) Description() string {
	if c, ok := lookupValue(h); ok {
		return c.Description
	}
	return ""
}

func (h HResult) String() string {
	if c, ok := lookupValue(h); ok {
		return c.Name
	}
	return fmt.Sprintf("UNKNOWN_HRESULT_0x%08X", uint32(h))
}

func (h HResult) Error() string {
	if c, ok := lookupValue(h); ok {
		return c.Description
	}
	return h.String()
}

// HResultCode is an entry of the HRESULT table.
type HResultCode struct {
	ErrorCode
}

// HResult returns the entry's value as an HResult.
func (c HResultCode) HResult() HResult { return HResult(c.Value) }

// Code returns the low 16 bits of the entry's value.
func (c HResultCode) Code() uint16 { return c.HResult().Code() }

// IsCustomer reports whether the entry's value is a customer code, see HResult.IsCustomer.
func (c HResultCode) IsCustomer() bool { return c.HResult().IsCustomer() }

// FacilityCode returns the facility bits of the entry's value.
func (c HResultCode) FacilityCode() uint16 { return c.HResult().FacilityCode() }

// Facility resolves the entry's facility code in the facility registry.
func (c HResultCode) Facility() (facility.Facility, error) { return c.HResult().Facility() }

// IsFailure reports whether the entry's severity bit is set.
func (c HResultCode) IsFailure() bool { return c.HResult().IsFailure() }

// IsSuccess reports whether the entry's severity bit is clear.
func (c HResultCode) IsSuccess() bool { return c.HResult().IsSuccess() }
