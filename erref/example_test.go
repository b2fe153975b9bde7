package erref_test

import (
	"errors"
	"fmt"

	"github.com/cloudsoda/go-hresult/erref"
)

func Example() {
	for _, c := range erref.FindByRetval(0x8007000E) {
		f, err := c.Facility()
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s code=0x%04X failure=%t customer=%t facility=%s\n",
			c.Name, c.Code(), c.IsFailure(), c.IsCustomer(), f.Name)
	}

	// Output:
	// E_OUTOFMEMORY code=0x000E failure=true customer=false facility=FACILITY_WIN32
}

func ExampleParseValue() {
	v, err := erref.ParseValue("-2147467259")
	if err != nil {
		panic(err)
	}
	fmt.Println(erref.HResult(v).String())

	_, err = erref.ParseValue("not-an-integer")
	fmt.Println(errors.Is(err, erref.ErrInvalidArgument))

	// Output:
	// E_FAIL
	// true
}

func ExampleHResultFromWin32() {
	h := erref.HResultFromWin32(5)
	fmt.Printf("0x%08X %s\n", uint32(h), h.String())

	// Output:
	// 0x80070005 E_ACCESSDENIED
}

func ExampleFromError() {
	err := fmt.Errorf("open share: %w", erref.STATUS_ACCESS_DENIED)
	if h, ok := erref.FromError(err); ok {
		fmt.Printf("0x%08X\n", uint32(h))
	}

	// Output:
	// 0xD0000022
}
