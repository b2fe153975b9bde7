package erref

import "fmt"

// ErrorCode is a named Windows error value with its description.
type ErrorCode struct {
	Name        string
	Value       uint32
	Description string
}

// Equal reports whether the code has the raw value v.
func (c ErrorCode) Equal(v uint32) bool {
	return c.Value == v
}

func (c ErrorCode) String() string {
	return fmt.Sprintf("%s (0x%08X): %s", c.Name, c.Value, c.Description)
}
