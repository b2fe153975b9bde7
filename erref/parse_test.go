package erref

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	t.Parallel()

	testData := []struct {
		scenario string
		input    string
		expected uint32
	}{
		{scenario: "hex", input: "0x80004005", expected: 0x80004005},
		{scenario: "upper case prefix", input: "0X8007000e", expected: 0x8007000E},
		{scenario: "decimal", input: "2147942405", expected: 0x80070005},
		{scenario: "negative decimal", input: "-2147467259", expected: 0x80004005},
		{scenario: "minimum int32", input: "-2147483648", expected: 0x80000000},
		{scenario: "zero", input: "0", expected: 0},
		{scenario: "surrounding space", input: " 0x1 ", expected: 1},
		{scenario: "max uint32", input: "0xFFFFFFFF", expected: 0xFFFFFFFF},
	}

	for _, td := range testData {
		t.Run(td.scenario, func(t *testing.T) {
			t.Parallel()

			v, err := ParseValue(td.input)
			require.NoError(t, err)
			require.Equal(t, td.expected, v)
		})
	}
}

func TestParseValueInvalidArgument(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "not-an-integer", "0x", "0x1FFFFFFFF", "4294967296", "-2147483649", "1.5", "+5", "0xZZ"} {
		_, err := ParseValue(input)
		require.Error(t, err, input)
		require.True(t, errors.Is(err, ErrInvalidArgument), input)

		var invalid *InvalidArgumentError
		require.ErrorAs(t, err, &invalid)
		require.Contains(t, invalid.Error(), "invalid argument error: ")
	}
}
