package utf16le

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	t.Parallel()

	testData := []struct {
		scenario    string
		input       string
		expectedHex string
	}{
		{
			scenario:    "ascii",
			input:       "E_FAIL",
			expectedHex: "45005f004600410049004c00",
		},
		{
			scenario:    "crlf",
			input:       "a\r\n",
			expectedHex: "61000d000a00",
		},
		{
			scenario:    "latin",
			input:       "é",
			expectedHex: "e900",
		},
		{
			scenario:    "surrogate pair",
			input:       "\U0001F600",
			expectedHex: "3dd800de",
		},
	}

	for _, td := range testData {
		t.Run(td.scenario, func(t *testing.T) {
			t.Parallel()

			bs := EncodeStringToBytes(td.input)
			require.Equal(t, td.expectedHex, hex.EncodeToString(bs))
			require.Equal(t, len(bs), EncodedStringLen(td.input))
			require.Equal(t, len(utf16.Encode([]rune(td.input)))*2, len(bs))
			require.Equal(t, td.input, decodeUTF16LE(bs))
		})
	}
}

func TestEncodeStringToBytesEmpty(t *testing.T) {
	t.Parallel()

	require.Nil(t, EncodeStringToBytes(""))
}


func TestWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(&buf)

	n, err := w.WriteString("ab")
	require.NoError(t, err)
	require.Equal(t, 4, n)

	n, err = w.WriteString("c")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.Equal(t, "fffe610062006300", hex.EncodeToString(buf.Bytes()))
	require.Equal(t, "abc", decodeUTF16LE(buf.Bytes()[2:]))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterPropagatesErrors(t *testing.T) {
	t.Parallel()

	_, err := NewWriter(failingWriter{}).WriteString("a")
	require.EqualError(t, err, "disk full")
}

func decodeUTF16LE(bs []byte) string {
	ws := make([]uint16, len(bs)/2)
	for i := range ws {
		ws[i] = le.Uint16(bs[2*i:])
	}
	return string(utf16.Decode(ws))
}
