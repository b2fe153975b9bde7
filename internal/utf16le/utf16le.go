// Package utf16le encodes text as UTF-16 little endian, the encoding the Windows Message
// Compiler expects for Unicode message files.
package utf16le

import (
	"encoding/binary"
	"io"
	"unicode/utf16"
)

var le = binary.LittleEndian

// BOM is the byte order mark written at the start of a UTF-16LE file.
var BOM = []byte{0xFF, 0xFE}

func EncodedStringLen(s string) int {
	l := 0
	for _, r := range s {
		if 0x10000 <= r && r <= '\U0010FFFF' {
			l += 4
		} else {
			l += 2
		}
	}
	return l
}

func EncodeString(dst []byte, src string) int {
	ws := utf16.Encode([]rune(src))
	for i, w := range ws {
		le.PutUint16(dst[2*i:2*i+2], w)
	}
	return len(ws) * 2
}

func EncodeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	bs := make([]byte, EncodedStringLen(s))
	EncodeString(bs, s)
	return bs
}

// Writer encodes every string written to it before passing it to the underlying writer.
// The BOM is written once, before the first string.
type Writer struct {
	w        io.Writer
	wroteBOM bool
}

// NewWriter returns a Writer that starts its output with BOM.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteString encodes s and writes it. The returned count is the number of encoded bytes
// written, not counting the BOM.
func (w *Writer) WriteString(s string) (int, error) {
	if !w.wroteBOM {
		if _, err := w.w.Write(BOM); err != nil {
			return 0, err
		}
		w.wroteBOM = true
	}
	return w.w.Write(EncodeStringToBytes(s))
}
