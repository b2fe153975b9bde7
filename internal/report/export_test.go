package report

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/cloudsoda/go-hresult/erref"
	"github.com/cloudsoda/go-hresult/internal/utf16le"
)

func TestExportStructured(t *testing.T) {
	t.Parallel()

	total := len(erref.HResultCodes())

	testData := []struct {
		scenario string
		format   string
		decode   func([]byte) ([]Entry, error)
	}{
		{
			scenario: "json",
			format:   "json",
			decode: func(bs []byte) ([]Entry, error) {
				var entries []Entry
				err := json.Unmarshal(bs, &entries)
				return entries, err
			},
		},
		{
			scenario: "yaml",
			format:   "YAML",
			decode: func(bs []byte) ([]Entry, error) {
				var entries []Entry
				err := yaml.Unmarshal(bs, &entries)
				return entries, err
			},
		},
		{
			scenario: "toml",
			format:   "toml",
			decode: func(bs []byte) ([]Entry, error) {
				var doc struct {
					HResult []Entry `toml:"hresult"`
				}
				_, err := toml.Decode(string(bs), &doc)
				return doc.HResult, err
			},
		},
	}

	for _, td := range testData {
		t.Run(td.scenario, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, Export(&buf, td.format))

			entries, err := td.decode(buf.Bytes())
			require.NoError(t, err)
			require.Len(t, entries, total)

			var found bool
			for _, e := range entries {
				if e.Name == "E_FAIL" {
					found = true
					require.Equal(t, "0x80004005", e.Value)
					require.Equal(t, "Unspecified failure.", e.Description)
				}
			}
			require.True(t, found)
		})
	}
}

func TestExportMessageFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, "mc"))

	bs := buf.Bytes()
	require.Equal(t, utf16le.BOM, bs[:2])

	text := decodeUTF16LE(bs[2:])
	require.True(t, strings.HasPrefix(text, "MessageIdTypedef=HRESULT\r\n"))
	require.Contains(t, text, "FACILITY_WIN32=0x7")
	require.Contains(t, text, "MessageId=0x000E\r\nSeverity=CoError\r\nFacility=FACILITY_WIN32\r\nSymbolicName=E_OUTOFMEMORY\r\nLanguage=English\r\nFailed to allocate necessary memory.\r\n.\r\n")
	require.Contains(t, text, "MessageId=0x0200\r\nSeverity=Success\r\nFacility=FACILITY_STORAGE\r\nSymbolicName=STG_S_CONVERTED\r\n")
	require.Equal(t, len(erref.HResultCodes()), strings.Count(text, "SymbolicName="))
}

func TestExportUnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Export(&buf, "xml")
	require.Error(t, err)
	require.True(t, errors.Is(err, erref.ErrInvalidArgument))
	require.Contains(t, err.Error(), `unknown export format "xml"`)
	require.Zero(t, buf.Len())
}

func decodeUTF16LE(bs []byte) string {
	ws := make([]uint16, len(bs)/2)
	for i := range ws {
		ws[i] = binary.LittleEndian.Uint16(bs[2*i:])
	}
	return string(utf16.Decode(ws))
}
