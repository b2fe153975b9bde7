package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsoda/go-hresult/erref"
	"github.com/cloudsoda/go-hresult/internal/report"
)

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scenario   string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			scenario:   "decode hex",
			args:       []string{"decode", "0x8007000E"},
			wantCode:   exitOK,
			wantStdout: "E_OUTOFMEMORY",
		},
		{
			scenario:   "decode negative decimal",
			args:       []string{"decode", "--", "-2147467259"},
			wantCode:   exitOK,
			wantStdout: "E_FAIL",
		},
		{
			scenario:   "decode unknown value",
			args:       []string{"decode", "0x80051234"},
			wantCode:   exitOK,
			wantStdout: "UNKNOWN_HRESULT_0x80051234",
		},
		{
			scenario:   "decode garbage",
			args:       []string{"decode", "E_FAIL"},
			wantCode:   exitUsage,
			wantStderr: "invalid argument error",
		},
		{
			scenario:   "decode out of range",
			args:       []string{"decode", "0x1FFFFFFFF"},
			wantCode:   exitUsage,
			wantStderr: "invalid argument error",
		},
		{
			scenario:   "decode unknown output",
			args:       []string{"decode", "-o", "xml", "0"},
			wantCode:   exitUsage,
			wantStderr: `unknown output format "xml"`,
		},
		{
			scenario:   "search",
			args:       []string{"search", "access denied"},
			wantCode:   exitOK,
			wantStdout: "E_ACCESSDENIED",
		},
		{
			scenario:   "search without match",
			args:       []string{"search", "zzzz-nothing-matches"},
			wantCode:   exitOK,
			wantStderr: "no HRESULT matches",
		},
		{
			scenario:   "search empty",
			args:       []string{"search", ""},
			wantCode:   exitUsage,
			wantStderr: "invalid argument error",
		},
		{
			scenario:   "facility",
			args:       []string{"facility", "7"},
			wantCode:   exitOK,
			wantStdout: "FACILITY_WIN32 (7)",
		},
		{
			scenario:   "facility shared code",
			args:       []string{"facility", "0x9"},
			wantCode:   exitOK,
			wantStdout: "FACILITY_SECURITY (9)",
		},
		{
			scenario:   "facility by name",
			args:       []string{"facility", "FACILITY_SSPI"},
			wantCode:   exitOK,
			wantStdout: "FACILITY_SSPI (9)",
		},
		{
			scenario:   "facility list",
			args:       []string{"facility"},
			wantCode:   exitOK,
			wantStdout: "FACILITY_USERMODE_FILTER_MANAGER",
		},
		{
			scenario:   "facility unknown name",
			args:       []string{"facility", "FACILITY_NOPE"},
			wantCode:   exitUsage,
			wantStderr: "invalid argument error",
		},
		{
			scenario:   "facility unregistered",
			args:       []string{"facility", "5"},
			wantCode:   exitFailure,
			wantStderr: "no facility registered for code 5",
		},
		{
			scenario:   "facility too large",
			args:       []string{"facility", "65536"},
			wantCode:   exitUsage,
			wantStderr: "does not fit in 16 bits",
		},
		{
			scenario:   "export unknown format",
			args:       []string{"export", "-f", "xml"},
			wantCode:   exitUsage,
			wantStderr: `unknown export format "xml"`,
		},
		{
			scenario: "missing argument",
			args:     []string{"decode"},
			wantCode: exitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := execute(t, tt.args...)
			require.Equal(t, tt.wantCode, code, "stderr: %s", stderr)
			assert.Contains(t, stdout, tt.wantStdout)
			assert.Contains(t, stderr, tt.wantStderr)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execute(t, "decode", "-o", "json", "0x80004005", "0x8000FFFF")
	require.Equal(t, exitOK, code)

	dec := json.NewDecoder(bytes.NewBufferString(stdout))
	var names []string
	for dec.More() {
		var r report.Report
		require.NoError(t, dec.Decode(&r))
		require.Len(t, r.Matches, 1)
		names = append(names, r.Matches[0].Name)
		assert.Equal(t, "failure", r.Severity)
	}
	assert.Equal(t, []string{"E_FAIL", "E_UNEXPECTED"}, names)
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execute(t, "decode", "-o", "YAML", "0x80070005")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "---\n")
	assert.Contains(t, stdout, "name: E_ACCESSDENIED")
	assert.Contains(t, stdout, "facility: FACILITY_WIN32")
}

func TestExportToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hresult.json")
	code, stdout, stderr := execute(t, "export", "-f", "json", "-O", path)
	require.Equal(t, exitOK, code, stderr)
	assert.Empty(t, stdout)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []report.Entry
	require.NoError(t, json.Unmarshal(b, &entries))
	assert.Len(t, entries, len(erref.HResultCodes()))
}

func TestExportFailureRemovesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hresult.out")
	code, _, _ := execute(t, "export", "-f", "xml", "-O", path)
	require.Equal(t, exitUsage, code)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestServeRejectsBadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hresult.yaml"), []byte("log:\n  format: xml\n"), 0o600))

	code, _, stderr := execute(t, "serve", "--config", dir)
	require.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "format")
}

func TestServeRejectsBadLogLevel(t *testing.T) {
	t.Parallel()

	code, _, stderr := execute(t, "serve", "--config", t.TempDir(), "--log-level", "loud")
	require.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "loud")
}
