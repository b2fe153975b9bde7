package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsoda/go-hresult/internal/httpapi/middleware"
	"github.com/cloudsoda/go-hresult/internal/report"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/v1/hresults", ListHResults)
	r.GET("/v1/hresults/:value", DecodeHResult)
	r.GET("/v1/facilities/:code", GetFacility)
	return r
}

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestDecodeHResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scenario     string
		path         string
		wantMatches  []string
		wantSeverity string
		wantFacility string
	}{
		{
			scenario:     "hex value of a known failure",
			path:         "/v1/hresults/0x8007000E",
			wantMatches:  []string{"E_OUTOFMEMORY"},
			wantSeverity: "failure",
			wantFacility: "FACILITY_WIN32",
		},
		{
			scenario:     "decimal value",
			path:         "/v1/hresults/2147500037",
			wantMatches:  []string{"E_FAIL"},
			wantSeverity: "failure",
			wantFacility: "FACILITY_NULL",
		},
		{
			scenario:     "zero has no table entry",
			path:         "/v1/hresults/0",
			wantMatches:  []string{},
			wantSeverity: "success",
			wantFacility: "FACILITY_NULL",
		},
		{
			scenario:     "unregistered facility",
			path:         "/v1/hresults/0x80051234",
			wantMatches:  []string{},
			wantSeverity: "failure",
			wantFacility: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			t.Parallel()

			w := get(t, tt.path)
			require.Equal(t, http.StatusOK, w.Code)

			var r report.Report
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
			names := make([]string, 0, len(r.Matches))
			for _, m := range r.Matches {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.wantMatches, names)
			assert.Equal(t, tt.wantSeverity, r.Severity)
			assert.Equal(t, tt.wantFacility, r.Facility)
		})
	}
}

func TestDecodeHResultInvalid(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"not-a-number", "0x100000000", "-2147483649"} {
		w := get(t, "/v1/hresults/"+value)
		require.Equal(t, http.StatusBadRequest, w.Code, value)

		resp := decodeError(t, w)
		assert.Equal(t, ErrCodeInvalidArgument, resp.Code)
		assert.NotEmpty(t, resp.RequestID)
		assert.Contains(t, resp.Message, "invalid argument error")
	}
}

func TestListHResultsByName(t *testing.T) {
	t.Parallel()

	w := get(t, "/v1/hresults?name=E_FAIL")
	require.Equal(t, http.StatusOK, w.Code)

	var r report.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	assert.Equal(t, "0x80004005", r.Value)
	require.Len(t, r.Matches, 1)
	assert.Equal(t, "E_FAIL", r.Matches[0].Name)

	w = get(t, "/v1/hresults?name=NO_SUCH_HRESULT")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrCodeNotFound, decodeError(t, w).Code)
}

func TestListHResultsSearch(t *testing.T) {
	t.Parallel()

	w := get(t, "/v1/hresults?q=catastrophic")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "catastrophic", resp.Query)
	require.NotEmpty(t, resp.Results)

	var found bool
	for _, e := range resp.Results {
		if e.Name == "E_UNEXPECTED" {
			found = true
			assert.Equal(t, "0x8000FFFF", e.Value)
		}
	}
	assert.True(t, found)

	w = get(t, "/v1/hresults?q=zzzz-nothing-matches")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Results)
}

func TestListHResultsWithoutQuery(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/v1/hresults", "/v1/hresults?q="} {
		w := get(t, path)
		require.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, ErrCodeInvalidArgument, decodeError(t, w).Code)
	}
}

func TestGetFacility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scenario   string
		path       string
		wantStatus int
		wantName   string
		wantCode   string
	}{
		{scenario: "win32", path: "/v1/facilities/7", wantStatus: http.StatusOK, wantName: "FACILITY_WIN32"},
		{scenario: "hex code", path: "/v1/facilities/0x9", wantStatus: http.StatusOK, wantName: "FACILITY_SECURITY"},
		{scenario: "unregistered", path: "/v1/facilities/5", wantStatus: http.StatusNotFound, wantCode: ErrCodeNotFound},
		{scenario: "too large", path: "/v1/facilities/0x10000", wantStatus: http.StatusBadRequest, wantCode: ErrCodeInvalidArgument},
		{scenario: "garbage", path: "/v1/facilities/win32", wantStatus: http.StatusBadRequest, wantCode: ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			t.Parallel()

			w := get(t, tt.path)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
				return
			}

			var resp FacilityResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantName, resp.Name)
		})
	}
}
