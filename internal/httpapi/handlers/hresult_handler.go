package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudsoda/go-hresult/erref"
	"github.com/cloudsoda/go-hresult/erref/facility"
	"github.com/cloudsoda/go-hresult/internal/httpapi/middleware"
	"github.com/cloudsoda/go-hresult/internal/report"
)

// SearchResponse lists the entries matched by a search.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []report.Entry `json:"results"`
}

// FacilityResponse is the JSON form of a facility.
type FacilityResponse struct {
	Name        string `json:"name"`
	Code        uint16 `json:"code"`
	Description string `json:"description"`
}

// DecodeHResult handles GET /v1/hresults/:value. Decoding is defined for every 32-bit value,
// so an unknown value is a 200 with no matches.
func DecodeHResult(c *gin.Context) {
	v, err := erref.ParseValue(c.Param("value"))
	if err != nil {
		failWithError(c, err)
		return
	}

	r := report.Decode(v)
	middleware.ObserveLookup("value", len(r.Matches) > 0)
	c.JSON(http.StatusOK, r)
}

// ListHResults handles GET /v1/hresults. With ?name= it returns the decoded entry of that
// name, with ?q= it searches names and descriptions.
func ListHResults(c *gin.Context) {
	if name, ok := c.GetQuery("name"); ok {
		code, found := erref.LookupHResult(name)
		middleware.ObserveLookup("name", found)
		if !found {
			Fail(c, http.StatusNotFound, ErrCodeNotFound, "no HRESULT named "+name)
			return
		}
		c.JSON(http.StatusOK, report.Decode(code.Value))
		return
	}

	if q, ok := c.GetQuery("q"); ok && q != "" {
		results := report.Entries(erref.SearchHResults(q))
		middleware.ObserveLookup("search", len(results) > 0)
		c.JSON(http.StatusOK, SearchResponse{Query: q, Results: results})
		return
	}

	Fail(c, http.StatusBadRequest, ErrCodeInvalidArgument, "one of the name or q query parameters is required")
}

// GetFacility handles GET /v1/facilities/:code.
func GetFacility(c *gin.Context) {
	v, err := erref.ParseValue(c.Param("code"))
	if err != nil {
		failWithError(c, err)
		return
	}
	if v > 0xFFFF {
		Fail(c, http.StatusBadRequest, ErrCodeInvalidArgument, "facility code must fit in 16 bits")
		return
	}

	f, err := facility.FindByCode(uint16(v))
	if err != nil {
		failWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, FacilityResponse{Name: f.Name, Code: f.Code, Description: f.Description})
}

func failWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, erref.ErrInvalidArgument):
		Fail(c, http.StatusBadRequest, ErrCodeInvalidArgument, err.Error())
	case errors.Is(err, facility.ErrNotFound):
		Fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	default:
		Fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}
