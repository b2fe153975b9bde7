package erref

import (
	"slices"
	"strings"
)

var (
	// sortedCodes holds the table in byte-wise name order.
	sortedCodes = sortByName(hresultCodes)
	byName      = indexByName(hresultCodes)
	byValue     = indexByValue(sortedCodes)
)

func sortByName(codes []HResultCode) []HResultCode {
	sorted := slices.Clone(codes)
	slices.SortStableFunc(sorted, func(a, b HResultCode) int {
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}

func indexByName(codes []HResultCode) map[string]int {
	m := make(map[string]int, len(codes))
	for i, c := range codes {
		m[c.Name] = i
	}
	return m
}

// indexByValue keeps the first entry seen for each value.
func indexByValue(codes []HResultCode) map[HResult]int {
	m := make(map[HResult]int, len(codes))
	for i, c := range codes {
		if _, ok := m[c.HResult()]; !ok {
			m[c.HResult()] = i
		}
	}
	return m
}

func lookupValue(h HResult) (HResultCode, bool) {
	i, ok := byValue[h]
	if !ok {
		return HResultCode{}, false
	}
	return sortedCodes[i], true
}

// FindByRetval returns every table entry whose value equals v, in name order.
// The result is empty, not nil, when nothing matches.
func FindByRetval(v uint32) []HResultCode {
	return findByRetval(sortedCodes, v)
}

// findByRetval scans codes, which must already be in name order.
func findByRetval(codes []HResultCode, v uint32) []HResultCode {
	matches := []HResultCode{}
	for _, c := range codes {
		if c.Equal(v) {
			matches = append(matches, c)
		}
	}
	return matches
}

// LookupHResult finds a table entry by its exact symbolic name.
func LookupHResult(name string) (HResultCode, bool) {
	i, ok := byName[name]
	if !ok {
		return HResultCode{}, false
	}
	return hresultCodes[i], true
}

// HResultCodes returns a copy of the table in declaration order.
func HResultCodes() []HResultCode {
	return slices.Clone(hresultCodes)
}

// SearchHResults returns the entries whose name or description contains substr,
// ignoring case, in name order. An empty substr matches nothing.
func SearchHResults(substr string) []HResultCode {
	matches := []HResultCode{}
	if substr == "" {
		return matches
	}
	needle := strings.ToLower(substr)
	for _, c := range sortedCodes {
		if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(strings.ToLower(c.Description), needle) {
			matches = append(matches, c)
		}
	}
	return matches
}
