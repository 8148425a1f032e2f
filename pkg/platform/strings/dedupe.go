// Package strings normalises the string lists that arrive from query strings
// and environment variables.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and blank entries, trimming each element.
// Order of first occurrence is preserved.
func DedupeAndTrim(values []string) []string {
	return dedupe(values, strings.TrimSpace)
}

// DedupeCodes is DedupeAndTrim for reference-data codes, which are compared
// upper-case.
//
//	DedupeCodes([]string{" legal", "LEGAL", "vlb "})
//	// []string{"LEGAL", "VLB"}
func DedupeCodes(values []string) []string {
	return dedupe(values, func(s string) string {
		return strings.ToUpper(strings.TrimSpace(s))
	})
}

// SplitList expands comma separated entries, so that ?v=1,2&v=3 and
// ?v=1&v=2&v=3 read the same, then dedupes the result.
func SplitList(values []string) []string {
	var parts []string
	for _, v := range values {
		parts = append(parts, strings.Split(v, ",")...)
	}
	return DedupeAndTrim(parts)
}

func dedupe(values []string, normalise func(string) string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		n := normalise(v)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	return result
}
