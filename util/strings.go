package util

import "strings"

//----------------------------------------------------------------------------------------------------
// Helper Functions for Strings
//----------------------------------------------------------------------------------------------------

// ValueOrDefault helps handle *string pointers safely.
func ValueOrDefault(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

// DigitsOnly strips every non-digit rune from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FirstToken returns the first whitespace-delimited token of s, or s itself
// when it holds no whitespace.
func FirstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[0]
}
