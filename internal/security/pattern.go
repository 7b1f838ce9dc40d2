// Package security contains the static request-inspection rules: path
// traversal sequences and SQL injection patterns. Matching is pure and
// stateless; callers decide what to do with a hit.
package security

import (
	"net/url"
	"regexp"
	"strings"
)

// suspiciousPathPatterns lists traversal sequences in their raw, URL-encoded,
// double-encoded and UTF-8 overlong-encoded forms. Attackers rely on exactly
// one decoding layer being checked, so callers must match both the raw
// request target and its decoded form.
var suspiciousPathPatterns = []string{
	"../",
	"..\\",
	"%2e%2e%2f",
	"%2e%2e/",
	"..%2f",
	"%2e%2e%5c",
	"%2e%2e\\",
	"..%5c",
	"%252e%252e%255c",
	"..%255c",
	"%c0%ae%c0%ae%c0%af",
	"%c0%ae%c0%ae/",
}

// sqlInjectionPatterns are whole-value regular expressions, compiled once.
// The bare quote and semicolon rules are knowingly over-broad: they will flag
// legitimate apostrophes (O'Brien) and are kept for compatibility with the
// established detection behavior rather than tightened silently.
var sqlInjectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i).*'.*`),
	regexp.MustCompile(`(?i).*;.*`),
	regexp.MustCompile(`(?i).*--.*`),
	regexp.MustCompile(`(?i).*\bdrop\b.*`),
	regexp.MustCompile(`(?i).*\bdelete\b.*\bfrom\b.*`),
	regexp.MustCompile(`(?i).*\binsert\b.*\binto\b.*`),
	regexp.MustCompile(`(?i).*\bupdate\b.*\bset\b.*`),
	regexp.MustCompile(`(?i).*\bunion\b.*\bselect\b.*`),
	regexp.MustCompile(`(?i).*\bexec\b.*`),
	regexp.MustCompile(`(?i).*\bor\b\s+1\s*=\s*1.*`),
	regexp.MustCompile(`(?i).*\bor\b\s*'\s*=\s*'.*`),
}

// MatchesSuspiciousPath reports whether the text contains a path traversal
// sequence, in encoded or decoded form, anywhere in the value. The check is
// case-insensitive and also applied to the URL-decoded text so that a
// single-encoded payload cannot slip past a raw-only comparison.
func MatchesSuspiciousPath(text string) bool {
	lowered := strings.ToLower(text)
	for _, pattern := range suspiciousPathPatterns {
		if strings.Contains(lowered, pattern) {
			return true
		}
	}

	if decoded, err := url.QueryUnescape(lowered); err == nil && decoded != lowered {
		for _, pattern := range suspiciousPathPatterns {
			if strings.Contains(decoded, pattern) {
				return true
			}
		}
	}

	return false
}

// MatchesSQLInjection reports whether the value matches any of the SQL
// injection patterns. Empty values never match.
func MatchesSQLInjection(value string) bool {
	if value == "" {
		return false
	}

	for _, pattern := range sqlInjectionPatterns {
		if pattern.MatchString(value) {
			return true
		}
	}

	return false
}
