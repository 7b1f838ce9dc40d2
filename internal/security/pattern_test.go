package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesSuspiciousPath_TraversalVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "plain dot dot slash", text: "/files/../etc/passwd", want: true},
		{name: "plain dot dot backslash", text: `\images\..\..\secrets`, want: true},
		{name: "url encoded", text: "/files/%2e%2e%2fetc/passwd", want: true},
		{name: "url encoded uppercase", text: "/files/%2E%2E%2Fetc/passwd", want: true},
		{name: "half encoded", text: "/files/..%2fetc/passwd", want: true},
		{name: "backslash encoded", text: "/files/..%5cwindows", want: true},
		{name: "double encoded backslash", text: "/files/..%255cwindows", want: true},
		{name: "overlong utf8", text: "/files/%c0%ae%c0%ae%c0%afetc", want: true},
		{name: "embedded in query", text: "/download?file=....//....//secret", want: true},
		{name: "clean path", text: "/albums/4f1c/reviews", want: false},
		{name: "single dot segments", text: "/albums/./covers/a.png", want: false},
		{name: "empty", text: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesSuspiciousPath(tt.text))
		})
	}
}

func TestMatchesSuspiciousPath_DecodedFormOnly(t *testing.T) {
	// %252e decodes to %2e; only the decoded form contains an encoded traversal.
	assert.True(t, MatchesSuspiciousPath("/files/%252e%252e%252fetc"))
}

func TestMatchesSQLInjection_KnownPatterns(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "tautology", value: "admin' or 1=1", want: true},
		{name: "tautology spaced upper", value: "x OR 1 = 1", want: true},
		{name: "quote tautology", value: "name' or '='", want: true},
		{name: "drop table", value: "1; drop table users", want: true},
		{name: "drop mixed case", value: "1 DrOp TaBlE users", want: true},
		{name: "union select", value: "id union select password from users", want: true},
		{name: "delete from", value: "delete from reviews", want: true},
		{name: "insert into", value: "insert into users values", want: true},
		{name: "update set", value: "update users set admin=true", want: true},
		{name: "exec", value: "exec xp_cmdshell", want: true},
		{name: "comment marker", value: "value -- trailing", want: true},
		{name: "bare semicolon", value: "a;b", want: true},
		{name: "bare quote over-broad rule", value: "O'Brien", want: true},
		{name: "plain review comment", value: "A warm and dense record with great pacing", want: false},
		{name: "alphanumeric", value: "abc123", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesSQLInjection(tt.value))
		})
	}
}

func TestMatchesSQLInjection_KeywordCoOccurrenceRequired(t *testing.T) {
	// Keywords alone are not enough for the paired rules.
	assert.False(t, MatchesSQLInjection("updated settings for my profile"))
	assert.False(t, MatchesSQLInjection("the union of two sets"))
	// But paired keywords as standalone words are.
	assert.True(t, MatchesSQLInjection("union all select 1"))
}
