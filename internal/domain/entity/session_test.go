package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_MatchesClient(t *testing.T) {
	session := &Session{
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64)",
		IPAddress: "203.0.113.7",
	}

	assert.True(t, session.MatchesClient("Mozilla/5.0 (X11; Linux x86_64)", "203.0.113.7"))

	// Exact equality only: any drift in either value is a mismatch.
	assert.False(t, session.MatchesClient("Mozilla/5.0 (X11; Linux x86_64)", "203.0.113.8"))
	assert.False(t, session.MatchesClient("curl/8.5.0", "203.0.113.7"))
	assert.False(t, session.MatchesClient("mozilla/5.0 (x11; linux x86_64)", "203.0.113.7"))
	assert.False(t, session.MatchesClient("", ""))
}

func TestSession_Bound(t *testing.T) {
	assert.True(t, (&Session{UserAgent: "curl/8.5.0", IPAddress: "198.51.100.1"}).Bound())
	assert.True(t, (&Session{UserAgent: "curl/8.5.0"}).Bound())
	assert.False(t, (&Session{}).Bound())
}
