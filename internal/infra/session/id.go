package session

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

// GenerateID generates a cryptographically secure opaque identifier.
// 32 bytes = 256 bits of entropy; also used for CSRF tokens.
func GenerateID() (string, error) {
	const size = 32

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to generate session id")
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
