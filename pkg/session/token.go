package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// GenerateToken creates an opaque session token: 16 random bytes followed
// by an 8-byte truncated HMAC-SHA256 tag, both base64url encoded and joined
// with a dot. The token authenticates form submissions from this page
// session; it is not a credential.
func GenerateToken(secret string) (string, error) {
	payload := make([]byte, 16)
	if _, err := rand.Read(payload); err != nil {
		return "", err
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	sig := h.Sum(nil)[:8]

	return base64.RawURLEncoding.EncodeToString(payload) + "." +
		base64.RawURLEncoding.EncodeToString(sig), nil
}

// VerifyToken reports whether a token was produced by GenerateToken with
// the same secret.
func VerifyToken(token, secret string) bool {
	payloadEnc, sigEnc, ok := strings.Cut(token, ".")
	if !ok {
		return false
	}

	payload, err := base64.RawURLEncoding.DecodeString(payloadEnc)
	if err != nil {
		return false
	}
	sig, err := base64.RawURLEncoding.DecodeString(sigEnc)
	if err != nil {
		return false
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	expected := h.Sum(nil)[:8]

	return hmac.Equal(sig, expected)
}
