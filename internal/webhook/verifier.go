package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
)

var (
	ErrSignatureMissing = errors.New("signature not found")
	ErrSignatureInvalid = errors.New("invalid signature")
)

// Verifier checks the provider's webhook signature: base64 of an HMAC-SHA256
// digest computed over the raw request body with the shared secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Digest computes the expected signature for a raw body.
func (v *Verifier) Digest(body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify compares the header signature against the computed digest in
// constant time.
func (v *Verifier) Verify(body []byte, signature string) error {
	if signature == "" {
		return ErrSignatureMissing
	}
	if !hmac.Equal([]byte(signature), []byte(v.Digest(body))) {
		return ErrSignatureInvalid
	}
	return nil
}
