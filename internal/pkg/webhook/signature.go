// Package webhook verifies signed content-change notifications.
//
// A signature header looks like "t=<unix millis>,v1=<sig>" where sig is the
// unpadded base64url HMAC-SHA256 of "<t>.<raw body>" under the shared secret.
// Several v1 entries may be present while a secret is being rotated.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/oms-tech/reviews/internal/pkg/apperrors"
)

// Verifier checks webhook signatures against one shared secret
type Verifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewVerifier creates a Verifier. tolerance <= 0 disables the timestamp age check.
func NewVerifier(secret string, tolerance time.Duration) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("webhook secret must not be empty")
	}
	return &Verifier{
		secret:    []byte(secret),
		tolerance: tolerance,
		now:       time.Now,
	}, nil
}

// Verify returns nil when header is a valid signature of body
func (v *Verifier) Verify(body []byte, header string) error {
	header = strings.TrimSpace(header)
	if header == "" {
		return apperrors.ErrMissingSignature
	}

	timestamp, signatures, ok := parseHeader(header)
	if !ok {
		return apperrors.ErrInvalidSignature
	}

	if v.tolerance > 0 {
		ms, err := strconv.ParseInt(timestamp, 10, 64)
		if err != nil {
			return apperrors.ErrInvalidSignature
		}
		age := v.now().Sub(time.UnixMilli(ms))
		if age > v.tolerance || age < -v.tolerance {
			return apperrors.ErrInvalidSignature
		}
	}

	expected := compute(v.secret, timestamp, body)
	for _, sig := range signatures {
		decoded, err := base64.RawURLEncoding.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}

	return apperrors.ErrInvalidSignature
}

// Sign produces a signature header for body at ts
func Sign(secret string, body []byte, ts time.Time) string {
	timestamp := strconv.FormatInt(ts.UnixMilli(), 10)
	sig := base64.RawURLEncoding.EncodeToString(compute([]byte(secret), timestamp, body))
	return "t=" + timestamp + ",v1=" + sig
}

func compute(secret []byte, timestamp string, body []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	return mac.Sum(nil)
}

func parseHeader(header string) (timestamp string, signatures []string, ok bool) {
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return "", nil, false
		}
		switch key {
		case "t":
			timestamp = value
		case "v1":
			signatures = append(signatures, value)
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return "", nil, false
	}
	return timestamp, signatures, true
}
