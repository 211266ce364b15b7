package webhook

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

// VerifyHMAC checks a hex-encoded HMAC-SHA256 signature over body. The
// comparison is constant time; the payload must not be trusted before this
// passes.
func VerifyHMAC(secret, body []byte, signature string) error {
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}

// VerifyEd25519 checks a hex-encoded Ed25519 signature over timestamp||body,
// the convention identity providers use for membership events.
func VerifyEd25519(publicKeyHex string, timestamp string, body []byte, signature string) error {
	pub, err := hex.DecodeString(publicKeyHex)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return ErrInvalidSignature
	}
	sig, err := hex.DecodeString(signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return ErrInvalidSignature
	}
	msg := append([]byte(timestamp), body...)
	if !ed25519.Verify(ed25519.PublicKey(pub), msg, sig) {
		return ErrInvalidSignature
	}
	return nil
}
