package stealth

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 is a protocol requirement, not a new design choice.
)

// H160Size is the length in bytes of an H160 digest.
const H160Size = 20

// H160 computes RIPEMD-160(SHA-256(b)), the 160-bit hash the stealth
// derivation and recognition procedures use to fold a shared-secret point
// into a scalar.
func H160(b []byte) [H160Size]byte {
	sha := sha256.Sum256(b)

	h := ripemd160.New()
	h.Write(sha[:])

	var out [H160Size]byte
	copy(out[:], h.Sum(nil))
	return out
}
