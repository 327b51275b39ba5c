package secp256k1

import "errors"

// Parse/validation errors. These are all recoverable: callers get a
// boolean or a wrapped error back and the receiver, if any, is left in a
// cleanly reset state. See Key.SetSecret, Key.SetPublicKey, and
// SetCompactSignature for the receivers that reset on failure.
var (
	// ErrBadEncoding is returned for malformed input bytes: wrong length,
	// invalid DER, or an out-of-range compact signature header.
	ErrBadEncoding = errors.New("secp256k1: bad encoding")

	// ErrNotOnCurve is returned when decoded coordinates do not describe a
	// point on the secp256k1 curve.
	ErrNotOnCurve = errors.New("secp256k1: point is not on the curve")

	// ErrOutOfRange is returned when a scalar is zero or >= the group order.
	ErrOutOfRange = errors.New("secp256k1: scalar out of range")

	// ErrInconsistentKey is returned when a parse succeeds but the
	// secret/public pair fails re-derivation (public != secret*G).
	ErrInconsistentKey = errors.New("secp256k1: inconsistent key")

	// ErrRecoveryFailed is returned when ECDSA recovery finds no curve
	// point for the given recid, or when no recid reproduces the signer's
	// public key during compact signing.
	ErrRecoveryFailed = errors.New("secp256k1: signature recovery failed")

	// ErrInfinityResult is returned when an operation (point encoding,
	// derivation) produces the point at infinity. Unlike the errors
	// above it is not necessarily a caller mistake: stealth derivation
	// may retry with fresh randomness after seeing it.
	ErrInfinityResult = errors.New("secp256k1: result is the point at infinity")
)
