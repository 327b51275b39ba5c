// Package secp256k1 provides the secp256k1 elliptic-curve cryptography
// core: scalar/point primitives, an ordinary ECDSA keypair with compact
// public-key-recoverable signatures, and the DER/SEC1 byte formats needed
// to interoperate with legacy key stores.
//
// This package wraps github.com/decred/dcrd/dcrec/secp256k1/v4 for the
// underlying field and group arithmetic rather than reimplementing it; the
// recovery procedure, the compact signature encoding, and the DER codec
// are implemented here against that library's primitives.
//
// The package is synchronous and holds no goroutines of its own. A Key is
// not safe for concurrent mutation, but read-only operations (Verify,
// GetPublicKey) may be called concurrently on distinct instances.
package secp256k1
