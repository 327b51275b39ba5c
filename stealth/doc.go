// Package stealth implements the mutable-key (stealth-address) primitive
// built on top of secp256k1: a recipient-held pair of ordinary keys (l, h)
// whose public halves (L, H) let a sender derive an unlinkable one-time
// public key for each payment, and let the recipient recognize and spend
// the resulting variant without any interaction beyond publishing (L, H)
// once.
//
// The package is synchronous and holds no goroutines of its own. A Key is
// not safe for concurrent mutation; derivation from a PubKey and
// CheckVariant on distinct Key instances may be called concurrently.
package stealth
