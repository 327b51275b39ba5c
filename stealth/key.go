package stealth

import (
	"github.com/blockberries/punnet-crypto/secp256k1"
)

// PubKey is the recipient's long-lived public stealth identifier: the
// MutablePubKey of spec.md §3. Both halves are always non-infinity,
// compressed-form curve points once produced by Key.PubKey.
type PubKey struct {
	L *secp256k1.Point
	H *secp256k1.Point
}

// Key is a mutable (stealth) keypair: the MutableKey of spec.md §3. Per
// §4.4, it has no partial state — it is either null (the zero Key, unusable)
// or populated with both halves. A Key is not safe for concurrent mutation.
type Key struct {
	l *secp256k1.Key
	h *secp256k1.Key
}

// NewKey samples two fresh ECDSA keypairs (l, h) and returns the populated
// mutable key. RNG exhaustion is fatal and panics, matching
// secp256k1.Key.MakeNew.
func NewKey() *Key {
	l := secp256k1.NewKey()
	l.MakeNew(true)
	h := secp256k1.NewKey()
	h.MakeNew(true)
	return &Key{l: l, h: h}
}

// NewKeyFromHalves builds a mutable key from two already-populated
// secp256k1 keys, as used by deterministic test-vector generation where
// (l, h) are fixed rather than sampled. Both halves must carry a secret.
func NewKeyFromHalves(l, h *secp256k1.Key) (*Key, error) {
	if l == nil || h == nil || !l.IsValid() || !h.IsValid() {
		return nil, ErrNullKey
	}
	if _, _, ok := l.GetSecret(); !ok {
		return nil, ErrNullKey
	}
	if _, _, ok := h.GetSecret(); !ok {
		return nil, ErrNullKey
	}
	return &Key{l: l, h: h}, nil
}

// PubKey derives the public stealth identifier (L, H) = (l·G, h·G). Fails
// with ErrNullKey if k was never populated.
func (k *Key) PubKey() (*PubKey, error) {
	if k == nil || k.l == nil || k.h == nil {
		return nil, ErrNullKey
	}

	L, err := decodeCompressedFromKey(k.l)
	if err != nil {
		return nil, err
	}
	H, err := decodeCompressedFromKey(k.h)
	if err != nil {
		return nil, err
	}

	return &PubKey{L: L, H: H}, nil
}

func decodeCompressedFromKey(k *secp256k1.Key) (*secp256k1.Point, error) {
	enc := k.GetPublicKey()
	if enc == nil {
		return nil, ErrNullKey
	}
	return secp256k1.DecodePoint(enc)
}

// Zero wipes both private halves of the mutable key.
func (k *Key) Zero() {
	if k == nil {
		return
	}
	if k.l != nil {
		k.l.Zero()
	}
	if k.h != nil {
		k.h.Zero()
	}
}
