package secp256k1

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Key is a single ECDSA keypair: an optional secret scalar, an optional
// public point, and the compression flag used when serializing the
// public half. A Key is not safe for concurrent mutation; read-only
// methods (Verify, GetPublicKey) may be called concurrently on distinct
// instances.
type Key struct {
	secret     *secp256k1.PrivateKey
	public     *secp256k1.PublicKey
	compressed bool
	set        bool
}

// NewKey returns an empty, unpopulated Key.
func NewKey() *Key {
	return &Key{}
}

// MakeNew samples a uniform non-zero secret scalar and derives the
// matching public key. RNG exhaustion is a fatal condition and panics,
// matching the treatment of "this can never happen" RNG failures
// elsewhere in this package's lineage.
func (k *Key) MakeNew(compressed bool) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		panic("secp256k1: entropy source failure: " + err.Error())
	}

	k.secret = priv
	k.public = priv.PubKey()
	k.compressed = compressed
	k.set = true
}

// SetSecret interprets b as a big-endian scalar, requires 0 < s < n, and
// populates both the secret and derived public half. On malformed input
// the key is reset and false is returned.
func (k *Key) SetSecret(b [ScalarSize]byte, compressed bool) bool {
	s, err := ScalarFromBytesExact(b)
	if err != nil {
		k.reset()
		return false
	}
	defer s.Zero()

	priv := secp256k1.PrivKeyFromBytes(b[:])
	k.secret = priv
	k.public = priv.PubKey()
	k.compressed = compressed
	k.set = true
	return true
}

// GetSecret returns the secret scalar as 32 big-endian bytes, left-padded
// with zeros, plus the current compression flag. The third return value
// is false if no secret is set.
func (k *Key) GetSecret() ([ScalarSize]byte, bool, bool) {
	var out [ScalarSize]byte
	if !k.set || k.secret == nil {
		return out, false, false
	}
	copy(out[:], k.secret.Serialize())
	return out, k.compressed, true
}

// SetPublicKey decodes b (33-byte compressed or 65-byte uncompressed) and
// populates the public half, clearing any existing secret. The
// compression flag is set from the input length.
func (k *Key) SetPublicKey(b []byte) bool {
	if len(b) != CompressedPointSize && len(b) != UncompressedPointSize {
		k.reset()
		return false
	}

	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		k.reset()
		return false
	}

	k.secret = nil
	k.public = pub
	k.compressed = len(b) == CompressedPointSize
	k.set = true
	return true
}

// GetPublicKey encodes the public half using the current compression flag.
// It returns nil if the key is unset.
func (k *Key) GetPublicKey() []byte {
	if !k.set || k.public == nil {
		return nil
	}
	if k.compressed {
		return k.public.SerializeCompressed()
	}
	return k.public.SerializeUncompressed()
}

// IsValid reports whether the key holds a curve-valid public point and,
// if a secret is present, that public == secret*G.
func (k *Key) IsValid() bool {
	if !k.set || k.public == nil {
		return false
	}
	if k.secret == nil {
		return true
	}
	return k.secret.PubKey().IsEqual(k.public)
}

// Sign produces a DER-encoded ECDSA signature over the 32-byte hash using
// RFC 6979 deterministic nonces.
func (k *Key) Sign(hash [32]byte) ([]byte, error) {
	if !k.set || k.secret == nil {
		return nil, ErrInconsistentKey
	}
	sig := dcrecdsa.Sign(k.secret, hash[:])
	return sig.Serialize(), nil
}

// Verify checks a strict-DER ECDSA signature against the 32-byte hash and
// this key's public half. Non-canonical encodings are rejected.
func (k *Key) Verify(hash [32]byte, sig []byte) bool {
	if !k.set || k.public == nil {
		return false
	}
	parsed, err := dcrecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return parsed.Verify(hash[:], k.public)
}

// Zero wipes the secret scalar. Intermediate byte buffers produced from it
// (GetSecret's output, derived shared secrets) are the caller's
// responsibility to clear.
func (k *Key) Zero() {
	if k.secret != nil {
		k.secret.Zero()
	}
	k.reset()
}

func (k *Key) reset() {
	k.secret = nil
	k.public = nil
	k.compressed = false
	k.set = false
}
