package stealth

import (
	"crypto/rand"
	"errors"

	"github.com/blockberries/punnet-crypto/secp256k1"
)

// Variant is a one-time stealth payment destination: the (R, P) pair of
// spec.md §3, without the recipient-only private scalar p (that is
// returned separately by Key.CheckVariant once recognized).
type Variant struct {
	R *secp256k1.Point
	P *secp256k1.Point
}

// Derive runs the sender-side derivation of spec.md §4.4 against a fresh,
// CSPRNG-sampled ephemeral scalar r. It returns the variant (R, P) and, for
// callers that need to audit or replay a derivation in tests, the scalar r
// that produced it.
//
// Per §4.5, producing the point at infinity is recoverable: callers should
// retry with a fresh r, which this function does internally for up to a
// small number of attempts before giving up.
func Derive(pub *PubKey) (*Variant, *secp256k1.Scalar, error) {
	const maxAttempts = 8
	for attempt := 0; attempt < maxAttempts; attempt++ {
		r, err := randomScalar()
		if err != nil {
			return nil, nil, err
		}

		v, err := pub.DeriveWithScalar(r)
		if err == nil {
			return v, r, nil
		}
		if !errors.Is(err, secp256k1.ErrInfinityResult) {
			return nil, nil, err
		}
	}
	return nil, nil, secp256k1.ErrInfinityResult
}

// DeriveWithScalar runs the sender-side derivation of spec.md §4.4 against
// a caller-chosen ephemeral scalar r. Exposed separately from Derive so
// that tests (and the vector generator) can reproduce a derivation
// deterministically.
func (pub *PubKey) DeriveWithScalar(r *secp256k1.Scalar) (*Variant, error) {
	if pub == nil || pub.L == nil || pub.H == nil {
		return nil, ErrNullKey
	}

	R := secp256k1.GeneratorPoint().Mul(r)

	T := pub.L.Mul(r)
	encT, err := T.EncodeCompressed()
	if err != nil {
		return nil, secp256k1.ErrInfinityResult
	}

	h := H160(encT[:])
	k := secp256k1.ScalarFromBytesReduce(h[:])

	P := secp256k1.MulGenPlusPoint(k, pub.H)
	if P.IsInfinity() {
		return nil, secp256k1.ErrInfinityResult
	}

	return &Variant{R: R, P: P}, nil
}

// randomScalar samples a uniform scalar in [1, n) from the process CSPRNG,
// retrying on the (astronomically unlikely) zero/out-of-range draw.
func randomScalar() (*secp256k1.Scalar, error) {
	for {
		var b [secp256k1.ScalarSize]byte
		if _, err := rand.Read(b[:]); err != nil {
			return nil, err
		}
		s, err := secp256k1.ScalarFromBytesExact(b)
		if err == nil {
			return s, nil
		}
	}
}
