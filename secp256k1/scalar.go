package secp256k1

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ScalarSize is the length in bytes of a scalar's big-endian encoding.
const ScalarSize = 32

// Scalar is an integer in [0, n) where n is the secp256k1 group order.
type Scalar struct {
	val secp256k1.ModNScalar
}

// ScalarFromBytesReduce interprets b as a big-endian unsigned integer and
// reduces it modulo n. Used to turn a hash (including a 160-bit H160
// digest, left-padded) into a scalar; never fails.
func ScalarFromBytesReduce(b []byte) *Scalar {
	var padded [ScalarSize]byte
	if len(b) > ScalarSize {
		v := new(big.Int).SetBytes(b)
		v.Mod(v, Order())
		v.FillBytes(padded[:])
	} else {
		copy(padded[ScalarSize-len(b):], b)
	}

	s := &Scalar{}
	s.val.SetBytes(&padded)
	return s
}

// ScalarFromBytesExact parses exactly 32 big-endian bytes as a scalar,
// failing if the value is zero or >= n.
func ScalarFromBytesExact(b [ScalarSize]byte) (*Scalar, error) {
	s := &Scalar{}
	overflow := s.val.SetBytes(&b)
	if overflow != 0 {
		return nil, ErrOutOfRange
	}
	if s.val.IsZero() {
		return nil, ErrOutOfRange
	}
	return s, nil
}

// Bytes encodes the scalar as 32 bytes, big-endian, left-padded with zeros.
func (s *Scalar) Bytes() [ScalarSize]byte {
	return s.val.Bytes()
}

// Add returns s + other (mod n) as a new Scalar.
func (s *Scalar) Add(other *Scalar) *Scalar {
	out := &Scalar{}
	out.val.Set(&s.val)
	out.val.Add(&other.val)
	return out
}

// Mul returns s * other (mod n) as a new Scalar.
func (s *Scalar) Mul(other *Scalar) *Scalar {
	out := &Scalar{}
	out.val.Set(&s.val)
	out.val.Mul(&other.val)
	return out
}

// Negate returns -s (mod n) as a new Scalar.
func (s *Scalar) Negate() *Scalar {
	out := &Scalar{}
	out.val.Set(&s.val)
	out.val.Negate()
	return out
}

// Invert returns the modular inverse of s (mod n). The result is
// meaningless if s is zero; callers must check IsZero first.
func (s *Scalar) Invert() *Scalar {
	out := &Scalar{}
	out.val.Set(&s.val)
	out.val.InverseNonConst()
	return out
}

// IsZero reports whether the scalar is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.val.IsZero()
}

// Equal reports whether two scalars have the same value.
func (s *Scalar) Equal(other *Scalar) bool {
	return s.val.Equals(&other.val)
}

// Zero overwrites the scalar's internal representation. Callers holding a
// Scalar that backs private key material should call this once the value
// is no longer needed.
func (s *Scalar) Zero() {
	s.val.Zero()
}

// inner exposes the underlying library scalar to other files in this
// package without widening the public API.
func (s *Scalar) inner() *secp256k1.ModNScalar {
	return &s.val
}
