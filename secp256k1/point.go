package secp256k1

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// CompressedPointSize is the length in bytes of a compressed point.
const CompressedPointSize = 33

// UncompressedPointSize is the length in bytes of an uncompressed point.
const UncompressedPointSize = 65

// Point is an element of the secp256k1 group, including the point at
// infinity O. Internally held in Jacobian coordinates so that Add and Mul
// can produce O without special-casing every caller.
type Point struct {
	j secp256k1.JacobianPoint
}

// GeneratorPoint returns the standard generator G.
func GeneratorPoint() *Point {
	p := &Point{}
	var one secp256k1.ModNScalar
	one.SetInt(1)
	secp256k1.ScalarBaseMultNonConst(&one, &p.j)
	return p
}

// Order returns n, the group order of secp256k1.
func Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().N)
}

// FieldPrime returns p, the field prime secp256k1 is defined over.
func FieldPrime() *big.Int {
	return new(big.Int).Set(secp256k1.S256().P)
}

// DecodePoint decodes a 33-byte compressed or 65-byte uncompressed point.
// Any other length, or coordinates not on the curve, is rejected.
func DecodePoint(b []byte) (*Point, error) {
	if len(b) != CompressedPointSize && len(b) != UncompressedPointSize {
		return nil, ErrBadEncoding
	}

	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, ErrNotOnCurve
	}

	p := &Point{}
	pub.AsJacobian(&p.j)
	return p, nil
}

// EncodeCompressed encodes the point as 33 bytes: a parity prefix
// (0x02 even-y, 0x03 odd-y) followed by the big-endian x coordinate. It is
// an error to encode the point at infinity, which has no such encoding.
func (p *Point) EncodeCompressed() ([CompressedPointSize]byte, error) {
	var out [CompressedPointSize]byte
	if p.IsInfinity() {
		return out, ErrInfinityResult
	}

	affine := p.j
	affine.ToAffine()
	pub := secp256k1.NewPublicKey(&affine.X, &affine.Y)
	copy(out[:], pub.SerializeCompressed())
	return out, nil
}

// IsInfinity reports whether p is the identity element O.
func (p *Point) IsInfinity() bool {
	return p.j.Z.IsZero()
}

// Equal reports whether p and other denote the same group element,
// including the case where both are the point at infinity.
func (p *Point) Equal(other *Point) bool {
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() == other.IsInfinity()
	}

	a, b := p.j, other.j
	a.ToAffine()
	b.ToAffine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

// Add returns p + other.
func (p *Point) Add(other *Point) *Point {
	out := &Point{}
	secp256k1.AddNonConst(&p.j, &other.j, &out.j)
	return out
}

// Mul returns k*p.
func (p *Point) Mul(k *Scalar) *Point {
	out := &Point{}
	secp256k1.ScalarMultNonConst(k.inner(), &p.j, &out.j)
	return out
}

// MulGenPlusPoint computes k*G + Q as a single primitive, matching the
// form the stealth derivation needs and mirroring OpenSSL's
// EC_POINT_mul(ctx, r, k, Q, m, ctx) combined multiply-and-add.
func MulGenPlusPoint(k *Scalar, q *Point) *Point {
	var kG secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k.inner(), &kG)

	out := &Point{}
	secp256k1.AddNonConst(&kG, &q.j, &out.j)
	return out
}
