package stealth

import (
	"github.com/blockberries/punnet-crypto/secp256k1"
)

// CheckVariant runs the recipient-side recognition and unlock procedure of
// spec.md §4.4 against a candidate variant (R, P). It returns the variant's
// one-time private key and true if k owns it, or (nil, false) if R or P is
// malformed, or the variant was derived for a different recipient.
//
// The recomputed P' gets no infinity check of its own: P is rejected
// above if it is the point at infinity, so an infinite P' can never equal
// it and the mismatch comparison alone already fails in that case.
func (k *Key) CheckVariant(R, P *secp256k1.Point) (*secp256k1.Key, bool) {
	if k == nil || k.l == nil || k.h == nil {
		return nil, false
	}
	if R == nil || P == nil || R.IsInfinity() || P.IsInfinity() {
		return nil, false
	}

	lSecret, _, ok := k.l.GetSecret()
	if !ok {
		return nil, false
	}
	l, err := secp256k1.ScalarFromBytesExact(lSecret)
	if err != nil {
		return nil, false
	}

	hSecret, _, ok := k.h.GetSecret()
	if !ok {
		return nil, false
	}
	h, err := secp256k1.ScalarFromBytesExact(hSecret)
	if err != nil {
		return nil, false
	}

	Hpub, err := decodeCompressedFromKey(k.h)
	if err != nil {
		return nil, false
	}

	T := R.Mul(l)
	encT, err := T.EncodeCompressed()
	if err != nil {
		return nil, false
	}

	digest := H160(encT[:])
	kScalar := secp256k1.ScalarFromBytesReduce(digest[:])

	Pprime := secp256k1.MulGenPlusPoint(kScalar, Hpub)
	if !Pprime.Equal(P) {
		return nil, false
	}

	p := kScalar.Add(h)
	pBytes := p.Bytes()

	out := secp256k1.NewKey()
	if !out.SetSecret(pBytes, true) {
		return nil, false
	}
	return out, true
}
