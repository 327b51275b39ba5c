package secp256k1

import (
	stdasn1 "encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// oidSecp256k1 is the named curve OID for secp256k1, SEC 2 §A.2.1.
var oidSecp256k1 = stdasn1.ObjectIdentifier{1, 3, 132, 0, 10}

// ecPrivateKeyVersion is the fixed version field of an SEC1 ECPrivateKey
// (RFC 5915 §3); this module only ever produces version 1.
const ecPrivateKeyVersion = 1

// SetPrivateKeyDER parses an SEC1 EC private key (RFC 5915) ASN.1
// encoding for interop with legacy key stores. The curve OID, if present,
// must be secp256k1. Consistency (public == secret*G) is re-validated
// before the key is populated; on any failure the key is left reset.
//
//	ECPrivateKey ::= SEQUENCE {
//	    version        INTEGER { ecPrivateKeyVersion1(1) } (ecPrivateKeyVersion1),
//	    privateKey     OCTET STRING,
//	    parameters [0] ECParameters {{ NamedCurve }} OPTIONAL,
//	    publicKey  [1] BIT STRING OPTIONAL
//	}
func (k *Key) SetPrivateKeyDER(der []byte) bool {
	var (
		inner     cryptobyte.String
		version   int64
		privBytes cryptobyte.String
		hasParams bool
		paramsOID stdasn1.ObjectIdentifier
	)

	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) || !input.Empty() {
		k.reset()
		return false
	}
	if !inner.ReadASN1Integer(&version) || version != ecPrivateKeyVersion {
		k.reset()
		return false
	}
	if !inner.ReadASN1(&privBytes, asn1.OCTET_STRING) {
		k.reset()
		return false
	}

	if inner.PeekASN1Tag(asn1.Tag(0).Constructed().ContextSpecific()) {
		var params cryptobyte.String
		if !inner.ReadASN1(&params, asn1.Tag(0).Constructed().ContextSpecific()) ||
			!params.ReadASN1ObjectIdentifier(&paramsOID) {
			k.reset()
			return false
		}
		hasParams = true
	}
	if hasParams && !paramsOID.Equal(oidSecp256k1) {
		k.reset()
		return false
	}

	compressed := k.compressed
	if inner.PeekASN1Tag(asn1.Tag(1).Constructed().ContextSpecific()) {
		var (
			pub     cryptobyte.String
			pubBits stdasn1.BitString
		)
		if !inner.ReadASN1(&pub, asn1.Tag(1).Constructed().ContextSpecific()) ||
			!pub.ReadASN1BitString(&pubBits) {
			k.reset()
			return false
		}
		compressed = len(pubBits.RightAlign()) == CompressedPointSize
	}

	if !inner.Empty() {
		k.reset()
		return false
	}

	var secretBytes [ScalarSize]byte
	if len(privBytes) > ScalarSize {
		k.reset()
		return false
	}
	copy(secretBytes[ScalarSize-len(privBytes):], privBytes)

	if !k.SetSecret(secretBytes, compressed) {
		return false
	}
	if !k.IsValid() {
		k.reset()
		return false
	}
	return true
}

// GetPrivateKeyDER emits the SEC1 ECPrivateKey DER encoding of the
// current secret, honoring the compression flag in the embedded public
// key field. Returns nil if no secret is set.
func (k *Key) GetPrivateKeyDER() []byte {
	if !k.set || k.secret == nil {
		return nil
	}

	secretBytes := k.secret.Serialize()
	pubBytes := k.GetPublicKey()

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(ecPrivateKeyVersion)
		b.AddASN1OctetString(secretBytes)
		b.AddASN1(asn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidSecp256k1)
		})
		b.AddASN1(asn1.Tag(1).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddASN1BitString(pubBytes)
		})
	})

	return b.BytesOrPanic()
}
