package vectors

import (
	"os"
	"path/filepath"
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/punnet-crypto/secp256k1"
	"github.com/blockberries/punnet-crypto/stealth"
)

func TestGenerateAndVerifyVectors(t *testing.T) {
	vectorFile, err := GenerateTestVectors(log.NewNopLogger())
	require.NoError(t, err)
	require.NotEmpty(t, vectorFile.ScalarVectors)
	require.NotEmpty(t, vectorFile.CompactVectors)
	require.NotEmpty(t, vectorFile.StealthVectors)

	for _, v := range vectorFile.ScalarVectors {
		t.Run(v.Name, func(t *testing.T) { verifyScalarVector(t, v) })
	}
	for _, v := range vectorFile.CompactVectors {
		t.Run(v.Name, func(t *testing.T) { verifyCompactVector(t, v) })
	}
	for _, v := range vectorFile.StealthVectors {
		t.Run(v.Name, func(t *testing.T) { verifyStealthVector(t, v) })
	}
}

func verifyScalarVector(t *testing.T, v ScalarVector) {
	t.Helper()

	switch v.Kind {
	case "scalar":
		var b [secp256k1.ScalarSize]byte
		copy(b[:], v.InputHex)
		_, err := secp256k1.ScalarFromBytesExact(b)
		if v.ExpectError == "" {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err)
		}
	case "point":
		_, err := secp256k1.DecodePoint(v.InputHex)
		if v.ExpectError == "" {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err)
		}
	case "point_from_secret":
		var b [secp256k1.ScalarSize]byte
		copy(b[:], v.InputHex)
		k := secp256k1.NewKey()
		require.True(t, k.SetSecret(b, true))
		pub := k.GetPublicKey()
		require.Len(t, pub, secp256k1.CompressedPointSize)
		require.True(t, pub[0] == 0x02 || pub[0] == 0x03)
	default:
		t.Fatalf("unknown scalar vector kind %q", v.Kind)
	}
}

func verifyCompactVector(t *testing.T, v CompactVector) {
	t.Helper()

	var secret, hash [32]byte
	copy(secret[:], v.SecretHex)
	copy(hash[:], v.HashHex)

	k := secp256k1.NewKey()
	require.True(t, k.SetSecret(secret, v.Compressed))

	sig, err := k.SignCompact(hash)
	require.NoError(t, err)

	switch v.ExpectHeaderRange {
	case "27-30":
		assert.GreaterOrEqual(t, sig[0], byte(27))
		assert.LessOrEqual(t, sig[0], byte(30))
	case "31-34":
		assert.GreaterOrEqual(t, sig[0], byte(31))
		assert.LessOrEqual(t, sig[0], byte(34))
	default:
		t.Fatalf("unknown header range %q", v.ExpectHeaderRange)
	}

	recovered, err := secp256k1.RecoverCompact(hash, sig)
	require.NoError(t, err)
	assert.Equal(t, k.GetPublicKey(), recovered.GetPublicKey())
	assert.True(t, k.VerifyCompact(hash, sig))
}

func verifyStealthVector(t *testing.T, v StealthVector) {
	t.Helper()

	recipient := stealthKeyFromHex(t, v.RecipientLHex, v.RecipientHHex)
	pub, err := recipient.PubKey()
	require.NoError(t, err)

	var rBytes [secp256k1.ScalarSize]byte
	copy(rBytes[:], v.SenderRHex)
	r, err := secp256k1.ScalarFromBytesExact(rBytes)
	require.NoError(t, err)

	variant, err := pub.DeriveWithScalar(r)
	require.NoError(t, err)

	checker := stealthKeyFromHex(t, v.CheckerLHex, v.CheckerHHex)
	p, ok := checker.CheckVariant(variant.R, variant.P)

	assert.Equal(t, v.ExpectRecognized, ok)
	if v.ExpectRecognized {
		require.NotNil(t, p)
		gotP := p.GetPublicKey()
		wantP, err := variant.P.EncodeCompressed()
		require.NoError(t, err)
		assert.Equal(t, wantP[:], gotP)
	}
}

// stealthKeyFromHex builds a stealth.Key from raw secrets via the public
// secp256k1.Key and stealth.NewKeyFromHalves APIs, since stealth.Key's
// (l, h) fields are unexported outside the package.
func stealthKeyFromHex(t *testing.T, lHex, hHex []byte) *stealth.Key {
	t.Helper()

	var lBytes, hBytes [secp256k1.ScalarSize]byte
	copy(lBytes[:], lHex)
	copy(hBytes[:], hHex)

	l := secp256k1.NewKey()
	require.True(t, l.SetSecret(lBytes, true))
	h := secp256k1.NewKey()
	require.True(t, h.SetSecret(hBytes, true))

	key, err := stealth.NewKeyFromHalves(l, h)
	require.NoError(t, err)
	return key
}

func TestVectorDeterminism(t *testing.T) {
	v1, err := GenerateTestVectors(log.NewNopLogger())
	require.NoError(t, err)
	v2, err := GenerateTestVectors(log.NewNopLogger())
	require.NoError(t, err)

	require.Equal(t, len(v1.ScalarVectors), len(v2.ScalarVectors))
	require.Equal(t, len(v1.CompactVectors), len(v2.CompactVectors))
	require.Equal(t, len(v1.StealthVectors), len(v2.StealthVectors))

	for i := range v1.CompactVectors {
		assert.Equal(t, v1.CompactVectors[i].SecretHex, v2.CompactVectors[i].SecretHex)
	}
}

func TestWriteAndLoadVectorsFile(t *testing.T) {
	if os.Getenv("GENERATE_VECTORS") != "1" {
		t.Skip("set GENERATE_VECTORS=1 to exercise the file round trip")
	}

	v, err := GenerateTestVectors(log.NewNopLogger())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "vectors.json")
	require.NoError(t, SaveToFile(v, path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, v.Version, loaded.Version)
	assert.Equal(t, len(v.StealthVectors), len(loaded.StealthVectors))
}
