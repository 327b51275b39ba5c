package secp256k1_test

import (
	"fmt"

	"github.com/blockberries/punnet-crypto/secp256k1"
)

// ExampleKey_Sign demonstrates generating a key, signing a message hash,
// and verifying the result.
func ExampleKey_Sign() {
	k := secp256k1.NewKey()
	k.MakeNew(true)

	var hash [32]byte
	copy(hash[:], []byte("a 32 byte message digest........"))

	sig, err := k.Sign(hash)
	if err != nil {
		fmt.Println("sign failed:", err)
		return
	}

	fmt.Println(k.Verify(hash, sig))
	// Output: true
}

// ExampleKey_SignCompact demonstrates signing with SignCompact and
// recovering the signer's public key from the signature alone, without
// the verifier ever holding it beforehand.
func ExampleKey_SignCompact() {
	k := secp256k1.NewKey()
	k.MakeNew(true)

	var hash [32]byte
	copy(hash[:], []byte("a 32 byte message digest........"))

	sig, err := k.SignCompact(hash)
	if err != nil {
		fmt.Println("sign failed:", err)
		return
	}

	recovered, err := secp256k1.RecoverCompact(hash, sig)
	if err != nil {
		fmt.Println("recover failed:", err)
		return
	}

	a := k.GetPublicKey()
	b := recovered.GetPublicKey()
	match := len(a) == len(b)
	if match {
		for i := range a {
			if a[i] != b[i] {
				match = false
				break
			}
		}
	}
	fmt.Println(match)
	// Output: true
}

// ExampleKey_GetPrivateKeyDER demonstrates round-tripping a key through
// the SEC1 ECPrivateKey DER encoding.
func ExampleKey_GetPrivateKeyDER() {
	k := secp256k1.NewKey()
	k.MakeNew(false)

	der := k.GetPrivateKeyDER()

	restored := secp256k1.NewKey()
	if !restored.SetPrivateKeyDER(der) {
		fmt.Println("restore failed")
		return
	}

	origSecret, _, _ := k.GetSecret()
	gotSecret, gotCompressed, _ := restored.GetSecret()

	fmt.Println(origSecret == gotSecret)
	fmt.Println(gotCompressed)
	// Output:
	// true
	// false
}
