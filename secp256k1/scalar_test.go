package secp256k1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fixedBytes(b byte) [ScalarSize]byte {
	var out [ScalarSize]byte
	for i := range out {
		out[i] = b
	}
	return out
}

func TestScalarFromBytesExact(t *testing.T) {
	t.Run("rejects zero", func(t *testing.T) {
		_, err := ScalarFromBytesExact([ScalarSize]byte{})
		require.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("rejects value >= n", func(t *testing.T) {
		var b [ScalarSize]byte
		for i := range b {
			b[i] = 0xff
		}
		_, err := ScalarFromBytesExact(b)
		require.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("accepts in-range value and round-trips", func(t *testing.T) {
		in := fixedBytes(0x01)
		s, err := ScalarFromBytesExact(in)
		require.NoError(t, err)
		require.Equal(t, in, s.Bytes())
	})
}

func TestScalarFromBytesReduce(t *testing.T) {
	t.Run("short input is left-padded, not reduced", func(t *testing.T) {
		h160 := make([]byte, 20)
		for i := range h160 {
			h160[i] = 0xAB
		}
		s := ScalarFromBytesReduce(h160)
		got := s.Bytes()
		for i := 0; i < 12; i++ {
			require.Zero(t, got[i])
		}
		for i := 12; i < ScalarSize; i++ {
			require.Equal(t, byte(0xAB), got[i])
		}
	})

	t.Run("over-long input reduces mod n", func(t *testing.T) {
		over := make([]byte, 40)
		for i := range over {
			over[i] = 0xff
		}
		s := ScalarFromBytesReduce(over)
		require.False(t, s.IsZero())
	})
}

func TestScalarArithmetic(t *testing.T) {
	a, err := ScalarFromBytesExact(fixedBytes(0x01))
	require.NoError(t, err)
	b, err := ScalarFromBytesExact(fixedBytes(0x02))
	require.NoError(t, err)

	sum := a.Add(b)
	require.False(t, sum.IsZero())
	require.True(t, sum.Equal(a.Add(b)))

	neg := a.Negate()
	require.True(t, a.Add(neg).IsZero())

	inv := a.Invert()
	require.True(t, a.Mul(inv).Equal(mustOne(t)))
}

func mustOne(t *testing.T) *Scalar {
	t.Helper()
	one, err := ScalarFromBytesExact(lastByte(1))
	require.NoError(t, err)
	return one
}

func lastByte(b byte) [ScalarSize]byte {
	var out [ScalarSize]byte
	out[ScalarSize-1] = b
	return out
}
