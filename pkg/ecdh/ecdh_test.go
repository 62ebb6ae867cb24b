package ecdh

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/pkg/curve"
	"github.com/smallyu/go-ecc/pkg/ecc"
	"github.com/smallyu/go-ecc/pkg/ecdsa"
)

func TestSharedSecretAgreement(t *testing.T) {
	for _, c := range []*curve.Curve{curve.P256(), curve.S256()} {
		alice, err := ecdsa.GenerateKeyPair(c)
		require.NoError(t, err, c.Name())
		bob, err := ecdsa.GenerateKeyPair(c)
		require.NoError(t, err, c.Name())

		s1, err := SharedSecret(alice.Priv, bob.Pub)
		require.NoError(t, err, c.Name())
		s2, err := SharedSecret(bob.Priv, alice.Pub)
		require.NoError(t, err, c.Name())

		assert.Equal(t, s1, s2, c.Name())
		assert.Len(t, s1, sha256.Size, c.Name())
	}
}

func TestSharedSecretIsKDFOfX(t *testing.T) {
	alice, err := ecdsa.GenerateKeyPair(curve.S256())
	require.NoError(t, err)
	bob, err := ecdsa.GenerateKeyPair(curve.S256())
	require.NoError(t, err)

	s, err := SharedSecret(alice.Priv, bob.Pub)
	require.NoError(t, err)

	shared := curve.ScalarMult(alice.Priv, bob.Pub)
	assert.Equal(t, KDF(shared.X().Bytes()), s)
}

func TestSharedSecretInvalidScalar(t *testing.T) {
	kp, err := ecdsa.GenerateKeyPair(curve.P256())
	require.NoError(t, err)
	n := curve.P256().N()

	for _, d := range []*big.Int{nil, big.NewInt(0), big.NewInt(-5), n, new(big.Int).Add(n, big.NewInt(1))} {
		_, err := SharedSecret(d, kp.Pub)
		assert.ErrorIs(t, err, ecc.ErrInvalidScalar, "d=%v", d)
	}
}

func TestSharedSecretInfinityPeer(t *testing.T) {
	// A peer "public key" at infinity forces a degenerate shared point.
	_, err := SharedSecret(big.NewInt(7), curve.Infinity(curve.S256()))
	assert.ErrorIs(t, err, ecc.ErrInvalidSharedPoint)
}

func TestKDFDeterministic(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03}
	want := sha256.Sum256(in)
	assert.Equal(t, want[:], KDF(in))
}
