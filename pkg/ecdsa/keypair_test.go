package ecdsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/pkg/curve"
)

func TestGenerateKeyPair(t *testing.T) {
	for _, c := range []*curve.Curve{curve.P256(), curve.S256()} {
		kp, err := GenerateKeyPair(c)
		require.NoError(t, err, c.Name())

		assert.Same(t, c, kp.Curve)
		assert.Equal(t, 1, kp.Priv.Sign(), "%s: priv >= 1", c.Name())
		assert.Negative(t, kp.Priv.Cmp(c.N()), "%s: priv < n", c.Name())

		// Public point is priv*G and lies on the curve.
		assert.True(t, kp.Pub.Equal(curve.ScalarMult(kp.Priv, c.Generator())), c.Name())
		_, err = curve.NewPoint(c, kp.Pub.X(), kp.Pub.Y())
		assert.NoError(t, err, c.Name())
	}
}

func TestGenerateKeyPairDistinct(t *testing.T) {
	a, err := GenerateKeyPair(curve.S256())
	require.NoError(t, err)
	b, err := GenerateKeyPair(curve.S256())
	require.NoError(t, err)

	assert.NotEqual(t, a.Priv, b.Priv)
}
