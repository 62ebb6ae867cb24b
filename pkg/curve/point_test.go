package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// tinyCurve returns y^2 = x^3 + 1 over GF(7) with base point (1, 3) of
// order 6. Small enough to exercise every branch of the group law by hand;
// it contains the order-2 points (3,0), (5,0) and (6,0) needed for the
// vertical-tangent case.
func tinyCurve() *Curve {
	return New(&Params{
		Name: "tiny7",
		P:    big.NewInt(7),
		A:    big.NewInt(0),
		B:    big.NewInt(1),
		Gx:   big.NewInt(1),
		Gy:   big.NewInt(3),
		N:    big.NewInt(6),
		H:    2,
	})
}

func TestNewPointValidatesMembership(t *testing.T) {
	c := tinyCurve()

	p, err := NewPoint(c, big.NewInt(1), big.NewInt(3))
	require.NoError(t, err)
	assert.False(t, p.IsInfinity())

	_, err = NewPoint(c, big.NewInt(1), big.NewInt(2))
	assert.ErrorIs(t, err, ecc.ErrPointNotOnCurve)

	// Coordinates are normalized mod p before validation.
	p, err = NewPoint(c, big.NewInt(8), big.NewInt(-4)) // (1, 3) mod 7
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), p.X())
	assert.Equal(t, big.NewInt(3), p.Y())
}

func TestNewPointRejectsOffCurveNamed(t *testing.T) {
	g := P256().Generator()

	bad := new(big.Int).Add(g.Y(), big.NewInt(1))
	_, err := NewPoint(P256(), g.X(), bad)
	assert.ErrorIs(t, err, ecc.ErrPointNotOnCurve)
}

func TestAddIdentity(t *testing.T) {
	for _, c := range []*Curve{tinyCurve(), P256(), S256()} {
		g := c.Generator()
		o := Infinity(c)

		sum, err := g.Add(o)
		require.NoError(t, err)
		assert.True(t, sum.Equal(g), "%s: P + O", c.Name())

		sum, err = o.Add(g)
		require.NoError(t, err)
		assert.True(t, sum.Equal(g), "%s: O + P", c.Name())

		sum, err = o.Add(o)
		require.NoError(t, err)
		assert.True(t, sum.IsInfinity(), "%s: O + O", c.Name())
	}
}

func TestAddInverse(t *testing.T) {
	for _, c := range []*Curve{tinyCurve(), P256(), S256()} {
		g := c.Generator()
		sum, err := g.Add(g.Neg())
		require.NoError(t, err)
		assert.True(t, sum.IsInfinity(), "%s: P + (-P)", c.Name())
	}
}

func TestDoubleVerticalTangent(t *testing.T) {
	c := tinyCurve()
	p, err := NewPoint(c, big.NewInt(3), big.NewInt(0))
	require.NoError(t, err)

	// Doubling a point with y = 0 hits the vertical tangent.
	assert.True(t, p.Double().IsInfinity())

	sum, err := p.Add(p)
	require.NoError(t, err)
	assert.True(t, sum.IsInfinity())
}

func TestDoublingConsistency(t *testing.T) {
	for _, c := range []*Curve{tinyCurve(), P256(), S256()} {
		g := c.Generator()
		sum, err := g.Add(g)
		require.NoError(t, err)
		assert.True(t, sum.Equal(g.Double()), "%s: P + P == 2P", c.Name())
		assert.True(t, sum.Equal(ScalarMult(big.NewInt(2), g)), "%s: 2*P", c.Name())
	}
}

func TestAddKnownValues(t *testing.T) {
	// 2G on secp256k1, from the standard test vectors.
	g := S256().Generator()
	want, err := NewPoint(S256(),
		hexInt("c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"),
		hexInt("1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a"))
	require.NoError(t, err)
	assert.True(t, g.Double().Equal(want))
}

func TestAddCrossCurveFails(t *testing.T) {
	_, err := P256().Generator().Add(S256().Generator())
	assert.ErrorIs(t, err, ecc.ErrCrossCurve)

	// Equal parameters are not enough: identity is per instance.
	other := New(&Params{
		Name: "tiny7",
		P:    big.NewInt(7),
		A:    big.NewInt(0),
		B:    big.NewInt(1),
		Gx:   big.NewInt(1),
		Gy:   big.NewInt(3),
		N:    big.NewInt(6),
		H:    2,
	})
	_, err = tinyCurve().Generator().Add(other.Generator())
	assert.ErrorIs(t, err, ecc.ErrCrossCurve)
}

func TestNegation(t *testing.T) {
	c := tinyCurve()

	o := Infinity(c)
	assert.True(t, o.Neg().IsInfinity())

	p, err := NewPoint(c, big.NewInt(1), big.NewInt(3))
	require.NoError(t, err)
	np := p.Neg()
	assert.Equal(t, big.NewInt(1), np.X())
	assert.Equal(t, big.NewInt(4), np.Y())

	// -(3, 0) = (3, 0)
	z, err := NewPoint(c, big.NewInt(3), big.NewInt(0))
	require.NoError(t, err)
	assert.True(t, z.Neg().Equal(z))
}

func TestPointsAreImmutable(t *testing.T) {
	g := S256().Generator()
	x1 := g.X()

	// Accessors hand out copies; mutating them must not corrupt the point.
	g.X().SetInt64(0)
	g.Y().SetInt64(0)
	assert.Equal(t, x1, g.X())

	// Operations return new points and leave operands alone.
	g.Double()
	g.Neg()
	assert.Equal(t, x1, g.X())
}
