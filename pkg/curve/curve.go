// Package curve implements the short Weierstrass group law
// y^2 = x^3 + ax + b over a prime field, with affine points, double-and-add
// scalar multiplication and a windowed-NAF variant.
//
// Everything here is variable-time. The package is a reference
// implementation and must not be used where secret scalars need
// side-channel protection.
package curve

import (
	"math/big"

	"github.com/smallyu/go-ecc/pkg/field"
)

// Params holds the parameters of a short Weierstrass curve
// y^2 = x^3 + ax + b (mod P) with base point (Gx, Gy) of prime order N and
// cofactor H.
type Params struct {
	Name   string
	P      *big.Int
	A, B   *big.Int
	Gx, Gy *big.Int
	N      *big.Int
	H      int
}

// Curve is an immutable curve descriptor. Two Curve values denote the same
// curve only when they are the same instance: group operations across
// distinct instances fail even if the parameters are equal.
type Curve struct {
	name   string
	a, b   *big.Int
	gx, gy *big.Int
	n      *big.Int
	h      int
	f      field.Field
}

// New constructs a curve from params. The parameter integers are copied, so
// the caller may reuse or mutate them afterwards. Parameters are not
// validated beyond what the group law itself requires; in particular P is
// not checked for primality and (Gx, Gy) is not checked for membership
// until Generator is called.
func New(params *Params) *Curve {
	return &Curve{
		name: params.Name,
		a:    new(big.Int).Set(params.A),
		b:    new(big.Int).Set(params.B),
		gx:   new(big.Int).Set(params.Gx),
		gy:   new(big.Int).Set(params.Gy),
		n:    new(big.Int).Set(params.N),
		h:    params.H,
		f:    field.New(params.P),
	}
}

// Name returns the canonical name of the curve.
func (c *Curve) Name() string { return c.name }

// P returns a copy of the field prime.
func (c *Curve) P() *big.Int { return c.f.P() }

// A returns a copy of the linear coefficient of the curve equation.
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns a copy of the constant of the curve equation.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// N returns a copy of the order of the base point.
func (c *Curve) N() *big.Int { return new(big.Int).Set(c.n) }

// H returns the cofactor.
func (c *Curve) H() int { return c.h }

// Field returns the prime field GF(P) underlying the curve.
func (c *Curve) Field() field.Field { return c.f }

// Generator returns the base point (Gx, Gy).
func (c *Curve) Generator() *Point {
	g, err := NewPoint(c, c.gx, c.gy)
	if err != nil {
		// Only reachable when New was given a base point off the curve.
		panic("curve: generator is not on the curve: " + c.name)
	}
	return g
}

// polynomial evaluates x^3 + ax + b mod P.
func (c *Curve) polynomial(x *big.Int) *big.Int {
	f := c.f
	x3 := f.Mul(f.Mul(x, x), x)
	return f.Add(f.Add(x3, f.Mul(c.a, x)), c.b)
}
