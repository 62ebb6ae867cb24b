// Package field implements arithmetic over a prime field GF(p) using
// math/big. All operations normalize their result into [0, p); inputs may be
// negative or >= p and are reduced before use.
package field

import (
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

var two = big.NewInt(2)

// Field represents a prime field GF(p). The modulus is caller-supplied and
// not validated for primality; Inv relies on it being prime.
type Field struct {
	p *big.Int
}

// New returns the field GF(p). The modulus is copied so later mutation of the
// argument cannot affect the field.
func New(p *big.Int) Field {
	return Field{p: new(big.Int).Set(p)}
}

// P returns a copy of the field modulus.
func (f Field) P() *big.Int {
	return new(big.Int).Set(f.p)
}

// Normalize reduces x into [0, p).
func (f Field) Normalize(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, f.p)
}

// Add returns (a + b) mod p.
func (f Field) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, f.p)
}

// Sub returns (a - b) mod p.
func (f Field) Sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, f.p)
}

// Mul returns (a * b) mod p.
func (f Field) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, f.p)
}

// Neg returns (-a) mod p.
func (f Field) Neg(a *big.Int) *big.Int {
	r := new(big.Int).Neg(a)
	return r.Mod(r, f.p)
}

// Pow returns a^e mod p via fast modular exponentiation.
func (f Field) Pow(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, f.p)
}

// Inv returns the multiplicative inverse of a mod p using Fermat's little
// theorem (a^(p-2) mod p), valid because p is prime. It returns
// ecc.ErrDivisionByZero when a is congruent to 0 mod p.
func (f Field) Inv(a *big.Int) (*big.Int, error) {
	if new(big.Int).Mod(a, f.p).Sign() == 0 {
		return nil, ecc.ErrDivisionByZero
	}
	e := new(big.Int).Sub(f.p, two)
	return new(big.Int).Exp(a, e, f.p), nil
}

// Div returns a * b^-1 mod p. It fails with ecc.ErrDivisionByZero when b is
// congruent to 0 mod p.
func (f Field) Div(a, b *big.Int) (*big.Int, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return nil, err
	}
	return f.Mul(a, inv), nil
}
