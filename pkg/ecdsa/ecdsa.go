// Package ecdsa implements ECDSA signing and verification over the curves of
// pkg/curve, with RFC 6979 deterministic nonces and low-S normalization.
// SHA-256 is the message digest.
package ecdsa

import (
	"crypto/sha256"
	"math/big"

	"github.com/smallyu/go-ecc/internal/encoding"
	"github.com/smallyu/go-ecc/pkg/curve"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Signature is an ECDSA signature (r, s) with both values in [1, n) and s in
// the lower half of the range (low-S form).
type Signature struct {
	R *big.Int
	S *big.Int
}

// Sign produces a deterministic ECDSA signature over SHA-256(msg) with the
// private scalar priv on c. The same (priv, msg) pair always yields the same
// signature. It fails with ecc.ErrInvalidScalar when priv is outside [1, n).
func Sign(priv *big.Int, msg []byte, c *curve.Curve) (*Signature, error) {
	n := c.N()
	if priv == nil || priv.Sign() < 1 || priv.Cmp(n) >= 0 {
		return nil, ecc.ErrInvalidScalar
	}

	h1 := sha256.Sum256(msg)
	e := hashToInt(h1[:], n)
	g := c.Generator()

	// A candidate nonce is rejected only when it leads to r = 0 or s = 0,
	// which is astronomically unlikely; the retry re-derives k with one more
	// iteration of the HMAC state.
	for iteration := uint32(0); ; iteration++ {
		k := nonceRFC6979(priv, h1[:], n, iteration)

		r := new(big.Int).Mod(curve.ScalarMult(k, g).X(), n)
		if r.Sign() == 0 {
			continue
		}

		// s = k^-1 (e + r*d) mod n
		s := new(big.Int).Mul(r, priv)
		s.Add(s, e)
		s.Mul(s, new(big.Int).ModInverse(k, n))
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		// Low-S: both s and n-s satisfy the verification equation, so pick
		// the canonical lower half to rule out malleability.
		if s.Cmp(new(big.Int).Rsh(n, 1)) > 0 {
			s.Sub(n, s)
		}
		return &Signature{R: r, S: s}, nil
	}
}

// Verify reports whether sig is a valid signature over SHA-256(msg) for the
// public point pub. It is a total predicate: malformed inputs (r or s out of
// range, nil values, point at infinity) yield false, never an error.
func Verify(pub *curve.Point, msg []byte, sig *Signature) bool {
	if pub == nil || pub.IsInfinity() || sig == nil || sig.R == nil || sig.S == nil {
		return false
	}

	c := pub.Curve()
	n := c.N()
	r, s := sig.R, sig.S
	if r.Sign() < 1 || r.Cmp(n) >= 0 || s.Sign() < 1 || s.Cmp(n) >= 0 {
		return false
	}

	h1 := sha256.Sum256(msg)
	e := hashToInt(h1[:], n)

	w := new(big.Int).ModInverse(s, n)
	if w == nil {
		// Only possible when the curve order is not prime.
		return false
	}
	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, n)

	p, err := curve.ScalarMult(u1, c.Generator()).Add(curve.ScalarMult(u2, pub))
	if err != nil || p.IsInfinity() {
		return false
	}
	return new(big.Int).Mod(p.X(), n).Cmp(r) == 0
}

// hashToInt interprets the digest as an integer per RFC 6979, truncated to
// the bit length of n and reduced mod n.
func hashToInt(h []byte, n *big.Int) *big.Int {
	e := encoding.Bits2Int(h, n.BitLen())
	return e.Mod(e, n)
}
