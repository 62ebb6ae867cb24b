// Package ecdh implements elliptic-curve Diffie-Hellman key agreement over
// the curves of pkg/curve. Only the x-coordinate of the shared point enters
// the derived secret; both sides converge on the same x because
// d1*(d2*G) == d2*(d1*G).
package ecdh

import (
	"crypto/sha256"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/curve"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// KDF compresses the shared x-coordinate bytes into a fixed-length secret
// with a single SHA-256 invocation.
func KDF(x []byte) []byte {
	h := sha256.Sum256(x)
	return h[:]
}

// SharedSecret derives the shared secret between the local private scalar and
// the peer's public point: KDF of the big-endian minimal-length encoding of
// (priv * peerPub).x.
//
// priv must be in [1, n), else ecc.ErrInvalidScalar is returned. A shared
// point at infinity indicates a degenerate peer key and fails with
// ecc.ErrInvalidSharedPoint.
func SharedSecret(priv *big.Int, peerPub *curve.Point) ([]byte, error) {
	n := peerPub.Curve().N()
	if priv == nil || priv.Sign() < 1 || priv.Cmp(n) >= 0 {
		return nil, ecc.ErrInvalidScalar
	}

	s := curve.ScalarMult(priv, peerPub)
	if s.IsInfinity() {
		return nil, ecc.ErrInvalidSharedPoint
	}
	return KDF(s.X().Bytes()), nil
}
