package ecdsa

import (
	crand "crypto/rand"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/curve"
)

// KeyPair holds an ECDSA/ECDH key pair: a private scalar d in [1, n) and the
// public point d*G.
type KeyPair struct {
	Curve *curve.Curve
	Priv  *big.Int
	Pub   *curve.Point
}

// GenerateKeyPair draws a private scalar uniformly from [1, n) using
// crypto/rand and derives the public point. Zero draws are rejected and
// retried; since n is close to the field's bit-length ceiling the rejection
// probability is negligible.
func GenerateKeyPair(c *curve.Curve) (*KeyPair, error) {
	n := c.N()
	for {
		d, err := crand.Int(crand.Reader, n)
		if err != nil {
			return nil, fmt.Errorf("ecdsa: drawing private scalar: %w", err)
		}
		if d.Sign() == 0 {
			continue
		}
		return &KeyPair{
			Curve: c,
			Priv:  d,
			Pub:   curve.ScalarMult(d, c.Generator()),
		}, nil
	}
}
