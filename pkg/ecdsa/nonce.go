package ecdsa

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"math/big"

	"github.com/smallyu/go-ecc/internal/encoding"
)

var (
	singleZero      = []byte{0x00}
	singleOne       = []byte{0x01}
	zeroInitializer = bytes.Repeat([]byte{0x00}, sha256.Size)
	oneInitializer  = bytes.Repeat([]byte{0x01}, sha256.Size)
)

// nonceRFC6979 derives a deterministic nonce k in [1, n) from the private
// scalar and the message digest h1, per RFC 6979 with HMAC-SHA-256.
//
// extraIterations skips that many acceptable candidates before returning,
// which gives the signing loop a fresh nonce when a candidate produced a
// zero r or s.
func nonceRFC6979(priv *big.Int, h1 []byte, n *big.Int, extraIterations uint32) *big.Int {
	qlen := n.BitLen()
	rolen := (qlen + 7) / 8

	bx := make([]byte, 0, 2*rolen)
	bx = append(bx, encoding.Int2Octets(priv, rolen)...)
	bx = append(bx, encoding.Bits2Octets(h1, n)...)

	// Step B/C: V = 0x01..01, K = 0x00..00.
	v := append([]byte(nil), oneInitializer...)
	k := append([]byte(nil), zeroInitializer...)

	// Step D: K = HMAC_K(V || 0x00 || bx); E: V = HMAC_K(V).
	k = mac(k, v, singleZero, bx)
	v = mac(k, v)

	// Step F: K = HMAC_K(V || 0x01 || bx); G: V = HMAC_K(V).
	k = mac(k, v, singleOne, bx)
	v = mac(k, v)

	// Step H: generate candidates until one falls in [1, n).
	for skipped := uint32(0); ; {
		var t []byte
		for len(t) < rolen {
			v = mac(k, v)
			t = append(t, v...)
		}

		c := encoding.Bits2Int(t, qlen)
		if c.Sign() > 0 && c.Cmp(n) < 0 {
			if skipped >= extraIterations {
				return c
			}
			skipped++
		}

		k = mac(k, v, singleZero)
		v = mac(k, v)
	}
}

// mac computes HMAC-SHA-256 over the concatenation of the data slices.
func mac(key []byte, data ...[]byte) []byte {
	m := hmac.New(sha256.New, key)
	for _, d := range data {
		m.Write(d)
	}
	return m.Sum(nil)
}
