// Package encoding implements the bit-length-aware integer/octet conversions
// of RFC 6979 section 2.3, shared by the deterministic nonce derivation.
package encoding

import "math/big"

// Bits2Int converts the big-endian octet string b to an integer, keeping
// only the qlen leftmost bits (RFC 6979 2.3.2).
func Bits2Int(b []byte, qlen int) *big.Int {
	v := new(big.Int).SetBytes(b)
	if blen := len(b) * 8; blen > qlen {
		v.Rsh(v, uint(blen-qlen))
	}
	return v
}

// Int2Octets encodes x into exactly rolen big-endian bytes (RFC 6979 2.3.3).
// The caller guarantees x fits, i.e. 0 <= x < 2^(8*rolen).
func Int2Octets(x *big.Int, rolen int) []byte {
	out := make([]byte, rolen)
	x.FillBytes(out)
	return out
}

// Bits2Octets reduces the bit string b mod n and encodes the result into the
// minimal octet length that can hold n (RFC 6979 2.3.4).
func Bits2Octets(b []byte, n *big.Int) []byte {
	qlen := n.BitLen()
	z := Bits2Int(b, qlen)
	z.Mod(z, n)
	return Int2Octets(z, (qlen+7)/8)
}
