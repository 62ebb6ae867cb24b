package curve

import "math/big"

// Named curve instances. Identity matters for the group law, so each named
// curve is a single package-level instance and P256/S256 always return it.
var (
	p256 = New(&Params{
		Name: "secp256r1",
		P:    hexInt("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"),
		A:    hexInt("ffffffff00000001000000000000000000000000fffffffffffffffffffffffc"), // -3 mod p
		B:    hexInt("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
		Gx:   hexInt("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
		Gy:   hexInt("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"),
		N:    hexInt("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"),
		H:    1,
	})

	s256 = New(&Params{
		Name: "secp256k1",
		P:    hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
		A:    big.NewInt(0),
		B:    big.NewInt(7),
		Gx:   hexInt("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		Gy:   hexInt("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
		N:    hexInt("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		H:    1,
	})
)

// P256 returns the secp256r1 (NIST P-256) curve.
func P256() *Curve { return p256 }

// S256 returns the secp256k1 curve.
func S256() *Curve { return s256 }

func hexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: invalid hex constant: " + s)
	}
	return v
}
