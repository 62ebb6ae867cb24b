// Package ecc defines the error taxonomy shared by the elliptic-curve
// packages of this module.
//
// The module implements prime-field arithmetic (pkg/field), the short
// Weierstrass group law with scalar multiplication (pkg/curve), ECDSA with
// RFC 6979 deterministic nonces (pkg/ecdsa), and ECDH key agreement
// (pkg/ecdh) from first principles on top of math/big.
//
// It is a reference implementation: scalar multiplication is variable-time
// and no other side-channel hardening is attempted. Do not use it to protect
// production secrets.
package ecc
