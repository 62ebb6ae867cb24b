package ecc

import "errors"

// Common errors returned by the ECC library
var (
	// ErrPointNotOnCurve is returned when a coordinate pair fails the
	// curve equation y^2 = x^3 + ax + b (mod p).
	ErrPointNotOnCurve = errors.New("point is not on the curve")

	// ErrCrossCurve is returned when a group operation receives points
	// belonging to different Curve instances.
	ErrCrossCurve = errors.New("points on different curves")

	// ErrDivisionByZero is returned when a field inverse of zero is requested.
	ErrDivisionByZero = errors.New("inverse of zero does not exist")

	// ErrInvalidScalar is returned when a private key or ECDH scalar is
	// outside the range [1, n).
	ErrInvalidScalar = errors.New("scalar outside [1, n)")

	// ErrInvalidSharedPoint is returned when an ECDH computation yields the
	// point at infinity, which indicates a degenerate peer key.
	ErrInvalidSharedPoint = errors.New("shared point is at infinity")
)
