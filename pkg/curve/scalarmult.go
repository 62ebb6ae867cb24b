package curve

import "math/big"

// DefaultWindow is the window width used by ScalarMultWNAF when the caller
// passes a width outside [2, 16].
const DefaultWindow = 5

// ScalarMult returns k*P via double-and-add over the bits of k, processing
// the least significant bit first. k is reduced mod N before use; a reduced
// scalar of 0, or P at infinity, yields infinity. Negative k is folded into
// (-k)*(-P).
//
// The running time depends on the bit pattern of k. That is acceptable for a
// reference implementation and unacceptable when k is a production secret.
func ScalarMult(k *big.Int, p *Point) *Point {
	kk, p := reduceScalar(k, p)
	if kk.Sign() == 0 || p.IsInfinity() {
		return Infinity(p.curve)
	}

	q := Infinity(p.curve)
	base := p
	for i := 0; i < kk.BitLen(); i++ {
		if kk.Bit(i) == 1 {
			q = q.add(base)
		}
		base = base.add(base)
	}
	return q
}

// ScalarMultWNAF returns k*P using a width-w non-adjacent form of k with
// precomputed odd multiples P, 3P, ..., (2^(w-1)-1)P. It produces exactly the
// same point as ScalarMult for every input, and is likewise variable-time.
func ScalarMultWNAF(k *big.Int, p *Point, w int) *Point {
	if w < 2 || w > 16 {
		w = DefaultWindow
	}
	kk, p := reduceScalar(k, p)
	if kk.Sign() == 0 || p.IsInfinity() {
		return Infinity(p.curve)
	}

	precomp := make([]*Point, 1<<(w-2))
	precomp[0] = p
	twoP := p.Double()
	for i := 1; i < len(precomp); i++ {
		precomp[i] = precomp[i-1].add(twoP)
	}

	q := Infinity(p.curve)
	digits := wnaf(kk, w)
	for i := len(digits) - 1; i >= 0; i-- {
		q = q.Double()
		if d := digits[i]; d != 0 {
			addend := precomp[(abs(d)-1)/2]
			if d < 0 {
				addend = addend.Neg()
			}
			q = q.add(addend)
		}
	}
	return q
}

// reduceScalar folds a negative scalar into (-k)*(-P) and reduces the result
// mod the curve order.
func reduceScalar(k *big.Int, p *Point) (*big.Int, *Point) {
	kk := new(big.Int).Set(k)
	if kk.Sign() < 0 {
		kk.Neg(kk)
		p = p.Neg()
	}
	return kk.Mod(kk, p.curve.n), p
}

// wnaf returns the width-w non-adjacent form digits of k > 0, least
// significant digit first. Every nonzero digit is odd with magnitude below
// 2^(w-1), and any two nonzero digits are separated by at least w-1 zeros.
func wnaf(k *big.Int, w int) []int {
	kk := new(big.Int).Set(k)
	window := big.NewInt(1<<uint(w) - 1)

	var digits []int
	for kk.Sign() > 0 {
		var zi int64
		if kk.Bit(0) == 1 {
			zi = new(big.Int).And(kk, window).Int64()
			if zi > 1<<uint(w-1) {
				zi -= 1 << uint(w)
			}
			kk.Sub(kk, big.NewInt(zi))
		}
		digits = append(digits, int(zi))
		kk.Rsh(kk, 1)
	}
	return digits
}

func abs(d int) int {
	if d < 0 {
		return -d
	}
	return d
}
