// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package jubjub

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/jubjub/internal/debug"
)

// PointExtended is a point on the curve in extended coordinates (X, Y, T, Z),
// representing the affine point (X/Z, Y/Z) with T*Z = X*Y.
//
// A PointExtended may lie anywhere on the curve, including in a small order
// torsion coset. Use SubgroupPoint when prime order subgroup membership must
// be tracked. Z is never zero for a point produced by this package.
type PointExtended struct {
	X, Y, T, Z fr.Element
}

// SetIdentity sets p to the group identity (0, 1, 0, 1) and returns p
func (p *PointExtended) SetIdentity() *PointExtended {
	p.X.SetZero()
	p.Y.SetOne()
	p.T.SetZero()
	p.Z.SetOne()
	return p
}

// Set sets p to p1 and returns p
func (p *PointExtended) Set(p1 *PointExtended) *PointExtended {
	p.X.Set(&p1.X)
	p.Y.Set(&p1.Y)
	p.T.Set(&p1.T)
	p.Z.Set(&p1.Z)
	return p
}

// SetAffine sets p to the affine point (x, y) and returns p
func (p *PointExtended) SetAffine(x, y *fr.Element) *PointExtended {
	p.X.Set(x)
	p.Y.Set(y)
	p.T.Mul(x, y)
	p.Z.SetOne()
	return p
}

// SetFromSubgroup sets p to the point underlying p1. Widening a SubgroupPoint
// to a PointExtended is always safe; the converse goes through
// SubgroupPoint.MulByCofactor or SubgroupPoint.SetFromPoint.
func (p *PointExtended) SetFromSubgroup(p1 *SubgroupPoint) *PointExtended {
	return p.Set(&p1.inner)
}

// IsIdentity returns true if p is the group identity
func (p *PointExtended) IsIdentity() bool {
	return p.X.IsZero() && p.Y.Equal(&p.Z)
}

// Equal returns true if p and p1 represent the same affine point.
// Coordinates are compared cross multiplied so that quadruples differing by
// a projective scaling compare equal, without any field inversion.
func (p *PointExtended) Equal(p1 *PointExtended) bool {
	var lhs, rhs fr.Element
	lhs.Mul(&p.X, &p1.Z)
	rhs.Mul(&p1.X, &p.Z)
	if !lhs.Equal(&rhs) {
		return false
	}
	lhs.Mul(&p.Y, &p1.Z)
	rhs.Mul(&p1.Y, &p.Z)
	return lhs.Equal(&rhs)
}

// Neg sets p to -p1 and returns p. No inversion is performed.
func (p *PointExtended) Neg(p1 *PointExtended) *PointExtended {
	p.X.Neg(&p1.X)
	p.Y.Set(&p1.Y)
	p.T.Neg(&p1.T)
	p.Z.Set(&p1.Z)
	return p
}

// Add sets p to p1 + p2 and returns p
//
// The formula is unified: it is valid when p1 == p2 and when either operand
// is the identity, so no exceptional case branching is needed.
// https://hyperelliptic.org/EFD/g1p/auto-twisted-extended.html#addition-add-2008-hwcd
func (p *PointExtended) Add(p1, p2 *PointExtended, curve *CurveParams) *PointExtended {
	var A, B, C, D, E, F, G, H, U, V fr.Element

	// A = X1 * X2
	A.Mul(&p1.X, &p2.X)

	// B = Y1 * Y2
	B.Mul(&p1.Y, &p2.Y)

	// C = d * T1 * T2
	C.Mul(&curve.D, &p1.T).
		Mul(&C, &p2.T)

	// D = Z1 * Z2
	D.Mul(&p1.Z, &p2.Z)

	// H = B + A (the curve coefficient a = -1 folds into the sign)
	H.Add(&B, &A)

	// E = (X1 + Y1) * (X2 + Y2) - H
	U.Add(&p1.X, &p1.Y)
	V.Add(&p2.X, &p2.Y)
	E.Mul(&U, &V).
		Sub(&E, &H)

	// F = D - C
	F.Sub(&D, &C)

	// G = D + C
	G.Add(&D, &C)

	p.X.Mul(&E, &F)
	p.Y.Mul(&G, &H)
	p.T.Mul(&E, &H)
	p.Z.Mul(&F, &G)

	return p
}

// Double sets p to 2*p1 and returns p
func (p *PointExtended) Double(p1 *PointExtended, curve *CurveParams) *PointExtended {
	return p.Add(p1, p1, curve)
}

// ScalarMultiplication sets p to [scalar]p1 and returns p
//
// scalar must be non negative; it is not reduced modulo the subgroup order.
// The loop performs one double per bit of the scalar and one add per set
// bit (plain double-and-add, most significant bit first). Callers needing
// resistance against side channels beyond this fixed schedule must use a
// ladder of their own.
func (p *PointExtended) ScalarMultiplication(p1 *PointExtended, scalar *big.Int, curve *CurveParams) *PointExtended {
	var res PointExtended
	res.SetIdentity()
	for i := scalar.BitLen() - 1; i >= 0; i-- {
		res.Double(&res, curve)
		if scalar.Bit(i) == 1 {
			res.Add(&res, p1, curve)
		}
	}
	return p.Set(&res)
}

// AffineCoordinates returns the affine coordinates (X/Z, Y/Z) of p.
// It performs one field inversion. Z is invertible for any point produced
// by this package; a zero Z is a bug in the caller, not a runtime condition.
func (p *PointExtended) AffineCoordinates() (x, y fr.Element) {
	debug.Assert(!p.Z.IsZero(), "point with Z == 0")
	var zInv fr.Element
	zInv.Inverse(&p.Z)
	x.Mul(&p.X, &zInv)
	y.Mul(&p.Y, &zInv)
	return
}

// IsOnCurve returns true if p satisfies the curve equation
// -x^2 + y^2 = 1 + d*x^2*y^2 together with the extended coordinate
// invariant T*Z = X*Y. The check is done projectively, without inversion:
// multiplying the equation by Z^2 and substituting X*Y = T*Z gives
// -X^2 + Y^2 = Z^2 + d*T^2.
func (p *PointExtended) IsOnCurve(curve *CurveParams) bool {
	if p.Z.IsZero() {
		return false
	}

	var lhs, rhs, tmp fr.Element

	// T * Z == X * Y
	lhs.Mul(&p.T, &p.Z)
	rhs.Mul(&p.X, &p.Y)
	if !lhs.Equal(&rhs) {
		return false
	}

	// -X^2 + Y^2 == Z^2 + d * T^2
	lhs.Square(&p.Y)
	tmp.Square(&p.X)
	lhs.Sub(&lhs, &tmp)
	rhs.Square(&p.T).
		Mul(&rhs, &curve.D)
	tmp.Square(&p.Z)
	rhs.Add(&rhs, &tmp)

	return lhs.Equal(&rhs)
}

// IsInSubGroup returns true if p lies in the prime order subgroup, by
// multiplying p by the subgroup order and comparing with the identity.
// This is a full scalar multiplication; prefer SubgroupPoint.MulByCofactor
// when any subgroup point derived from p is acceptable.
func (p *PointExtended) IsInSubGroup(curve *CurveParams) bool {
	var res PointExtended
	res.ScalarMultiplication(p, &curve.Order, curve)
	return res.IsIdentity()
}

// SetRandom sets p to a uniformly random point on the curve, drawing field
// candidates from rng, and returns p. The point is *not* guaranteed to lie
// in the prime order subgroup.
//
// Rejection sampling: a random x is accepted when (1 + x^2)/(1 - d*x^2) is
// a square; the square root sign is matched against one fresh random bit so
// the parity of y is unbiased. The loop terminates with probability 1 but
// has no fixed iteration bound.
func (p *PointExtended) SetRandom(rng io.Reader, curve *CurveParams) (*PointExtended, error) {
	var x, y, num, den fr.Element
	var sign [1]byte
	one := fr.One()

	for {
		xInt, err := rand.Int(rng, fr.Modulus())
		if err != nil {
			return nil, err
		}
		x.SetBigInt(xInt)

		// y^2 = (1 + x^2) / (1 - d*x^2)
		num.Square(&x)
		den.Mul(&num, &curve.D).
			Sub(&one, &den)
		num.Add(&one, &num)

		// non invertible denominator: x is on the asymptote, resample
		if den.IsZero() {
			continue
		}
		den.Inverse(&den)
		num.Mul(&num, &den)

		// no square root: x is not the abscissa of a curve point, resample
		if y.Sqrt(&num) == nil {
			continue
		}

		if _, err := io.ReadFull(rng, sign[:]); err != nil {
			return nil, err
		}
		var yInt big.Int
		y.BigInt(&yInt)
		if (yInt.Bit(0) == 1) != (sign[0]&1 == 1) {
			y.Neg(&y)
		}

		p.X.Set(&x)
		p.Y.Set(&y)
		p.T.Mul(&x, &y)
		p.Z.SetOne()
		return p, nil
	}
}

func (p *PointExtended) String() string {
	x, y := p.AffineCoordinates()
	return fmt.Sprintf("{x: %s, y: %s}", x.String(), y.String())
}
