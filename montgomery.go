// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package jubjub

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// PointMontgomery is an affine point on the Montgomery form of the curve,
// y^2 = x^3 + 40962*x^2 + x, or its point at infinity. The type is a plain
// data carrier consumed by FromMontgomery; arithmetic on the Montgomery
// form is not implemented here.
type PointMontgomery struct {
	x, y     fr.Element
	infinity bool
}

// NewPointMontgomery returns the affine Montgomery point (x, y)
func NewPointMontgomery(x, y *fr.Element) PointMontgomery {
	var p PointMontgomery
	p.x.Set(x)
	p.y.Set(y)
	return p
}

// MontgomeryInfinity returns the Montgomery point at infinity
func MontgomeryInfinity() PointMontgomery {
	return PointMontgomery{infinity: true}
}

// IsInfinity returns true if p is the point at infinity
func (p *PointMontgomery) IsInfinity() bool {
	return p.infinity
}

// AffineCoordinates returns the affine coordinates of p, with ok == false
// for the point at infinity (which has none).
func (p *PointMontgomery) AffineCoordinates() (x, y fr.Element, ok bool) {
	if p.infinity {
		return
	}
	x.Set(&p.x)
	y.Set(&p.y)
	ok = true
	return
}

// FromMontgomery sets p to the image of p1 under the birational map to the
// Edwards form, (x, y) -> (s*x/y, (x-1)/(x+1)), and returns p.
//
// Two cases need no division and are handled apart:
//   - the point at infinity maps to the identity
//   - (0, 0), the only affine point with y = 0, maps to (0, -1), the only
//     order 2 point of the Edwards form
//
// x = -1 never occurs for a point of the Montgomery curve, so the general
// case divides by nothing that can vanish. The output coordinates share the
// scaling y*(x+1) so that no inversion is performed.
func (p *PointExtended) FromMontgomery(p1 *PointMontgomery, curve *CurveParams) *PointExtended {
	x, y, ok := p1.AffineCoordinates()
	if !ok {
		return p.SetIdentity()
	}

	if y.IsZero() {
		// (0, 0) -> (0, -1, 0, 1)
		p.SetIdentity()
		p.Y.Neg(&p.Y)
		return p
	}

	var u, v, t, z fr.Element
	one := fr.One()

	// u = x * s
	u.Mul(&x, &curve.Scale)

	// v = x - 1
	v.Sub(&x, &one)

	// t = u * v = s*x*(x-1)
	t.Mul(&u, &v)

	// z = x + 1
	z.Add(&x, &one)

	// u = u * z = s*x*(x+1)
	u.Mul(&u, &z)

	// z = z * y = y*(x+1)
	z.Mul(&z, &y)

	// v = v * y = y*(x-1)
	v.Mul(&v, &y)

	p.X.Set(&u)
	p.Y.Set(&v)
	p.T.Set(&t)
	p.Z.Set(&z)

	return p
}

// FromMontgomery sets p to the image of p1 under the birational map to the
// Edwards form and returns p. The map preserves subgroup membership, so the
// result is a valid SubgroupPoint provided p1 lies in the prime order
// subgroup of the Montgomery form; that precondition is the caller's to
// uphold. For untrusted input, use PointExtended.FromMontgomery followed by
// SetFromPoint.
func (p *SubgroupPoint) FromMontgomery(p1 *PointMontgomery, curve *CurveParams) *SubgroupPoint {
	p.inner.FromMontgomery(p1, curve)
	return p
}
