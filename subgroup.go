// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package jubjub

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ErrNotInSubGroup is returned when a point fails prime order subgroup
// verification.
var ErrNotInSubGroup = errors.New("point is not in the prime order subgroup")

// SubgroupPoint is a point guaranteed to lie in the prime order subgroup.
//
// The guarantee is established by construction only: the two ways to obtain
// a SubgroupPoint from an arbitrary PointExtended are MulByCofactor (always
// succeeds, multiplies the value by 8) and SetFromPoint (preserves the
// value, fails on non members). There is no runtime tag; keeping untrusted
// points out of this type is what the restricted constructors are for.
// The group operations below stay inside the subgroup, so results keep the
// guarantee.
type SubgroupPoint struct {
	inner PointExtended
}

// SetIdentity sets p to the group identity and returns p
func (p *SubgroupPoint) SetIdentity() *SubgroupPoint {
	p.inner.SetIdentity()
	return p
}

// Set sets p to p1 and returns p
func (p *SubgroupPoint) Set(p1 *SubgroupPoint) *SubgroupPoint {
	p.inner.Set(&p1.inner)
	return p
}

// MulByCofactor sets p to [8]p1 and returns p. Multiplying by the cofactor
// lands in the prime order subgroup whatever coset p1 lives in, so the
// result is a valid SubgroupPoint by construction. The value changes: this
// clears torsion, it does not verify anything.
func (p *SubgroupPoint) MulByCofactor(p1 *PointExtended, curve *CurveParams) *SubgroupPoint {
	// cofactor 8 = 2^3, three doublings
	p.inner.Double(p1, curve)
	p.inner.Double(&p.inner, curve)
	p.inner.Double(&p.inner, curve)
	return p
}

// SetFromPoint sets p to p1 after verifying that p1 lies in the prime order
// subgroup, multiplying p1 by the subgroup order and comparing with the
// identity. The value is preserved; ErrNotInSubGroup is returned (and p left
// untouched) when the check fails. This is the path for untrusted input;
// use MulByCofactor when any subgroup point derived from p1 will do, it is
// three doublings instead of a ~252 bit scalar multiplication.
func (p *SubgroupPoint) SetFromPoint(p1 *PointExtended, curve *CurveParams) error {
	if !p1.IsInSubGroup(curve) {
		return ErrNotInSubGroup
	}
	p.inner.Set(p1)
	return nil
}

// Add sets p to p1 + p2 and returns p
func (p *SubgroupPoint) Add(p1, p2 *SubgroupPoint, curve *CurveParams) *SubgroupPoint {
	p.inner.Add(&p1.inner, &p2.inner, curve)
	return p
}

// Double sets p to 2*p1 and returns p
func (p *SubgroupPoint) Double(p1 *SubgroupPoint, curve *CurveParams) *SubgroupPoint {
	p.inner.Double(&p1.inner, curve)
	return p
}

// Neg sets p to -p1 and returns p
func (p *SubgroupPoint) Neg(p1 *SubgroupPoint) *SubgroupPoint {
	p.inner.Neg(&p1.inner)
	return p
}

// ScalarMultiplication sets p to [scalar]p1 and returns p. scalar must be
// non negative.
func (p *SubgroupPoint) ScalarMultiplication(p1 *SubgroupPoint, scalar *big.Int, curve *CurveParams) *SubgroupPoint {
	p.inner.ScalarMultiplication(&p1.inner, scalar, curve)
	return p
}

// Equal returns true if p and p1 represent the same affine point
func (p *SubgroupPoint) Equal(p1 *SubgroupPoint) bool {
	return p.inner.Equal(&p1.inner)
}

// IsIdentity returns true if p is the group identity
func (p *SubgroupPoint) IsIdentity() bool {
	return p.inner.IsIdentity()
}

// AffineCoordinates returns the affine coordinates (X/Z, Y/Z) of p
func (p *SubgroupPoint) AffineCoordinates() (x, y fr.Element) {
	return p.inner.AffineCoordinates()
}

func (p *SubgroupPoint) String() string {
	return p.inner.String()
}
