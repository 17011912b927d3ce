package jubjub

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMulByCofactor(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	curve := GetEdwardsCurve()

	properties.Property("[cofactor]P lands in the prime order subgroup", prop.ForAll(
		func(p PointExtended) bool {
			var s SubgroupPoint
			s.MulByCofactor(&p, &curve)

			var w PointExtended
			w.SetFromSubgroup(&s)
			return w.IsOnCurve(&curve) && w.IsInSubGroup(&curve)
		},
		genPoint(&curve),
	))

	properties.Property("[cofactor]P == [8]P", prop.ForAll(
		func(p PointExtended) bool {
			var s SubgroupPoint
			s.MulByCofactor(&p, &curve)

			var expected, w PointExtended
			expected.ScalarMultiplication(&p, big.NewInt(8), &curve)
			w.SetFromSubgroup(&s)
			return w.Equal(&expected)
		},
		genPoint(&curve),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSubgroupVerification(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)
	curve := GetEdwardsCurve()

	properties.Property("SetFromPoint accepts subgroup points and preserves the value", prop.ForAll(
		func(s SubgroupPoint) bool {
			var w PointExtended
			w.SetFromSubgroup(&s)

			var verified SubgroupPoint
			if err := verified.SetFromPoint(&w, &curve); err != nil {
				return false
			}
			return verified.Equal(&s)
		},
		genSubgroupPoint(&curve),
	))

	properties.Property("SetFromPoint rejects points outside the subgroup", prop.ForAll(
		func(s SubgroupPoint) bool {
			// shift the point by an order 8 element
			torsion := torsionOrder8()
			var p PointExtended
			p.SetFromSubgroup(&s)
			p.Add(&p, &torsion, &curve)

			var rejected SubgroupPoint
			err := rejected.SetFromPoint(&p, &curve)
			return err == ErrNotInSubGroup
		},
		genSubgroupPoint(&curve),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestTorsionPoints(t *testing.T) {
	assert := require.New(t)
	curve := GetEdwardsCurve()

	torsion := torsionOrder8()
	assert.True(torsion.IsOnCurve(&curve))
	assert.False(torsion.IsInSubGroup(&curve))

	// the point has order exactly 8
	var p PointExtended
	p.Double(&torsion, &curve)
	assert.False(p.IsIdentity())
	p.Double(&p, &curve)
	assert.False(p.IsIdentity())
	p.Double(&p, &curve)
	assert.True(p.IsIdentity())

	// clearing the cofactor maps it to the identity
	var s SubgroupPoint
	s.MulByCofactor(&torsion, &curve)
	assert.True(s.IsIdentity())

	var rejected SubgroupPoint
	err := rejected.SetFromPoint(&torsion, &curve)
	assert.ErrorIs(err, ErrNotInSubGroup)
}

func TestLowOrderPoints(t *testing.T) {
	assert := require.New(t)
	curve := GetEdwardsCurve()

	// (0, -1) has order 2
	var x, y fr.Element
	y.SetOne()
	y.Neg(&y)

	var p PointExtended
	p.SetAffine(&x, &y)
	assert.True(p.IsOnCurve(&curve))
	assert.False(p.IsIdentity())

	var d PointExtended
	d.Double(&p, &curve)
	assert.True(d.IsIdentity())

	var rejected SubgroupPoint
	assert.ErrorIs(rejected.SetFromPoint(&p, &curve), ErrNotInSubGroup)

	// (sqrt(-1), 0) has order 4
	x.SetString("3465144826073652318776269530687742778270252468765361963008")
	y.SetZero()
	p.SetAffine(&x, &y)
	assert.True(p.IsOnCurve(&curve))

	d.Double(&p, &curve)
	assert.False(d.IsIdentity())
	d.Double(&d, &curve)
	assert.True(d.IsIdentity())
}

func TestSubgroupWidening(t *testing.T) {
	assert := require.New(t)
	curve := GetEdwardsCurve()

	var w PointExtended
	w.SetFromSubgroup(&curve.Base)
	assert.True(w.IsOnCurve(&curve))
	assert.True(w.IsInSubGroup(&curve))

	bx, by := curve.Base.AffineCoordinates()
	wx, wy := w.AffineCoordinates()
	assert.True(wx.Equal(&bx))
	assert.True(wy.Equal(&by))
}

func TestSubgroupOps(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	curve := GetEdwardsCurve()

	properties.Property("subgroup add agrees with full group add", prop.ForAll(
		func(a, b SubgroupPoint) bool {
			var s SubgroupPoint
			s.Add(&a, &b, &curve)

			var wa, wb, expected, got PointExtended
			wa.SetFromSubgroup(&a)
			wb.SetFromSubgroup(&b)
			expected.Add(&wa, &wb, &curve)
			got.SetFromSubgroup(&s)
			return got.Equal(&expected)
		},
		genSubgroupPoint(&curve),
		genSubgroupPoint(&curve),
	))

	properties.Property("subgroup double and neg agree with the full group", prop.ForAll(
		func(a SubgroupPoint) bool {
			var d, n SubgroupPoint
			d.Double(&a, &curve)
			n.Neg(&a)

			var wa, wd, wn, expected PointExtended
			wa.SetFromSubgroup(&a)
			wd.SetFromSubgroup(&d)
			wn.SetFromSubgroup(&n)

			expected.Double(&wa, &curve)
			if !wd.Equal(&expected) {
				return false
			}
			expected.Neg(&wa)
			return wn.Equal(&expected)
		},
		genSubgroupPoint(&curve),
	))

	properties.Property("subgroup scalar multiplication agrees with the full group", prop.ForAll(
		func(a SubgroupPoint, k uint64) bool {
			var ks big.Int
			ks.SetUint64(k)

			var s SubgroupPoint
			s.ScalarMultiplication(&a, &ks, &curve)

			var wa, expected, got PointExtended
			wa.SetFromSubgroup(&a)
			expected.ScalarMultiplication(&wa, &ks, &curve)
			got.SetFromSubgroup(&s)
			return got.Equal(&expected)
		},
		genSubgroupPoint(&curve),
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSubgroupIdentity(t *testing.T) {
	assert := require.New(t)
	curve := GetEdwardsCurve()

	var s SubgroupPoint
	s.SetIdentity()
	assert.True(s.IsIdentity())

	// identity is absorbing for add and fixed by scalar multiplication
	var r SubgroupPoint
	r.Add(&s, &curve.Base, &curve)
	assert.True(r.Equal(&curve.Base))

	r.ScalarMultiplication(&s, big.NewInt(123456), &curve)
	assert.True(r.IsIdentity())

	// [order]B == 0 stays within the subgroup type
	r.ScalarMultiplication(&curve.Base, &curve.Order, &curve)
	assert.True(r.IsIdentity())
}

func TestConcurrentScalarMultiplication(t *testing.T) {
	assert := require.New(t)
	curve := GetEdwardsCurve()

	const nbGoroutines = 8
	const nbIterations = 25

	// precompute [1]B .. [nbIterations]B sequentially
	expected := make([]SubgroupPoint, nbIterations)
	var acc SubgroupPoint
	acc.SetIdentity()
	for i := 0; i < nbIterations; i++ {
		acc.Add(&acc, &curve.Base, &curve)
		expected[i].Set(&acc)
	}

	// the goroutines share curve and base, both read only
	var g errgroup.Group
	for i := 0; i < nbGoroutines; i++ {
		g.Go(func() error {
			for k := 1; k <= nbIterations; k++ {
				var p SubgroupPoint
				p.ScalarMultiplication(&curve.Base, big.NewInt(int64(k)), &curve)
				if !p.Equal(&expected[k-1]) {
					return fmt.Errorf("wrong result for k=%d", k)
				}
			}
			return nil
		})
	}
	assert.NoError(g.Wait())
}

func BenchmarkMulByCofactor(b *testing.B) {
	curve := GetEdwardsCurve()
	p := torsionOrder8()
	var base PointExtended
	base.SetFromSubgroup(&curve.Base)
	p.Add(&p, &base, &curve)

	var s SubgroupPoint
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.MulByCofactor(&p, &curve)
	}
}

func BenchmarkSetFromPoint(b *testing.B) {
	curve := GetEdwardsCurve()
	var p PointExtended
	p.SetFromSubgroup(&curve.Base)

	var s SubgroupPoint
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.SetFromPoint(&p, &curve)
	}
}
