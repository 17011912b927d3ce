// Package jubjub implements arithmetic on the Jubjub twisted Edwards curve.
//
// Jubjub is the curve -x^2 + y^2 = 1 + d*x^2*y^2 defined over the scalar
// field of BLS12-381, embedded inside zero knowledge proof circuits built
// over that pairing curve. The package provides:
//   - extended coordinates (X, Y, T, Z) with a unified, branch free group law
//   - double-and-add scalar multiplication
//   - a compile time distinction between arbitrary curve points
//     (PointExtended) and points verified to lie in the prime order
//     subgroup (SubgroupPoint)
//   - the birational map from the Montgomery form of the same curve
//   - uniform random point sampling from a caller supplied entropy source
//
// Curve constants are bundled in CurveParams and passed explicitly to every
// operation that needs them, so distinct parameter sets can coexist.
package jubjub

import (
	"github.com/blang/semver/v4"
)

// Version of the library
var Version = semver.MustParse("0.1.0")
