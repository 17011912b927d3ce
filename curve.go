// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package jubjub

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// CurveParams curve parameters: -x^2 + y^2 = 1 + d*x^2*y^2
type CurveParams struct {
	D        fr.Element // twisted Edwards coefficient
	Scale    fr.Element // Montgomery-to-Edwards scaling factor, sqrt(-40964)
	Cofactor big.Int    // 8
	Order    big.Int    // prime order of the subgroup generated by Base
	Base     SubgroupPoint
}

var edwards CurveParams

// GetEdwardsCurve returns the Jubjub curve on BLS12-381's Fr
func GetEdwardsCurve() CurveParams {

	// copy to keep the package instance immutable
	var res CurveParams

	res.D.Set(&edwards.D)
	res.Scale.Set(&edwards.Scale)
	res.Cofactor.Set(&edwards.Cofactor)
	res.Order.Set(&edwards.Order)
	res.Base.Set(&edwards.Base)

	return res
}

func init() {
	// d = -(10240/10241)
	// scale = sqrt(-40964) = sqrt(4/(a-d)) for a = -1
	// cofactor = 8
	// order = 6554484396890773809930967563523245729705921265872317281365359162392183254199
	// base = [8]G where G is the point with y = 11 and even x
	edwards.D.SetString("19257038036680949359750312669786877991949435402254120286184196891950884077233")
	edwards.Scale.SetString("17814886934372412843466061268024708274627479829237077604635722030778476050649")
	edwards.Cofactor.SetInt64(8)
	edwards.Order.SetString("6554484396890773809930967563523245729705921265872317281365359162392183254199", 10)

	var baseX, baseY fr.Element
	baseX.SetString("28336281903124990867587793011069573392383982287722241916350956173377953689573")
	baseY.SetString("39385640392217313770878525135509063452020585410343666726093009378539878503883")
	edwards.Base.inner.SetAffine(&baseX, &baseY)
}
