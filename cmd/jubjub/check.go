// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/jubjub"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [x] [y]",
	Short: "checks whether the affine point (x, y) is on the curve and in the prime order subgroup",
	Run:   cmdCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func cmdCheck(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		fmt.Println("missing coordinates -- jubjub check -h for help")
		os.Exit(-1)
	}

	var xInt, yInt big.Int
	if _, ok := xInt.SetString(args[0], 0); !ok {
		fmt.Println("can't parse x coordinate:", args[0])
		os.Exit(-1)
	}
	if _, ok := yInt.SetString(args[1], 0); !ok {
		fmt.Println("can't parse y coordinate:", args[1])
		os.Exit(-1)
	}

	var x, y fr.Element
	x.SetBigInt(&xInt)
	y.SetBigInt(&yInt)

	var p jubjub.PointExtended
	p.SetAffine(&x, &y)

	curve := jubjub.GetEdwardsCurve()

	verdict := struct {
		OnCurve    bool `json:"onCurve"`
		InSubGroup bool `json:"inSubGroup"`
	}{
		OnCurve: p.IsOnCurve(&curve),
	}
	if verdict.OnCurve {
		verdict.InSubGroup = p.IsInSubGroup(&curve)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(verdict); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	if !verdict.OnCurve {
		os.Exit(1)
	}
}
