// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/consensys/jubjub"
	"github.com/spf13/cobra"
)

// vectorsCmd represents the vectors command
var vectorsCmd = &cobra.Command{
	Use:   "vectors",
	Short: "prints consecutive multiples of the subgroup generator, for cross library checks",
	Run:   cmdVectors,
}

var fNbVectors int

func init() {
	rootCmd.AddCommand(vectorsCmd)
	vectorsCmd.Flags().IntVarP(&fNbVectors, "count", "n", 8, "number of multiples to print, starting at [0]G")
}

type vectorEntry struct {
	K string `json:"k"`
	X string `json:"x"`
	Y string `json:"y"`
}

func cmdVectors(cmd *cobra.Command, args []string) {
	curve := jubjub.GetEdwardsCurve()

	entries := make([]vectorEntry, fNbVectors)
	var acc jubjub.SubgroupPoint
	acc.SetIdentity()
	for k := range entries {
		x, y := acc.AffineCoordinates()
		entries[k] = vectorEntry{K: strconv.Itoa(k), X: x.String(), Y: y.String()}
		acc.Add(&acc, &curve.Base, &curve)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
}
