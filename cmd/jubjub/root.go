// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package main

import (
	"fmt"
	"os"

	"github.com/consensys/jubjub"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "jubjub",
	Short:   "point arithmetic on the Jubjub twisted Edwards curve",
	Version: jubjub.Version.String(),
}

// Execute runs the root command and exits on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
}
