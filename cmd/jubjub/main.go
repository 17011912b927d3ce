// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// jubjub is a CLI around the Jubjub curve arithmetic: random point sampling,
// membership checks and test vector generation.
package main

import (
	"os"

	"github.com/consensys/jubjub/debug"
	"github.com/consensys/jubjub/logger"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log := logger.Logger()
			log.Error().Str("stack", debug.Stack()).Msgf("panic: %v", r)
			os.Exit(-1)
		}
	}()
	Execute()
}
