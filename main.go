// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors
//
// Flameconnect - FlameConnect cloud fireplace controller
//
// A CLI tool for reading and writing fireplace parameters through the
// FlameConnect cloud relay.

package main

import (
	"os"

	"github.com/deviantintegral/flameconnect-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
