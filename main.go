// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad
//
// pronto - a Pronto CCF IR remote code encoder and transmitter CLI.

package main

import (
	"fmt"
	"os"

	"github.com/Thermoquad/pronto/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
