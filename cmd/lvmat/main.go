// SPDX-License-Identifier: MIT

// Command lvmat inspects, converts and transcodes matrices in the lvmat
// JSON wire format.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
