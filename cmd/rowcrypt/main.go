// SPDX-License-Identifier: MIT

// Command rowcrypt scrambles the rows of an image with a 15-bit key,
// unscrambles it again, and breaks the key of a scrambled image.
//
//	rowcrypt scramble   <input> <key> [output]
//	rowcrypt unscramble <input> <key> [output]
//	rowcrypt break      <input> [pearson|euclidean] [--strategy exhaustive|two-stage]
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
