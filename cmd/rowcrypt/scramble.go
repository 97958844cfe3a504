// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"time"

	"github.com/katalvlaran/rowcrypt/imageio"
	"github.com/katalvlaran/rowcrypt/perm"
	"github.com/katalvlaran/rowcrypt/rows"
	"github.com/spf13/cobra"
)

const defaultScrambleOutput = "out.png"

func newScrambleCmd(_ *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "scramble <input> <key> [output]",
		Short: "Scramble the rows of an image (output defaults to " + defaultScrambleOutput + ")",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := defaultScrambleOutput
			if len(args) == 3 {
				out = args[2]
			}
			return transform(cmd, args[0], args[1], out, rows.ScrambleImage, "scrambled")
		},
	}
}

// transform loads input, applies fn with the permutation of key, and saves
// the result to out.
func transform(
	cmd *cobra.Command,
	input, keyArg, out string,
	fn func(image.Image, perm.Permutation) (*image.NRGBA, error),
	verb string,
) error {
	key, err := perm.ParseKey(keyArg)
	if err != nil {
		return err
	}
	img, err := loadImage(cmd, input)
	if err != nil {
		return err
	}

	start := time.Now()
	p, err := perm.Generate(img.Bounds().Dy(), key)
	if err != nil {
		return err
	}
	res, err := fn(img, p)
	if err != nil {
		return err
	}
	reportElapsed(cmd, verb+" in", start)

	if err := imageio.Save(out, res); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "key: %d (step %d, offset %d)\n", key, key.Step(), key.Offset())
	fmt.Fprintf(cmd.OutOrStdout(), "%s image written to %s\n", verb, out)
	return nil
}
