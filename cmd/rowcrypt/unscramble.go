// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/rowcrypt/perm"
	"github.com/katalvlaran/rowcrypt/rows"
	"github.com/spf13/cobra"
)

func newUnscrambleCmd(_ *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "unscramble <input> <key> [output]",
		Short: "Undo scramble with a known key (output defaults to unscrambled_key<K>.png)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := ""
			if len(args) == 3 {
				out = args[2]
			} else {
				key, err := perm.ParseKey(args[1])
				if err != nil {
					return err
				}
				out = fmt.Sprintf("unscrambled_key%d.png", key)
			}
			return transform(cmd, args[0], args[1], out, rows.UnscrambleImage, "unscrambled")
		},
	}
}
