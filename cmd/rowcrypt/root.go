// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/katalvlaran/rowcrypt"
	"github.com/katalvlaran/rowcrypt/imageio"
	"github.com/katalvlaran/rowcrypt/keysearch"
	"github.com/spf13/cobra"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	verbose bool
	workers int
	kernel  kernelValue
}

// searchOptions maps the global flags onto keysearch options.
func (g *globals) searchOptions() keysearch.Options {
	opts := keysearch.DefaultOptions()
	opts.Workers = g.workers
	opts.Kernel = keysearch.Kernel(g.kernel)
	return opts
}

func newRootCmd() *cobra.Command {
	g := &globals{kernel: kernelValue(keysearch.KernelAuto)}

	root := &cobra.Command{
		Use:           "rowcrypt",
		Short:         "Scramble image rows with a 15-bit key and recover the key",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if g.verbose {
				level = slog.LevelDebug
			}
			rowcrypt.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log search internals to stderr")
	pf.IntVarP(&g.workers, "workers", "w", 0, "worker goroutines per sweep (0 = GOMAXPROCS)")
	pf.Var(&g.kernel, "kernel", "candidate evaluation kernel: auto, direct or pair-table")

	root.AddCommand(
		newScrambleCmd(g),
		newUnscrambleCmd(g),
		newBreakCmd(g),
	)
	return root
}

// loadImage reads an image and prints its dimensions.
func loadImage(cmd *cobra.Command, path string) (image.Image, error) {
	img, format, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	fmt.Fprintf(cmd.OutOrStdout(), "image: %s (%s, %dx%d)\n", path, format, b.Dx(), b.Dy())
	return img, nil
}

// reportElapsed prints the wall time of a step.
func reportElapsed(cmd *cobra.Command, what string, start time.Time) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", what, time.Since(start).Round(time.Microsecond))
}
