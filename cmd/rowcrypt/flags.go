// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/rowcrypt/keysearch"
	"github.com/spf13/pflag"
)

// strategyValue adapts keysearch.Strategy to pflag.
type strategyValue keysearch.Strategy

var _ pflag.Value = (*strategyValue)(nil)

func (v *strategyValue) String() string { return keysearch.Strategy(*v).String() }
func (v *strategyValue) Type() string   { return "strategy" }

func (v *strategyValue) Set(s string) error {
	st, err := keysearch.ParseStrategy(s)
	if err != nil {
		return err
	}
	*v = strategyValue(st)
	return nil
}

// kernelValue adapts keysearch.Kernel to pflag.
type kernelValue keysearch.Kernel

var _ pflag.Value = (*kernelValue)(nil)

func (v *kernelValue) String() string { return keysearch.Kernel(*v).String() }
func (v *kernelValue) Type() string   { return "kernel" }

func (v *kernelValue) Set(s string) error {
	k, err := keysearch.ParseKernel(s)
	if err != nil {
		return err
	}
	*v = kernelValue(k)
	return nil
}
