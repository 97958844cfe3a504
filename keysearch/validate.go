// SPDX-License-Identifier: MIT

package keysearch

// validateOptions checks Options without looking at the matrix.
// Method is checked by the entry point that actually uses it.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Strategy != StrategyExhaustive && opts.Strategy != StrategyTwoStage {
		return searchErrorf(opValidateOption, ErrUnsupportedStrategy)
	}
	if opts.Kernel < KernelAuto || opts.Kernel > KernelPairTable {
		return searchErrorf(opValidateOption, ErrUnknownKernel)
	}
	if opts.Workers < 0 || opts.PairTableMaxRows < 0 {
		return searchErrorf(opValidateOption, ErrBadOption)
	}
	return nil
}
