// SPDX-License-Identifier: MIT

package keysearch_test

import (
	"testing"

	"github.com/katalvlaran/rowcrypt/keysearch"
	"github.com/katalvlaran/rowcrypt/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := keysearch.DefaultOptions()
	assert.Equal(t, keysearch.StrategyExhaustive, o.Strategy)
	assert.Equal(t, score.Pearson, o.Method)
	assert.Equal(t, keysearch.KernelAuto, o.Kernel)
	assert.Equal(t, keysearch.DefaultPairTableMaxRows, o.PairTableMaxRows)
	assert.Zero(t, o.Workers)
	assert.False(t, o.SkipDegenerate)
	assert.Nil(t, o.Progress)
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]keysearch.Strategy{
		"exhaustive": keysearch.StrategyExhaustive,
		"Two-Stage":  keysearch.StrategyTwoStage,
		"optimized":  keysearch.StrategyTwoStage,
	} {
		got, err := keysearch.ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := keysearch.ParseStrategy("random")
	assert.ErrorIs(t, err, keysearch.ErrUnsupportedStrategy)
	assert.Equal(t, "two-stage", keysearch.StrategyTwoStage.String())
}

func TestParseKernel(t *testing.T) {
	for name, want := range map[string]keysearch.Kernel{
		"auto":       keysearch.KernelAuto,
		"DIRECT":     keysearch.KernelDirect,
		"pair-table": keysearch.KernelPairTable,
		"table":      keysearch.KernelPairTable,
	} {
		got, err := keysearch.ParseKernel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := keysearch.ParseKernel("gpu")
	assert.ErrorIs(t, err, keysearch.ErrUnknownKernel)
	assert.Equal(t, "pair-table", keysearch.KernelPairTable.String())
}
