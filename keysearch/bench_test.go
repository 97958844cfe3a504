// SPDX-License-Identifier: MIT

package keysearch_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/rowcrypt/keysearch"
	"github.com/katalvlaran/rowcrypt/perm"
	"github.com/katalvlaran/rowcrypt/score"
)

func benchExhaustive(b *testing.B, n, w int, kernel keysearch.Kernel) {
	enc := scrambled(b, sinusoid(b, n, w), perm.NewKey(5, 17))
	opts := keysearch.DefaultOptions()
	opts.Kernel = kernel
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := keysearch.Exhaustive(context.Background(), enc, score.Pearson, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExhaustive_PairTable_128(b *testing.B) {
	benchExhaustive(b, 128, 128, keysearch.KernelPairTable)
}

func BenchmarkExhaustive_Direct_128(b *testing.B) {
	benchExhaustive(b, 128, 128, keysearch.KernelDirect)
}

func BenchmarkTwoStage_256(b *testing.B) {
	enc := scrambled(b, sinusoid(b, 256, 256), perm.NewKey(40, 100))
	opts := keysearch.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := keysearch.TwoStage(context.Background(), enc, opts); err != nil {
			b.Fatal(err)
		}
	}
}
