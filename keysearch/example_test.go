// SPDX-License-Identifier: MIT

package keysearch_test

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/rowcrypt/gray"
	"github.com/katalvlaran/rowcrypt/keysearch"
	"github.com/katalvlaran/rowcrypt/perm"
	"github.com/katalvlaran/rowcrypt/rows"
)

// ExampleTwoStage scrambles a smooth gradient image and recovers the key with
// 384 evaluations. The image reads the same upside down to the scorers, so
// the check accepts the mirror key too.
func ExampleTwoStage() {
	const n, w = 64, 64
	m, _ := gray.New(n, w)
	for y := 0; y < n; y++ {
		for x := 0; x < w; x++ {
			v := 128 + 120*math.Sin(2*math.Pi*4*float64(x)/w+2.5*float64(y)/n)
			_ = m.Set(y, x, uint8(math.Round(v)))
		}
	}

	key := perm.NewKey(5, 17)
	p, _ := perm.Generate(n, key)
	enc, _ := rows.Scramble(m, p)

	res, err := keysearch.TwoStage(context.Background(), enc, keysearch.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	mirror, _ := perm.Mirror(n, key)
	fmt.Println("evaluated:", res.Evaluated)
	fmt.Println("recovered:", res.Key == key || res.Key == mirror)
	// Output:
	// evaluated: 384
	// recovered: true
}
