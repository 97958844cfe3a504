// SPDX-License-Identifier: MIT

package perm_test

import (
	"fmt"

	"github.com/katalvlaran/rowcrypt/perm"
)

// ExampleGenerate builds the row mapping for 8 rows with step 1, offset 2:
// stride 3, so perm[i] = (2 + 3i) mod 8.
func ExampleGenerate() {
	key := perm.NewKey(1, 2)
	p, err := perm.Generate(8, key)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(key, p)
	// Output:
	// 257 [2 5 0 3 6 1 4 7]
}

// ExampleIsBijective shows a collision: 6 rows with stride 3.
func ExampleIsBijective() {
	p, _ := perm.GenerateSR(6, 1, 0)
	fmt.Println(p, perm.IsBijective(6, 1), perm.Collisions(p))
	// Output:
	// [0 3 0 3 0 3] false 4
}
