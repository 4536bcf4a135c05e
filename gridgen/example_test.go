// SPDX-License-Identifier: MIT
package gridgen_test

import (
	"fmt"

	"github.com/katalvlaran/gridstar/gridgen"
)

// ExampleHorizontalGradient prints a small gradient terrain.
func ExampleHorizontalGradient() {
	v, _ := gridgen.HorizontalGradient(4, 2)
	for _, row := range v {
		fmt.Println(row)
	}
	// Output:
	// [1 2 3 4]
	// [1 2 3 4]
}
