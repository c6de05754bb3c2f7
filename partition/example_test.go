// SPDX-License-Identifier: MIT
package partition_test

import (
	"fmt"

	"github.com/katalvlaran/tricount/partition"
)

func ExampleByCount() {
	ranges, _ := partition.ByCount(10, 3)
	fmt.Println(ranges)
	// Output: [[0,4) [4,7) [7,10)]
}

func ExampleByWeight() {
	degrees := []int64{1, 1, 4}
	ranges, _ := partition.ByWeight(len(degrees), 2, func(i int) int64 { return degrees[i] })
	fmt.Println(ranges)
	// Output: [[0,2) [2,3)]
}
