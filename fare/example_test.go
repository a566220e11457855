package fare_test

import (
	"fmt"

	"github.com/katalvlaran/metro/fare"
)

func ExampleCalculate() {
	for _, d := range []float64{4, 12, 24, 50, 60} {
		single, _ := fare.Calculate(d, fare.SingleJourney)
		stored, _ := fare.Calculate(d, fare.StoredValue)
		fmt.Printf("%v km: single %d, stored %d\n", d, single, stored)
	}
	// Output:
	// 4 km: single 2, stored 2
	// 12 km: single 4, stored 4
	// 24 km: single 6, stored 6
	// 50 km: single 9, stored 9
	// 60 km: single 10, stored 9
}
