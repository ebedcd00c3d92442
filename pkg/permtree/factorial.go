package permtree

import "math"

// MaxFactorialInput is the largest n for which n! fits in an int64.
const MaxFactorialInput = 20

// SafeFactorial returns n! or -1 if the result would overflow an int64.
//
// Negative inputs return 0. The overflow check happens before each
// multiplication, so an already-wrapped value is never produced.
func SafeFactorial(n int) int64 {
	if n < 0 {
		return 0
	}
	product := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		if i > math.MaxInt64/product {
			return -1
		}
		product *= i
	}
	return product
}
