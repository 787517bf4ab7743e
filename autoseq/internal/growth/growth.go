// Package growth holds the capacity policy for sequence backing stores.
package growth

import "math/bits"

// Pow2Threshold is the capacity below which grown capacities are rounded up
// to the next power of two. In the small-size regime the relative cost of a
// reallocation is highest, so a little slack buys noticeably fewer of them;
// at or above the threshold the amortized rule alone governs.
const Pow2Threshold = 1024

// NextCap returns the capacity a backing store should grow to so that it can
// hold at least needed elements, given its current capacity. The rule is
// max(needed, cur+cur/2): 1.5x amortized growth, clamped up to the request.
// Results below Pow2Threshold are rounded up to the next power of two.
func NextCap(cur, needed int) int {
	if needed <= cur {
		return cur
	}
	next := cur + cur/2
	if next < needed {
		next = needed
	}
	if next < Pow2Threshold {
		next = ceilPow2(next)
	}
	return next
}

func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
